package booking

import (
	"fmt"
	"net/mail"
	"strings"

	"cloud.google.com/go/civil"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/pkg/ptr"
)

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	start civil.Date
	end   civil.Date
}

func NewDateRange(start, end civil.Date) (DateRange, error) {
	if !start.IsValid() || !end.IsValid() || start.After(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() civil.Date { return r.start }
func (r DateRange) End() civil.Date   { return r.end }

// Days counts both endpoints, so a single-day range has one day.
func (r DateRange) Days() int {
	return r.end.DaysSince(r.start) + 1
}

func (r DateRange) Overlaps(o DateRange) bool {
	return !r.start.After(o.end) && !o.start.After(r.end)
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.start, r.end)
}

type Contact struct {
	fullName    string
	companyName *string
	telephone   string
	email       string
	address     *string
}

func NewContact(fullName string, companyName *string, telephone, email string, address *string) (Contact, error) {
	c := Contact{
		fullName:    strings.TrimSpace(fullName),
		companyName: ptr.NonEmpty(companyName),
		telephone:   strings.TrimSpace(telephone),
		email:       strings.TrimSpace(email),
		address:     ptr.NonEmpty(address),
	}

	required := []struct{ name, value string }{
		{"full_name", c.fullName},
		{"telephone", c.telephone},
		{"email", c.email},
	}
	for _, f := range required {
		if f.value == "" {
			return Contact{}, errs.Wrap(ErrMissingContactField, f.name)
		}
	}

	if err := checkLength("full_name", c.fullName, MaxFullNameLength); err != nil {
		return Contact{}, err
	}
	if err := checkLength("telephone", c.telephone, MaxTelephoneLength); err != nil {
		return Contact{}, err
	}
	if err := checkLength("email", c.email, MaxEmailLength); err != nil {
		return Contact{}, err
	}
	if c.companyName != nil {
		if err := checkLength("company_name", *c.companyName, MaxCompanyLength); err != nil {
			return Contact{}, err
		}
	}
	if c.address != nil {
		if err := checkLength("address", *c.address, MaxAddressLength); err != nil {
			return Contact{}, err
		}
	}

	if addr, err := mail.ParseAddress(c.email); err != nil || addr.Address != c.email {
		return Contact{}, ErrInvalidEmail
	}

	return c, nil
}

func checkLength(field, value string, limit int) error {
	if len([]rune(value)) > limit {
		return errs.Wrap(ErrContactFieldTooLong, field)
	}
	return nil
}

func (c Contact) FullName() string     { return c.fullName }
func (c Contact) CompanyName() *string { return c.companyName }
func (c Contact) Telephone() string    { return c.telephone }
func (c Contact) Email() string        { return c.email }
func (c Contact) Address() *string     { return c.address }

// Money is an amount in cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents <= 0 {
		return Money{}, ErrNonPositivePrice
	}
	if cents > MaxPriceCents {
		return Money{}, ErrPriceTooLarge
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
