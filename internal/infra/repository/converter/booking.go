package converter

import (
	"time"

	"workspace-booking/internal/domain/booking"
	sqlc "workspace-booking/internal/infra/sqlc/generated"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/pkg/pgconv"
)

var ErrCorruptBookingRow = errs.New("booking row violates domain invariants")

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	contact := b.Contact()
	return sqlc.CreateBookingParams{
		ID:                b.ID(),
		ResourceID:        b.ResourceID(),
		FullName:          contact.FullName(),
		CompanyName:       pgconv.StringPtrToPgtype(contact.CompanyName()),
		Telephone:         contact.Telephone(),
		Email:             contact.Email(),
		Address:           pgconv.StringPtrToPgtype(contact.Address()),
		StartDate:         pgconv.DateToPgtype(b.Period().Start()),
		EndDate:           pgconv.DateToPgtype(b.Period().End()),
		Price:             pgconv.CentsToNumeric(b.Price().Cents()),
		Status:            b.Status().String(),
		ContractReference: pgconv.StringPtrToPgtype(b.ContractReference()),
		CreatedAt:         pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

// BookingToUpdateParams carries the only columns a booking can change after
// creation.
func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingParams {
	return sqlc.UpdateBookingParams{
		ID:                b.ID(),
		Status:            b.Status().String(),
		EndDate:           pgconv.DateToPgtype(b.Period().End()),
		ContractReference: pgconv.StringPtrToPgtype(b.ContractReference()),
		UpdatedAt:         pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	contact, err := booking.NewContact(
		row.FullName,
		pgconv.StringPtrFromPgtype(row.CompanyName),
		row.Telephone,
		row.Email,
		pgconv.StringPtrFromPgtype(row.Address),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptBookingRow)
	}

	start, err := pgconv.DateFromPgtype(row.StartDate)
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptBookingRow)
	}
	end, err := pgconv.DateFromPgtype(row.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptBookingRow)
	}
	period, err := booking.NewDateRange(start, end)
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptBookingRow)
	}

	cents, err := pgconv.CentsFromNumeric(row.Price)
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptBookingRow)
	}
	price, err := booking.NewMoney(cents)
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptBookingRow)
	}

	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptBookingRow)
	}

	return booking.ReconstructBooking(
		row.ID,
		row.ResourceID,
		contact,
		period,
		price,
		status,
		pgconv.StringPtrFromPgtype(row.ContractReference),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func BookingsFromRows(rows []sqlc.Bookings) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func AssociationToUpsertParams(a booking.Association, now time.Time) sqlc.UpsertAssociationParams {
	return sqlc.UpsertAssociationParams{
		BookingID: a.BookingID(),
		AccountID: a.AccountID(),
		NicNumber: pgconv.StringPtrToPgtype(a.NICNumber()),
		Company:   pgconv.StringPtrToPgtype(a.Company()),
		CreatedAt: pgconv.TimeToPgtype(now),
	}
}
