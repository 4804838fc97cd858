package booking

// DurationTag names a fixed extension step. Months and years are fixed day
// counts, not calendar arithmetic.
type DurationTag string

const (
	DurationDaily   DurationTag = "daily"
	DurationTwoDays DurationTag = "2-day"
	DurationWeekly  DurationTag = "weekly"
	DurationMonthly DurationTag = "monthly"
	DurationYearly  DurationTag = "yearly"
)

type durationSpec struct {
	days  int
	label string
}

var durations = map[DurationTag]durationSpec{
	DurationDaily:   {days: 1, label: "+1 Day"},
	DurationTwoDays: {days: 2, label: "+2 Days"},
	DurationWeekly:  {days: 7, label: "+1 Week"},
	DurationMonthly: {days: 30, label: "+1 Month"},
	DurationYearly:  {days: 365, label: "+1 Year"},
}

var durationOrder = []DurationTag{
	DurationDaily, DurationTwoDays, DurationWeekly, DurationMonthly, DurationYearly,
}

func ParseDurationTag(s string) (DurationTag, error) {
	tag := DurationTag(s)
	if _, ok := durations[tag]; !ok {
		return "", ErrUnknownDurationTag
	}
	return tag, nil
}

func (t DurationTag) Days() int      { return durations[t].days }
func (t DurationTag) Label() string  { return durations[t].label }
func (t DurationTag) String() string { return string(t) }

type ExtensionOption struct {
	Tag   DurationTag
	Label string
	Days  int
}

// Options lists every tag from shortest to longest.
func Options() []ExtensionOption {
	out := make([]ExtensionOption, 0, len(durationOrder))
	for _, tag := range durationOrder {
		out = append(out, ExtensionOption{Tag: tag, Label: tag.Label(), Days: tag.Days()})
	}
	return out
}

// ExtensionPlan holds the period after extension and the days that must be
// free for it, which are only the newly added ones.
type ExtensionPlan struct {
	Tag       DurationTag
	NewPeriod DateRange
	Check     DateRange
}

func PlanExtension(current DateRange, tag DurationTag) (ExtensionPlan, error) {
	d, ok := durations[tag]
	if !ok {
		return ExtensionPlan{}, ErrUnknownDurationTag
	}
	newEnd := current.end.AddDays(d.days)
	return ExtensionPlan{
		Tag:       tag,
		NewPeriod: DateRange{start: current.start, end: newEnd},
		Check:     DateRange{start: current.end.AddDays(1), end: newEnd},
	}, nil
}
