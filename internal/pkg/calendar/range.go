package calendar

// Range is an inclusive span of days. A nil bound is open on that side.
type Range struct {
	From *Date `json:"from"`
	To   *Date `json:"to"`
}

// Day returns the single-day range [d, d].
func Day(d Date) Range {
	from, to := d, d
	return Range{From: &from, To: &to}
}

// Contains reports whether d lies within the range, bounds included.
func (r Range) Contains(d Date) bool {
	if r.From != nil && d.Before(*r.From) {
		return false
	}
	if r.To != nil && d.After(*r.To) {
		return false
	}
	return true
}

// Bounded reports whether both ends are set.
func (r Range) Bounded() bool {
	return r.From != nil && r.To != nil
}

// IsOpen reports whether neither end is set.
func (r Range) IsOpen() bool {
	return r.From == nil && r.To == nil
}

// ParseRange parses optional "YYYY-MM-DD" bounds.
func ParseRange(from, to string) (Range, error) {
	f, err := ParseOptional(from)
	if err != nil {
		return Range{}, err
	}
	t, err := ParseOptional(to)
	if err != nil {
		return Range{}, err
	}
	return Range{From: f, To: t}, nil
}
