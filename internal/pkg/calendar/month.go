package calendar

import "time"

// MonthGrid is a month laid out Sunday-first. Leading cells before day 1 are zero.
type MonthGrid struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Label string     `json:"label"`
	Cells []int      `json:"cells"`
}

// NewMonthGrid builds the grid for the given month.
func NewMonthGrid(year int, month time.Month) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()
	lead := int(first.Weekday())

	cells := make([]int, 0, lead+days)
	for i := 0; i < lead; i++ {
		cells = append(cells, 0)
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, d)
	}
	return MonthGrid{
		Year:  year,
		Month: month,
		Label: first.Format("January 2006"),
		Cells: cells,
	}
}

// ParseMonth parses "YYYY-MM"; an empty string yields the month of fallback.
func ParseMonth(s string, fallback Date) (int, time.Month, error) {
	if s == "" {
		return fallback.Year, fallback.Month, nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), t.Month(), nil
}
