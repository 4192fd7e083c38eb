package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.May, Day: 1}, d)
	assert.Equal(t, "2024-05-01", d.String())

	_, err = Parse("01-05-2024")
	assert.Error(t, err)
}

func TestToday_IgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	late := time.Date(2024, 6, 10, 23, 59, 59, 0, loc)
	early := time.Date(2024, 6, 10, 0, 0, 1, 0, loc)

	assert.Equal(t, MustParse("2024-06-10"), Today(late, loc))
	assert.Equal(t, MustParse("2024-06-10"), Today(early, loc))
}

func TestToday_UsesLocation(t *testing.T) {
	// 20:00 UTC on the 9th is already the 10th in IST.
	utc := time.Date(2024, 6, 9, 20, 0, 0, 0, time.UTC)
	loc := time.FixedZone("IST", 5*3600+1800)
	assert.Equal(t, MustParse("2024-06-10"), Today(utc, loc))
}

func TestDaysUntil(t *testing.T) {
	today := MustParse("2024-06-10")
	assert.Equal(t, -1, today.DaysUntil(MustParse("2024-06-09")))
	assert.Equal(t, 0, today.DaysUntil(today))
	assert.Equal(t, 2, today.DaysUntil(MustParse("2024-06-12")))
	assert.Equal(t, 10, today.DaysUntil(MustParse("2024-06-20")))
	// crosses a month boundary
	assert.Equal(t, 1, MustParse("2024-02-29").DaysUntil(MustParse("2024-03-01")))
}

func TestCompare(t *testing.T) {
	a := MustParse("2023-12-31")
	b := MustParse("2024-01-01")
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		Date     Date  `json:"date"`
		Deadline *Date `json:"deadline"`
	}

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-05-01","deadline":null}`), &w))
	assert.Equal(t, MustParse("2024-05-01"), w.Date)
	assert.Nil(t, w.Deadline)

	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-05-01T00:00:00"}`), &w))
	assert.Equal(t, MustParse("2024-05-01"), w.Date)

	out, err := json.Marshal(wrapper{Date: MustParse("2024-05-01")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-05-01","deadline":null}`, string(out))
}

func TestNewMonthGrid(t *testing.T) {
	// June 2024 starts on a Saturday.
	g := NewMonthGrid(2024, time.June)
	assert.Len(t, g.Cells, 6+30)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 1}, g.Cells[:7])
	assert.Equal(t, 30, g.Cells[len(g.Cells)-1])
	assert.Equal(t, "June 2024", g.Label)
}

func TestParseMonth(t *testing.T) {
	y, m, err := ParseMonth("", MustParse("2024-06-10"))
	require.NoError(t, err)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.June, m)

	y, m, err = ParseMonth("2023-11", MustParse("2024-06-10"))
	require.NoError(t, err)
	assert.Equal(t, 2023, y)
	assert.Equal(t, time.November, m)

	_, _, err = ParseMonth("11/2023", Date{})
	assert.Error(t, err)
}

func TestClock(t *testing.T) {
	assert.Equal(t, MustParse("2024-06-10"), FixedClock(MustParse("2024-06-10")).Today())

	loc := time.FixedZone("IST", 5*3600+1800)
	c := Clock{Now: func() time.Time { return time.Date(2024, 6, 9, 20, 0, 0, 0, time.UTC) }, Location: loc}
	assert.Equal(t, MustParse("2024-06-10"), c.Today())
}
