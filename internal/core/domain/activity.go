package domain

import (
	"time"
)

const DateKeyLayout = "2006-01-02"

// ActivityRecord is one entry of the upstream heatmap feed. Several records may
// fall on the same calendar day.
type ActivityRecord struct {
	Timestamp     int64 `json:"timestamp"`
	Contributions int   `json:"contributions"`
}

func (r ActivityRecord) Time(loc *time.Location) time.Time {
	return time.Unix(r.Timestamp, 0).In(loc)
}

// DayCell is one calendar day of the grid. Date is the day's calendar date at
// midnight UTC, whatever zone the grid was built in.
type DayCell struct {
	Date    time.Time `json:"date"`
	Count   int       `json:"count"`
	IsToday bool      `json:"is_today"`
}

// Week holds the cells of one grid column, Sunday first. The first week of a
// grid may be partial.
type Week []DayCell

type MonthLabel struct {
	Col   int    `json:"col"`
	Label string `json:"label"`
}

type Grid struct {
	Weeks       []Week       `json:"weeks"`
	MonthLabels []MonthLabel `json:"month_labels"`
	MaxCount    int          `json:"max_count"`
	Total       int          `json:"total"`
}

func (g *Grid) CellCount() int {
	n := 0
	for _, w := range g.Weeks {
		n += len(w)
	}
	return n
}

func (g *Grid) Cells() []DayCell {
	cells := make([]DayCell, 0, g.CellCount())
	for _, w := range g.Weeks {
		cells = append(cells, w...)
	}
	return cells
}

func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

func ParseDateKey(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateKeyLayout, s, loc)
}

// CalendarDate returns t's calendar date, as seen in t's location, at midnight
// UTC. UTC has no DST, so day arithmetic on the result never drifts.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
