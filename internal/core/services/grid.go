package services

import (
	"time"

	"github.com/comitanigiacomo/activity-graph/internal/core/domain"
)

// GridWeeks is the number of week columns covered by the trailing window.
const GridWeeks = 52

// BuildGrid aggregates raw records into the calendar grid for the window that
// ends on the Saturday of now's week. now's location decides which calendar
// date a record and "today" fall on; the walk itself runs on plain dates.
func BuildGrid(records []domain.ActivityRecord, now time.Time) domain.Grid {
	loc := now.Location()

	byDay := make(map[string]int)
	for _, r := range records {
		byDay[domain.DateKey(r.Time(loc))] += r.Contributions
	}

	today := domain.CalendarDate(now)
	todayKey := domain.DateKey(today)
	endDate := today.AddDate(0, 0, int(time.Saturday-today.Weekday()))
	startDate := endDate.AddDate(0, 0, -(GridWeeks*7 - 1))

	grid := domain.Grid{
		Weeks:       make([]domain.Week, 0, GridWeeks+1),
		MonthLabels: make([]domain.MonthLabel, 0, 13),
	}

	var week domain.Week
	var lastMonth time.Month
	col := 0

	for i := 0; i < GridWeeks*7; i++ {
		d := startDate.AddDate(0, 0, i)
		if d.Weekday() == time.Sunday && len(week) > 0 {
			grid.Weeks = append(grid.Weeks, week)
			week = nil
			col++
		}

		key := domain.DateKey(d)
		week = append(week, domain.DayCell{
			Date:    d,
			Count:   byDay[key],
			IsToday: key == todayKey,
		})

		if d.Weekday() == time.Sunday && d.Month() != lastMonth {
			grid.MonthLabels = append(grid.MonthLabels, domain.MonthLabel{
				Col:   col,
				Label: d.Format("Jan"),
			})
			lastMonth = d.Month()
		}
	}
	if len(week) > 0 {
		grid.Weeks = append(grid.Weeks, week)
	}

	grid.MaxCount = 1
	for _, v := range byDay {
		grid.Total += v
		if v > grid.MaxCount {
			grid.MaxCount = v
		}
	}

	return grid
}
