// Package render turns a contribution grid, or an error message, into a
// self-contained SVG document.
package render

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/comitanigiacomo/activity-graph/internal/core/domain"
	"github.com/comitanigiacomo/activity-graph/internal/core/render/svg"
)

const (
	CellSize = 11
	CellGap  = 3
	CellStep = CellSize + CellGap

	PadTop    = 36
	PadRight  = 16
	PadBottom = 24
	PadLeft   = 32

	ErrorWidth  = 500
	ErrorHeight = 80
	ErrorColor  = "#f38ba8"

	fontFamily = "system-ui,sans-serif"
)

var dayLabels = [7]string{"", "Mon", "", "Wed", "", "Fri", ""}

// Escape is the escaping applied to every user-controlled string.
func Escape(s string) string {
	return svg.Escape(s)
}

func Width(weeks int) int {
	return PadLeft + weeks*CellStep - CellGap + PadRight
}

func Height() int {
	return PadTop + 7*CellStep - CellGap + PadBottom
}

// RenderImage renders the full contribution graph for username.
func RenderImage(username string, grid domain.Grid, theme domain.Theme) string {
	width, height := Width(len(grid.Weeks)), Height()

	nodes := []*svg.Node{
		background(width, height, theme),
		titleText(username, grid.Total, theme),
	}
	nodes = append(nodes, monthLabels(grid.MonthLabels, theme)...)
	nodes = append(nodes, dayLabelNodes(theme)...)
	nodes = append(nodes, cells(grid, theme)...)
	nodes = append(nodes, legend(width, height, theme)...)

	return svg.Document(width, height, nodes...)
}

// RenderError renders a fixed-size card carrying message, styled with theme.
func RenderError(message string, theme domain.Theme) string {
	return svg.Document(ErrorWidth, ErrorHeight,
		background(ErrorWidth, ErrorHeight, theme),
		svg.Text("Error",
			svg.A("x", 20), svg.A("y", 35),
			svg.A("fill", ErrorColor),
			svg.A("font-size", 13),
			svg.A("font-family", fontFamily),
			svg.A("font-weight", 600),
		),
		svg.Text(message,
			svg.A("x", 20), svg.A("y", 56),
			svg.A("fill", theme.Subtext),
			svg.A("font-size", 11),
			svg.A("font-family", fontFamily),
		),
	)
}

func background(width, height int, theme domain.Theme) *svg.Node {
	return svg.Rect(
		svg.A("width", width), svg.A("height", height),
		svg.A("rx", 8),
		svg.A("fill", theme.Bg),
		svg.A("stroke", theme.Border),
		svg.A("stroke-width", 1),
	)
}

func titleText(username string, total int, theme domain.Theme) *svg.Node {
	content := fmt.Sprintf("%s — %s contributions in the last year", username, humanize.Comma(int64(total)))
	return svg.Text(content,
		svg.A("x", PadLeft), svg.A("y", 16),
		svg.A("fill", theme.Text),
		svg.A("font-size", 12),
		svg.A("font-weight", 600),
		svg.A("font-family", fontFamily),
	)
}

func monthLabels(labels []domain.MonthLabel, theme domain.Theme) []*svg.Node {
	nodes := make([]*svg.Node, 0, len(labels))
	for _, l := range labels {
		nodes = append(nodes, svg.Text(l.Label,
			svg.A("x", PadLeft+l.Col*CellStep), svg.A("y", PadTop-6),
			svg.A("fill", theme.Subtext),
			svg.A("font-size", 10),
			svg.A("font-family", fontFamily),
		))
	}
	return nodes
}

func dayLabelNodes(theme domain.Theme) []*svg.Node {
	var nodes []*svg.Node
	for row, label := range dayLabels {
		if label == "" {
			continue
		}
		nodes = append(nodes, svg.Text(label,
			svg.A("x", PadLeft-6), svg.A("y", PadTop+row*CellStep+CellSize-1),
			svg.A("fill", theme.Subtext),
			svg.A("font-size", 9),
			svg.A("font-family", fontFamily),
			svg.A("text-anchor", "end"),
		))
	}
	return nodes
}

// cells places each day by its weekday so that a partial first week stays
// aligned with the weekday labels.
func cells(grid domain.Grid, theme domain.Theme) []*svg.Node {
	nodes := make([]*svg.Node, 0, grid.CellCount())
	for col, week := range grid.Weeks {
		for _, day := range week {
			row := int(day.Date.Weekday())
			stroke := "none"
			if day.IsToday {
				stroke = theme.Text
			}

			rect := svg.Rect(
				svg.A("x", PadLeft+col*CellStep), svg.A("y", PadTop+row*CellStep),
				svg.A("width", CellSize), svg.A("height", CellSize),
				svg.A("rx", 2),
				svg.A("fill", theme.Levels[domain.Level(day.Count, grid.MaxCount)]),
				svg.A("stroke", stroke),
				svg.A("stroke-width", 1.5),
			)
			rect.Append(svg.Title(tooltip(day)))
			nodes = append(nodes, rect)
		}
	}
	return nodes
}

func tooltip(day domain.DayCell) string {
	noun := "contributions"
	if day.Count == 1 {
		noun = "contribution"
	}
	return fmt.Sprintf("%s: %d %s", domain.DateKey(day.Date), day.Count, noun)
}

func legend(width, height int, theme domain.Theme) []*svg.Node {
	lx := width - PadRight - domain.LevelCount*CellStep - 40
	ly := height - 14

	nodes := []*svg.Node{
		svg.Text("Less",
			svg.A("x", lx-4), svg.A("y", ly+CellSize-1),
			svg.A("fill", theme.Subtext),
			svg.A("font-size", 9),
			svg.A("font-family", fontFamily),
			svg.A("text-anchor", "end"),
		),
	}
	for i, color := range theme.Levels {
		nodes = append(nodes, svg.Rect(
			svg.A("x", lx+i*CellStep), svg.A("y", ly),
			svg.A("width", CellSize), svg.A("height", CellSize),
			svg.A("rx", 2),
			svg.A("fill", color),
		))
	}
	nodes = append(nodes, svg.Text("More",
		svg.A("x", lx+domain.LevelCount*CellStep+2), svg.A("y", ly+CellSize-1),
		svg.A("fill", theme.Subtext),
		svg.A("font-size", 9),
		svg.A("font-family", fontFamily),
	))
	return nodes
}
