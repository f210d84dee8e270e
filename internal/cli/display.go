package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/flyndre/trainlog/internal/progress"
	"github.com/flyndre/trainlog/internal/workout"
)

const nameColWidth = 12

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// renderBar draws a fixed-width progress bar for a 0-100 percent value.
func renderBar(percent int, bar workout.BarSettings) string {
	width := bar.Width
	if width < 1 {
		width = 1
	}
	filled := width * percent / 100
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat(bar.Filled, filled) + strings.Repeat(bar.Empty, width-filled) + "]"
}

// goalTarget returns the amount target implied by a snapshot: the daily
// target when present, the weekly target otherwise, scaled by goal sets.
func goalTarget(g workout.GoalSnapshot) float64 {
	sets := g.Sets
	if sets < 1 {
		sets = 1
	}
	if g.Daily > 0 {
		return g.Daily * float64(sets)
	}
	return g.Weekly * float64(sets)
}

// progressLine renders one goal progress row: name, bar, percent, totals.
// Full bars render green; weekly goals still open on the last day of the
// week render yellow.
func progressLine(row progress.TodayRow, bar workout.BarSettings) string {
	pct := row.Result.RepsPercent
	barStr := renderBar(pct, bar)
	switch {
	case pct >= 100:
		barStr = Success(barStr)
	case row.WeekToDate && row.FinalWeekDay && !row.Result.WeeklyMet:
		barStr = Warning(barStr)
	default:
		barStr = Primary(barStr)
	}

	suffix := ""
	if row.WeekToDate {
		suffix = " this week"
		if row.FinalWeekDay && !row.Result.WeeklyMet {
			suffix = " this week " + Warning("(last day)")
		}
	}

	return fmt.Sprintf("%s %s %3d%%  %s / %s%s",
		padRight(row.Name, nameColWidth),
		barStr,
		pct,
		workout.FormatAmount(row.Totals.Amount, row.Unit),
		workout.FormatAmount(goalTarget(row.Goal), row.Unit),
		suffix,
	)
}

// weightLine renders the weight-moved bar for goals with an assumed weight.
func weightLine(row progress.TodayRow, bar workout.BarSettings) string {
	pct := row.Result.WeightPercent
	barStr := renderBar(pct, bar)
	if pct >= 100 {
		barStr = Success(barStr)
	} else {
		barStr = Primary(barStr)
	}

	return fmt.Sprintf("%s %s %3d%%  %s / %s kg",
		padRight("  weight", nameColWidth),
		barStr,
		pct,
		workout.FormatNumber(row.Totals.WeightTotal),
		workout.FormatNumber(goalTarget(row.Goal)*row.Goal.Weight),
	)
}

type tableCol struct {
	name  string
	width int
}

// renderTable produces a fixed-width table: bold header, dashed rule,
// left-padded cells.
func renderTable(cols []tableCol, rows [][]string) string {
	var b strings.Builder

	for i, c := range cols {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(headerStyle.Render(padRight(c.name, c.width)))
	}
	b.WriteString("\n")

	for i, c := range cols {
		if i > 0 {
			b.WriteString("-+-")
		}
		b.WriteString(strings.Repeat("-", c.width))
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(padRight(cell, cols[i].width))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
