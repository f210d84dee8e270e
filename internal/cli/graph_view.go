package cli

import (
	"fmt"
	"strings"

	"github.com/flyndre/trainlog/internal/progress"
	"github.com/flyndre/trainlog/internal/workout"
)

const chartFill = "█"

// renderCharts draws each series as a block of horizontal day bars. With
// several series the bars share one scale so lengths stay comparable.
func renderCharts(ds *workout.Dataset, list []progress.Series, graph workout.GraphSettings) string {
	max := 0.0
	for _, s := range list {
		if m := s.Max(); m > max {
			max = m
		}
	}

	var b strings.Builder
	for i, s := range list {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderChart(s, max, graph, goalUnit(ds, s.Name)))
	}
	return b.String()
}

// renderChart draws one series: a title line, one bar per day and a goal
// legend when a target applies.
func renderChart(s progress.Series, max float64, graph workout.GraphSettings, unit string) string {
	width := graph.Width
	if width < 1 {
		width = 1
	}

	goalPos := -1
	if s.Goal > 0 && max > 0 {
		goalPos = int(s.Goal / max * float64(width))
		if goalPos >= width {
			goalPos = width - 1
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("--- %s: %s ---", s.Name, metricLabel(s.Metric))))
	b.WriteString("\n")

	for i, day := range s.Days {
		b.WriteString(Silent(day))
		b.WriteString("  ")
		b.WriteString(chartBar(s.Values[i], max, goalPos, width))
		b.WriteString("  ")
		b.WriteString(chartValue(s.Values[i], s.Metric, unit))
		b.WriteString("\n")
	}

	if goalPos >= 0 {
		b.WriteString(footerStyle.Render(fmt.Sprintf("| goal: %s", chartValue(s.Goal, s.Metric, unit))))
		b.WriteString("\n")
	}
	return b.String()
}

// chartBar scales a value into a fixed-width bar, overlaying the goal
// marker on its scaled column.
func chartBar(value, max float64, goalPos, width int) string {
	filled := 0
	if max > 0 {
		filled = int(value / max * float64(width))
		if filled > width {
			filled = width
		}
	}

	row := strings.Repeat(chartFill, filled) + strings.Repeat(" ", width-filled)
	if goalPos < 0 {
		return Primary(row)
	}

	cells := []rune(row)
	left := string(cells[:goalPos])
	right := string(cells[goalPos+1:])
	return Primary(left) + Warning("|") + Primary(right)
}

func metricLabel(metric string) string {
	switch metric {
	case progress.MetricWeight:
		return "weight moved"
	case progress.MetricWeightPerRep:
		return "weight per rep"
	default:
		return "amount"
	}
}

func chartValue(v float64, metric, unit string) string {
	switch metric {
	case progress.MetricWeight:
		return fmt.Sprintf("%s kg", workout.FormatNumber(v))
	case progress.MetricWeightPerRep:
		return fmt.Sprintf("%.1f kg", v)
	default:
		return workout.FormatAmount(v, unit)
	}
}
