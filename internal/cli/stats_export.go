package cli

import (
	"fmt"

	"github.com/flyndre/trainlog/internal/progress"
	"github.com/flyndre/trainlog/internal/workout"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// renderStatsPDF generates a PDF version of the statistics report and saves
// it to the given path.
func renderStatsPDF(ds *workout.Dataset, stats progress.Stats, scope, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	// Document header
	m.AddRow(14,
		text.NewCol(12, "Training report", props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, scope, props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4) // spacer

	addPDFTable(m, "Exercises",
		[]int{2, 2, 1, 2, 1, 2, 2},
		[]string{"Exercise", "Total", "Sets", "Weight", "Days", "Avg/day", "Max"},
		exerciseStatRows(stats.Exercises))

	if len(stats.Muscles) > 0 {
		addPDFTable(m, "Muscle groups",
			[]int{3, 2, 2, 5},
			[]string{"Muscle", "Amount", "Weight", "Exercises"},
			muscleStatRows(stats.Muscles))
	}

	if len(stats.Progressions) > 0 {
		addPDFTable(m, "Weight progression",
			[]int{2, 4, 4, 2},
			[]string{"Exercise", "First", "Last", "Change"},
			progressionRows(stats.Progressions))
	}

	if len(stats.Achievements) > 0 {
		addPDFTable(m, "Goal achievement",
			[]int{3, 4, 3, 2},
			[]string{"Exercise", "Target", "Days", "Rate"},
			achievementRows(ds, stats.Achievements))
	}

	if len(stats.Streaks) > 0 {
		addPDFTable(m, "Streaks",
			[]int{4, 4, 4},
			[]string{"Exercise", "Current", "Longest"},
			streakRows(stats.Streaks))
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(outputPath)
}

// addPDFTable lays out one report section: a bold title, a muted header row
// and one row per record. Widths are maroto grid spans and must sum to 12.
func addPDFTable(m core.Maroto, title string, widths []int, headers []string, rows [][]string) {
	m.AddRow(8,
		text.NewCol(12, title, props.Text{
			Style: fontstyle.Bold,
			Size:  11,
			Color: &pdfHeaderColor,
		}),
	)

	headerCols := make([]core.Col, len(headers))
	for i, h := range headers {
		headerCols[i] = text.NewCol(widths[i], h, props.Text{
			Style: fontstyle.Bold,
			Size:  9,
			Align: cellAlign(i),
			Color: &pdfMutedColor,
		})
	}
	m.AddRow(6, headerCols...)

	for _, row := range rows {
		cols := make([]core.Col, len(row))
		for i, cell := range row {
			cols[i] = text.NewCol(widths[i], cell, props.Text{
				Size:  9,
				Align: cellAlign(i),
			})
		}
		m.AddRow(5, cols...)
	}

	m.AddRow(4) // spacer
}

// cellAlign right-aligns every column after the leading name column.
func cellAlign(col int) align.Type {
	if col == 0 {
		return align.Left
	}
	return align.Right
}
