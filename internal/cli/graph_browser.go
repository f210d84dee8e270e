package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/flyndre/trainlog/internal/progress"
	"github.com/flyndre/trainlog/internal/workout"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type graphModel struct {
	ds        *workout.Dataset
	days      []string
	names     []string // exercises with data in range, cycled with up/down
	metrics   []string
	nameIdx   int
	metricIdx int
	graph     workout.GraphSettings
}

func (m graphModel) Init() tea.Cmd {
	return nil
}

func (m graphModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "right", "l":
			m.metricIdx = (m.metricIdx + 1) % len(m.metrics)
		case "left", "h":
			m.metricIdx = (m.metricIdx + len(m.metrics) - 1) % len(m.metrics)
		case "down", "j":
			m.nameIdx = (m.nameIdx + 1) % len(m.names)
		case "up", "k":
			m.nameIdx = (m.nameIdx + len(m.names) - 1) % len(m.names)
		}
	}
	return m, nil
}

func (m graphModel) View() string {
	name := m.names[m.nameIdx]
	s := progress.BuildSeries(m.ds, name, m.metrics[m.metricIdx], m.days)

	var b strings.Builder
	b.WriteString(renderChart(s, s.Max(), m.graph, goalUnit(m.ds, name)))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("←/→ metric  |  ↑/↓ exercise  |  q quit"))
	b.WriteString("\n")
	return b.String()
}

// runGraphBrowser opens the interactive chart browser. Without a terminal it
// falls back to printing the chart once.
func runGraphBrowser(cmd *cobra.Command, ds *workout.Dataset, days []string, name, metric string, graph workout.GraphSettings) error {
	out := cmd.OutOrStdout()

	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		s := progress.BuildSeries(ds, name, metric, days)
		_, err := fmt.Fprint(out, renderChart(s, s.Max(), graph, goalUnit(ds, name)))
		return err
	}

	names := progress.ActiveTypes(ds, days)
	nameIdx := 0
	for i, n := range names {
		if n == name {
			nameIdx = i
		}
	}
	metrics := progress.Metrics()
	metricIdx := 0
	for i, mt := range metrics {
		if mt == metric {
			metricIdx = i
		}
	}

	m := graphModel{
		ds:        ds,
		days:      days,
		names:     names,
		metrics:   metrics,
		nameIdx:   nameIdx,
		metricIdx: metricIdx,
		graph:     graph,
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	_, err := p.Run()
	return err
}
