package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flytype/internal/typing"
)

// newResultsTable creates the run history table sized for the terminal.
func newResultsTable(width, height int) table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 5},
		{Title: "Time", Width: 8},
		{Title: "WPM", Width: 5},
		{Title: "Accuracy", Width: 9},
		{Title: "Typed", Width: 6},
		{Title: "Errors", Width: 7},
		{Title: "Limit", Width: 16},
	}
	// Give spare room to the limit column
	if spare := width - 4 - 60; spare > 0 {
		columns[6].Width += min(spare, 8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-12, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// historyRows converts finished runs to table rows, oldest first.
func historyRows(history []typing.Results) []table.Row {
	rows := make([]table.Row, len(history))
	for i, r := range history {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%.1fs", r.ElapsedSeconds),
			fmt.Sprintf("%d", r.WPM),
			fmt.Sprintf("%d%%", r.Accuracy),
			fmt.Sprintf("%d", r.TypedCount),
			fmt.Sprintf("%d", r.ErrorCount),
			r.LimitSummary,
		}
	}
	return rows
}

// resultsView renders the summary of the last run and the session history.
func (m Model) resultsView() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("RUN COMPLETE"), m.width))
	b.WriteString("\n\n")

	last := m.orch.Results()
	summary := lipgloss.NewStyle().Width(min(m.width-4, 72)).Render(last.Summary())
	b.WriteString(centerText(summary, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(valueStyle.Render(fmt.Sprintf("Final WPM: %d", last.WPM)), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(panelStyle.Render(m.table.View()), m.width))
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render(m.help.View(resultsKeys{m.keys})))
	return b.String()
}

// resultsKeys narrows the help footer to what the results screen accepts.
type resultsKeys struct {
	KeyMap
}

func (k resultsKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Back, k.Up, k.Down, k.Quit}
}

func (k resultsKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Restart, k.Back}, {k.Up, k.Down, k.Quit}}
}
