package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flytype/internal/typing"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
)

// homeView renders the option menu.
func (m Model) homeView() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("F L Y T Y P E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick an option, then fly to your choice", m.width))
	b.WriteString("\n\n")

	var list strings.Builder
	for i, k := range typing.OptionKeys {
		label := fmt.Sprintf("%-22s", k.Label())
		if i == m.cursor {
			label = selectedStyle.Render("> " + label)
		} else {
			label = "  " + label
		}
		list.WriteString(label + " " + valueStyle.Render(k.Describe(m.state.settings)))
		if i < len(typing.OptionKeys)-1 {
			list.WriteString("\n")
		}
	}
	b.WriteString(centerText(panelStyle.Render(list.String()), m.width))
	b.WriteString("\n\n")

	if n := len(m.state.history); n > 0 {
		last := m.state.history[n-1]
		b.WriteString(centerText(helpStyle.Render(fmt.Sprintf("Last run: %d WPM, %d%% accuracy", last.WPM, last.Accuracy)), m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// settingsSummary describes the current settings on one line.
func (m Model) settingsSummary() string {
	s := m.state.settings
	return fmt.Sprintf("%s | punctuation %s | capitalization %s | numbers %s",
		s.LimitSummary(),
		typing.OptionPunctuation.Describe(s),
		typing.OptionCapitalization.Describe(s),
		typing.OptionNumbers.Describe(s))
}

// centerText centers each line of text within width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		w := lipgloss.Width(line)
		if w < width {
			lines[i] = strings.Repeat(" ", (width-w)/2) + line
		}
	}
	return strings.Join(lines, "\n")
}
