package cards

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"showcase/internal/models"
	"showcase/internal/pagination"
)

var (
	terminalCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#23374D")).
			Padding(0, 1).
			Width(48)
	terminalTitle    = lipgloss.NewStyle().Bold(true)
	terminalCategory = lipgloss.NewStyle().Faint(true)
	terminalActive   = lipgloss.NewStyle().Bold(true).Reverse(true)
	terminalDisabled = lipgloss.NewStyle().Faint(true)
)

// Terminal renders a project as a boxed text card for the command line.
func Terminal(p models.Project) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		terminalTitle.Render(p.Title),
		terminalCategory.Render(p.Category),
		p.Description,
	)
	return terminalCard.Render(body)
}

// TerminalPager renders page controls as one line, the current page in
// brackets.
func TerminalPager(buttons []pagination.Button) string {
	parts := make([]string, 0, len(buttons))
	for _, b := range buttons {
		label := b.Label()
		switch {
		case b.Active:
			parts = append(parts, terminalActive.Render("["+label+"]"))
		case b.Disabled:
			parts = append(parts, terminalDisabled.Render(label))
		default:
			parts = append(parts, label)
		}
	}
	return strings.Join(parts, " ")
}
