package screen

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) helpView() string {
	return "\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.quit,
	})
}

func (m *Model) View() string {
	var s strings.Builder

	p := m.presenter.Phase()

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.presenter.Color())).
		Render(p.Title())

	s.WriteString(title)

	if !m.timer.Running() {
		s.WriteString(m.style.hint.Render(" [Paused]"))
	} else {
		s.WriteString(m.style.hint.Render(" " + m.messages[p]))
	}

	s.WriteString("\n\n")
	s.WriteString(m.style.label.Render(m.presenter.Button() + "  " + m.presenter.Label()))
	s.WriteString("\n\n")
	s.WriteString(m.ring.View())
	s.WriteString(m.helpView())

	return m.style.base.Render(s.String())
}
