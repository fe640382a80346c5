package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/egg-catcher/internal/games/eggcatch"
	"github.com/vovakirdan/egg-catcher/internal/sim"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)
)

const menuTitle = "E G G   C A T C H E R"

// legend lists the egg kinds shown on the menu.
var legend = []struct {
	glyph rune
	style lipgloss.Style
	text  string
}{
	{eggcatch.NormalEggChar, styleFor(sim.KindNormal.Tint()), "catch it, a miss costs a life"},
	{eggcatch.BadEggChar, styleFor(sim.KindBad.Tint()), "let it fall, catching it costs a life"},
	{eggcatch.BeneficialEggChar, styleFor(sim.KindBeneficial.Tint()), "catch it for an extra life"},
}

// menuView renders the title, name field and legend.
func (m Model) menuView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(menuTitle))
	b.WriteString("\n\n")
	b.WriteString(m.name.View())
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("Best: %d", m.game.Player().HighScore)))
	b.WriteString("\n\n")

	for _, l := range legend {
		b.WriteString(l.style.Render(string(l.glyph)))
		b.WriteString("  ")
		b.WriteString(l.text)
		b.WriteString("\n")
	}

	body := panelStyle.Render(b.String())
	helpLine := subtleStyle.Render(m.help.View(screenHelp{keys: m.keys, screen: eggcatch.ScreenMenu}))

	return m.place(lipgloss.JoinVertical(lipgloss.Center, body, "", helpLine))
}

// place centers content in the terminal.
func (m Model) place(content string) string {
	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return content
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, content)
}
