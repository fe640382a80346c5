package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/egg-catcher/internal/games/eggcatch"
	"github.com/vovakirdan/egg-catcher/internal/leaderboard"
)

// newLeaderboardTable creates the top-N table.
func newLeaderboardTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: nameLimit + 2},
		{Title: "Score", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(leaderboard.DefaultTop+3),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

// leaderboardRows formats entries as table rows.
func leaderboardRows(entries []leaderboard.Entry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
		}
	}
	return rows
}

// syncTable copies the game's leaderboard into the table.
func (m *Model) syncTable() {
	entries, _ := m.game.Leaderboard()
	m.table.SetRows(leaderboardRows(entries))
	m.table.GotoTop()
}

// leaderboardView renders the spinner while loading, then the table.
func (m Model) leaderboardView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("HIGH SCORES"))
	b.WriteString("\n\n")

	entries, loading := m.game.Leaderboard()
	switch {
	case loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...")
	case len(entries) == 0:
		b.WriteString(subtleStyle.Italic(true).Render("No scores recorded yet.\nPlay a game to set a high score!"))
	default:
		b.WriteString(m.table.View())
	}

	body := panelStyle.Render(b.String())
	helpLine := subtleStyle.Render(m.help.View(screenHelp{keys: m.keys, screen: eggcatch.ScreenLeaderboard}))

	return m.place(lipgloss.JoinVertical(lipgloss.Center, body, "", helpLine))
}
