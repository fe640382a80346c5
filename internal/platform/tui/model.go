package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/egg-catcher/internal/core"
	"github.com/vovakirdan/egg-catcher/internal/games/eggcatch"
	"github.com/vovakirdan/egg-catcher/internal/profile"
)

// nameLimit caps the player name typed on the menu.
const nameLimit = 16

// Model is the Bubble Tea model for one player's session.
type Model struct {
	game     *eggcatch.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	hold     HoldTracker
	intents  core.InputFrame // One-shot actions since the last tick
	lastTick time.Time
	now      func() time.Time

	name    textinput.Model
	spinner spinner.Model
	table   table.Model
	help    help.Model

	quitting bool
}

// NewModel creates a model around game, starting on its menu.
func NewModel(game *eggcatch.Game, cfg core.RuntimeConfig) Model {
	name := textinput.New()
	name.Prompt = "Name: "
	name.Placeholder = profile.DefaultName
	name.CharLimit = nameLimit
	name.Width = nameLimit + 1
	name.SetValue(game.Player().Name)
	name.CursorEnd()
	name.Focus()

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    DefaultKeyMap(),
		intents: core.NewInputFrame(),
		now:     time.Now,
		name:    name,
		spinner: spin,
		table:   newLeaderboardTable(),
		help:    h,
	}
}

// Init starts the tick loop and the widget animations.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.config.TickRate),
		textinput.Blink,
		m.spinner.Tick,
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.game.Screen() == eggcatch.ScreenMenu {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey maps a key press to an action. Directions feed the hold tracker;
// everything else is queued for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	screen := m.game.Screen()
	action := m.keys.MapKey(msg, screen)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.game.Close()
		return m, tea.Quit

	case core.ActionLeft, core.ActionRight:
		m.hold.Press(action, m.now())
		return m, nil

	case core.ActionNone:
		if screen == eggcatch.ScreenMenu {
			var cmd tea.Cmd
			m.name, cmd = m.name.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	m.intents.Set(action)
	return m, nil
}

// handleTick runs one game tick with the real time since the previous one.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	before := m.game.Screen()
	in := eggcatch.Input{Frame: m.intents, Name: m.name.Value()}
	if before == eggcatch.ScreenPlaying {
		m.hold.Apply(&in.Frame, now)
	}
	m.intents = core.NewInputFrame()

	frame := m.game.Tick(dt, in)
	if frame.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	if frame.Screen != before {
		m.enter(frame.Screen)
	}
	if frame.Screen == eggcatch.ScreenLeaderboard {
		m.syncTable()
	}
	return m, tickCmd(m.config.TickRate)
}

// enter prepares the widgets of a screen the game just switched to.
func (m *Model) enter(screen eggcatch.Screen) {
	m.hold.Release()
	switch screen {
	case eggcatch.ScreenMenu:
		m.name.SetValue(m.game.Player().Name)
		m.name.CursorEnd()
		m.name.Focus()
	case eggcatch.ScreenPlaying, eggcatch.ScreenGameOver, eggcatch.ScreenLeaderboard:
		m.name.Blur()
	}
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.game.Screen() {
	case eggcatch.ScreenMenu:
		return m.menuView()
	case eggcatch.ScreenLeaderboard:
		return m.leaderboardView()
	default:
		m.game.Render(m.screen)
		return RenderScreen(m.screen)
	}
}

// Run starts the Bubble Tea program for game in the local terminal.
func Run(game *eggcatch.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
