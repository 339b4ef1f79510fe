// Package tui is the terminal presentation of the overworld. It turns key
// presses into overworld commands and renders the session snapshot after each
// one.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"pixelfolio.dev/internal/logging"
	"pixelfolio.dev/internal/overworld"
	"pixelfolio.dev/internal/services"
	"pixelfolio.dev/internal/terrain"
)

// Options tune the terminal model
type Options struct {
	MoveDelay time.Duration    // minimum gap between accepted moves
	Now       func() time.Time // clock for the move throttle, time.Now when nil
	PlainText bool             // skip markdown rendering of descriptions
	Logger    *zap.Logger
}

// Model is the bubbletea model for the overworld
type Model struct {
	game     *services.GameService
	keys     KeyMap
	help     help.Model
	xpBar    progress.Model
	styles   Styles
	palette  *terrain.Palette
	tiles    *terrain.Grid
	throttle *Throttle
	markdown *glamour.TermRenderer

	showAbout bool
	status    string
	width     int
	height    int
}

// New creates the model for a running session
func New(game *services.GameService, opts Options) Model {
	reg := game.Registry()
	theme := reg.Theme()
	logger := logging.OrNop(opts.Logger)

	m := Model{
		game:     game,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		xpBar:    progress.New(progress.WithSolidFill(theme.Lime), progress.WithoutPercentage(), progress.WithWidth(24)),
		styles:   NewStyles(theme),
		palette:  terrain.DefaultPalette(theme),
		tiles:    terrain.Build(reg.World()),
		throttle: NewThrottle(opts.MoveDelay, opts.Now),
	}

	if !opts.PlainText {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(50),
		)
		if err != nil {
			logger.Warn("markdown renderer unavailable", zap.Error(err))
		} else {
			m.markdown = r
		}
	}

	return m
}

// Game returns the session driven by the model
func (m Model) Game() *services.GameService {
	return m.game
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showAbout {
		if key.Matches(msg, m.keys.Close, m.keys.About, m.keys.Interact) {
			m.showAbout = false
		}
		return m, nil
	}

	if m.game.Snapshot().Dialog != "" {
		if key.Matches(msg, m.keys.Close, m.keys.Interact) {
			m.game.CloseDialog()
		}
		return m, nil
	}

	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Up):
		m.move(overworld.Up)
	case key.Matches(msg, m.keys.Down):
		m.move(overworld.Down)
	case key.Matches(msg, m.keys.Left):
		m.move(overworld.Left)
	case key.Matches(msg, m.keys.Right):
		m.move(overworld.Right)
	case key.Matches(msg, m.keys.Interact):
		m.game.Interact()
	case key.Matches(msg, m.keys.Open):
		m.openByIndex(msg.String())
	case key.Matches(msg, m.keys.Color):
		m.game.CycleColor()
	case key.Matches(msg, m.keys.Hat):
		m.game.ToggleHat()
	case key.Matches(msg, m.keys.About):
		m.showAbout = true
	case key.Matches(msg, m.keys.Reset):
		m.game.Reset()
		m.throttle.Reset()
		m.status = "A new adventure begins."
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// move applies a throttled move and sets the status line from the result
func (m *Model) move(d overworld.Direction) {
	if !m.throttle.Allow() {
		return
	}

	before := m.game.Snapshot()
	after := m.game.Move(d)

	switch {
	case after.Level > before.Level:
		m.status = "LEVEL UP! You reached " + m.game.Tracker().Label() + "."
	case after.Achievement != "" && before.Achievement == "":
		m.status = "Achievement unlocked: " + m.game.Registry().Bonus().Label
	case len(after.Discovered) > len(before.Discovered):
		if lm, ok := m.game.Registry().At(after.Position); ok {
			m.status = "Discovered " + lm.Title + "! Press enter to take a look."
		}
	}
}

// openByIndex opens the n-th landmark, 1-based, as if it were clicked
func (m *Model) openByIndex(k string) {
	if len(k) != 1 {
		return
	}
	i := int(k[0]-'0') - 1
	landmarks := m.game.Registry().Landmarks()
	if i < 0 || i >= len(landmarks) {
		return
	}
	m.game.OpenLandmark(landmarks[i].ID)
}

// Run starts the bubbletea program and blocks until the player quits
func Run(game *services.GameService, opts Options) error {
	p := tea.NewProgram(New(game, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
