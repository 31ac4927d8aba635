// Package ui is the full-screen terminal driver built on bubbletea.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/high-low/internal/game"
	"github.com/palemoky/high-low/internal/logger"
	"github.com/palemoky/high-low/internal/sound"
)

const defaultBarWidth = 40

// Options configures the terminal UI.
type Options struct {
	Auto      bool          // deal cards instead of asking for them
	AutoDelay time.Duration // pause between cards while auto-dealing
	Sound     sound.Player
}

// dealTickMsg asks the model to deal the next card while auto-dealing.
// Ticks from an older generation are dropped.
type dealTickMsg struct {
	gen int
}

// Model is the bubbletea model for a High-Low session.
type Model struct {
	game  *game.Game
	auto  bool
	delay time.Duration
	sound sound.Player

	// autoDealing is set while cards are dealt on a timer
	autoDealing bool
	// dealGen identifies the live tick chain; bumped whenever it must stop
	dealGen int

	input     textinput.Model
	higherBar progress.Model
	lowerBar  progress.Model

	lastTurn *game.Turn
	notice   string
	err      error

	width    int
	height   int
	quitting bool
}

// NewModel creates the UI model for g.
func NewModel(g *game.Game, opts Options) *Model {
	input := textinput.New()
	input.Placeholder = "rank (2-10, J, Q, K, A), s to shuffle, quit"
	input.CharLimit = 10
	input.Width = 40
	if !opts.Auto {
		input.Focus()
	}

	player := opts.Sound
	if player == nil {
		player = sound.Silent{}
	}

	return &Model{
		game:      g,
		auto:      opts.Auto,
		delay:     opts.AutoDelay,
		sound:     player,
		input:     input,
		higherBar: progress.New(progress.WithGradient("#5A56E0", "#3FD17A"), progress.WithoutPercentage(), progress.WithWidth(defaultBarWidth)),
		lowerBar:  progress.New(progress.WithGradient("#5A56E0", "#3FC7D1"), progress.WithoutPercentage(), progress.WithWidth(defaultBarWidth)),
	}
}

func (m *Model) Init() tea.Cmd {
	if m.auto {
		return nil
	}
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := min(max(msg.Width-30, 10), defaultBarWidth)
		m.higherBar.Width = barWidth
		m.lowerBar.Width = barWidth
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case dealTickMsg:
		if !m.autoDealing || msg.gen != m.dealGen {
			return m, nil
		}
		m.deal()
		if m.game.Over() {
			m.stopDealing()
			return m, nil
		}
		return m, m.scheduleDeal()
	}

	if !m.auto {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) scheduleDeal() tea.Cmd {
	gen := m.dealGen
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return dealTickMsg{gen: gen}
	})
}

// stopDealing ends auto-dealing and invalidates any tick in flight.
func (m *Model) stopDealing() {
	m.autoDealing = false
	m.dealGen++
}

func (m *Model) deal() {
	turn, err := m.game.Deal()
	if err != nil {
		m.setError(err)
		return
	}
	m.recordTurn(turn)
}

func (m *Model) reveal(cmd game.Command) {
	turn, err := m.game.Reveal(cmd.Rank)
	if err != nil {
		m.setError(err)
		return
	}
	m.recordTurn(turn)
}

func (m *Model) recordTurn(turn game.Turn) {
	m.lastTurn = &turn
	m.err = nil
	m.notice = ""
	switch {
	case turn.First:
		m.sound.Play(sound.CueDraw)
	default:
		m.sound.Play(sound.For(turn.Verdict == game.VerdictCorrect, turn.Verdict == game.VerdictWrong))
	}
	if m.game.Over() {
		m.sound.Play(sound.CueEmpty)
	}
}

func (m *Model) shuffle() {
	if _, err := m.game.Shuffle(); err != nil {
		m.setError(err)
		return
	}
	m.sound.Play(sound.CueShuffle)
	m.err = nil
	m.notice = "Deck reshuffled"
}

func (m *Model) restart() {
	m.game.Restart()
	m.stopDealing()
	m.lastTurn = nil
	m.err = nil
	m.notice = "New game"
}

func (m *Model) setError(err error) {
	logger.LogError("ui: %v", err)
	m.err = err
	m.notice = ""
}

// Quitting reports whether the operator asked to leave.
func (m *Model) Quitting() bool {
	return m.quitting
}

// AutoDealing reports whether cards are being dealt on a timer.
func (m *Model) AutoDealing() bool {
	return m.autoDealing
}

// Err returns the error shown on screen, if any.
func (m *Model) Err() error {
	return m.err
}

// LastTurn returns the most recent card, if any.
func (m *Model) LastTurn() (game.Turn, bool) {
	if m.lastTurn == nil {
		return game.Turn{}, false
	}
	return *m.lastTurn, true
}
