package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/high-low/internal/game"
)

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m.quit()
	case tea.KeyCtrlR:
		m.restart()
		return nil
	}

	if m.auto {
		return m.handleAutoKey(msg)
	}
	return m.handleManualKey(msg)
}

func (m *Model) handleAutoKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case " ", "enter", "n":
		if m.autoDealing {
			return nil
		}
		m.deal()
	case "a":
		if m.game.Over() {
			return nil
		}
		if m.autoDealing {
			m.stopDealing()
			return nil
		}
		m.autoDealing = true
		return m.scheduleDeal()
	case "s":
		m.shuffle()
	case "r":
		m.restart()
	case "q":
		return m.quit()
	}
	return nil
}

func (m *Model) handleManualKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type != tea.KeyEnter {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	line := m.input.Value()
	m.input.SetValue("")

	cmd, err := game.ParseCommand(line)
	if err != nil {
		m.setError(err)
		return nil
	}

	switch cmd.Kind {
	case game.CommandQuit:
		return m.quit()
	case game.CommandShuffle:
		m.shuffle()
	case game.CommandReveal:
		m.reveal(cmd)
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.stopDealing()
	return tea.Quit
}
