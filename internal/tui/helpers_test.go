package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// collect runs cmd synchronously and flattens batches into their messages.
// Spinner ticks are dropped: they only animate and would reschedule forever.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
		return out
	case spinner.TickMsg:
		return nil
	}
	return []tea.Msg{msg}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// settleList feeds every message produced by cmd back into m.
func settleList(m listModel, cmd tea.Cmd) listModel {
	for _, msg := range collect(cmd) {
		var next tea.Cmd
		m, next = m.Update(msg)
		m = settleList(m, next)
	}
	return m
}

func settleDetail(m detailModel, cmd tea.Cmd) detailModel {
	for _, msg := range collect(cmd) {
		var next tea.Cmd
		m, next = m.Update(msg)
		m = settleDetail(m, next)
	}
	return m
}

func settleApp(m Model, cmd tea.Cmd) Model {
	for _, msg := range collect(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			continue
		}
		next, nextCmd := m.Update(msg)
		m = settleApp(next.(Model), nextCmd)
	}
	return m
}
