package tui

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todoview/internal/fetch"
	"github.com/idilsaglam/todoview/internal/model"
)

// SelectTodoMsg asks the screen selector to show the detail screen for ID.
type SelectTodoMsg struct {
	ID int
}

// BackMsg asks the screen selector to return to the list.
type BackMsg struct{}

// SelectTodo is the navigation callback handed to the list screen.
func SelectTodo(id int) tea.Cmd {
	return func() tea.Msg { return SelectTodoMsg{ID: id} }
}

// Back is the command form of BackMsg.
func Back() tea.Msg { return BackMsg{} }

// todosFetchedMsg carries a collection result back to the list mount that asked.
type todosFetchedMsg struct {
	mount   int64
	todos   []model.Item
	visible []model.Item
	message string
	err     error
}

// todoFetchedMsg carries a single-record result tagged with the request it answers.
type todoFetchedMsg struct {
	id     int
	seq    int64
	status fetch.Status[*model.Item]
}

// Every list mount and every detail identifier change takes a fresh epoch, so a
// late result can always be told apart from the one currently awaited.
var epochs atomic.Int64

func nextEpoch() int64 { return epochs.Add(1) }
