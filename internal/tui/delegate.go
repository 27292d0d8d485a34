package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todoview/internal/model"
	"github.com/idilsaglam/todoview/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	todo model.Item
}

func (i listItem) TitleText() string {
	return fmt.Sprintf("%s %s", ui.Current().Box(i.todo.Completed), i.todo.Title)
}

// Implement list.Item interface
func (i listItem) Title() string       { return i.TitleText() }
func (i listItem) Description() string { return i.todo.Status() }
func (i listItem) FilterValue() string { return i.todo.Title }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()

	// prefix(2) + box + space + id column
	idCol := fmt.Sprintf("#%-4d", it.todo.ID)
	box := t.Muted.Render(t.Box(false))
	text := ui.Truncate(it.todo.Title, m.Width()-len(idCol)-6)
	if it.todo.Completed {
		box = t.Success.Render(t.Box(true))
		text = doneStyle.Render(text)
	}

	line := fmt.Sprintf("%s %s %s", mutedStyle.Render(idCol), box, text)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprint(w, prefix+line)
}
