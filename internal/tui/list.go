package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todoview/internal/fetch"
	"github.com/idilsaglam/todoview/internal/model"
	"github.com/idilsaglam/todoview/internal/service"
	"github.com/idilsaglam/todoview/internal/ui"
)

// listModel is the list screen: the fetched collection, the active filter and the
// visible subset derived from both.
type listModel struct {
	ctx      context.Context
	svc      service.Service
	mount    int64
	onSelect func(id int) tea.Cmd

	status  fetch.Status[[]model.Item]
	filter  model.Filter
	visible []model.Item

	list    list.Model
	spinner spinner.Model
	keys    listKeyMap
}

func newListModel(ctx context.Context, svc service.Service, onSelect func(id int) tea.Cmd) listModel {
	keys := defaultListKeys()

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = titleStyle.Render("Todos")
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetStatusBarItemName("todo", "todos")
	l.AdditionalShortHelpKeys = keys.bindings
	l.AdditionalFullHelpKeys = keys.bindings

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := listModel{
		ctx:      ctx,
		svc:      svc,
		mount:    nextEpoch(),
		onSelect: onSelect,
		status:   fetch.Loading[[]model.Item](),
		filter:   model.FilterAll,
		list:     l,
		spinner:  s,
		keys:     keys,
	}
	m.setSize(defaultWidth, defaultHeight)
	return m
}

// Init runs once per mount: it is the only place the collection is fetched.
func (m listModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchTodos())
}

func (m listModel) fetchTodos() tea.Cmd {
	ctx, svc, mount := m.ctx, m.svc, m.mount
	return func() tea.Msg {
		msg := todosFetchedMsg{mount: mount}
		msg.err = fetch.Collection(ctx, svc, fetch.Sinks{
			Todos:    func(items []model.Item) { msg.todos = items },
			Filtered: func(items []model.Item) { msg.visible = items },
			Error:    func(s string) { msg.message = s },
		})
		return msg
	}
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	switch msg := msg.(type) {
	case todosFetchedMsg:
		if msg.mount != m.mount {
			return m, nil
		}
		if msg.err != nil {
			m.status = fetch.Failed[[]model.Item](msg.message)
			return m, nil
		}
		m.status = fetch.Ready(msg.todos)
		m.visible = msg.visible
		return m, m.refresh()

	case spinner.TickMsg:
		if !m.status.IsLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if !m.status.IsReady() {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.All):
			return m, m.SetFilter(model.FilterAll)
		case key.Matches(msg, m.keys.Open):
			return m, m.SetFilter(model.FilterOpen)
		case key.Matches(msg, m.keys.Completed):
			return m, m.SetFilter(model.FilterCompleted)
		case key.Matches(msg, m.keys.Cycle):
			return m, m.SetFilter(m.filter.Next())
		case key.Matches(msg, m.keys.Select):
			if it, ok := m.list.SelectedItem().(listItem); ok {
				return m, m.Select(it.todo.ID)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// SetFilter makes f active and re-derives the visible subset. Reselecting the
// active filter changes nothing.
func (m *listModel) SetFilter(f model.Filter) tea.Cmd {
	if f == m.filter {
		return nil
	}
	m.filter = f
	return m.refresh()
}

// Select hands id to the navigation callback. The list itself does not change.
func (m listModel) Select(id int) tea.Cmd {
	if m.onSelect == nil {
		return nil
	}
	return m.onSelect(id)
}

// Filter returns the active filter.
func (m listModel) Filter() model.Filter { return m.filter }

// Visible returns the derived subset currently rendered.
func (m listModel) Visible() []model.Item { return m.visible }

// refresh recomputes the visible subset from the collection. No retrieval happens here.
func (m *listModel) refresh() tea.Cmd {
	todos, _ := m.status.Data()
	m.visible = m.filter.Apply(todos)

	items := make([]list.Item, 0, len(m.visible))
	for _, it := range m.visible {
		items = append(items, listItem{todo: it})
	}
	cmd := m.list.SetItems(items)
	m.list.ResetSelected()
	m.list.Title = m.header(todos)
	return cmd
}

func (m *listModel) setSize(w, h int) {
	// panel border + padding, app header, filter bar
	m.list.SetSize(max(w-4, 20), max(h-8, 5))
}

// Header title with live counts
func (m listModel) header(todos []model.Item) string {
	t := ui.Current()
	done, pending := stats(todos)
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), len(todos),
	)
}

func (m listModel) filterBar() string {
	parts := make([]string, 0, len(model.Filters))
	for _, f := range model.Filters {
		if f == m.filter {
			parts = append(parts, activeFilterStyle.Render("["+f.Label()+"]"))
		} else {
			parts = append(parts, filterStyle.Render(" "+f.Label()+" "))
		}
	}
	return "Filter: " + strings.Join(parts, " ")
}

func (m listModel) View() string {
	switch {
	case m.status.IsLoading():
		return m.spinner.View() + " Loading todos..."
	case m.status.IsError():
		return errorStyle.Render("Error loading todos") + "\n" + m.status.Message()
	}
	return m.filterBar() + "\n\n" + m.list.View()
}

// small list stats used for the header
func stats(items []model.Item) (done, pending int) {
	for _, it := range items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
