package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todoview/internal/service"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// selection distinguishes "nothing selected" from any id, including 0.
type selection struct {
	id int
	ok bool
}

// Model is the screen selector: the list by default, the detail screen once a
// todo is selected.
type Model struct {
	ctx context.Context
	svc service.Service

	selected selection
	list     listModel
	detail   detailModel

	keys          appKeyMap
	help          help.Model
	width, height int
}

// New builds the selector with the list screen mounted.
func New(ctx context.Context, svc service.Service) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := Model{
		ctx:    ctx,
		svc:    svc,
		keys:   defaultAppKeys(),
		help:   help.New(),
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.list = newListModel(ctx, svc, SelectTodo)
	return m
}

// Selected returns the selected id and whether there is one.
func (m Model) Selected() (int, bool) { return m.selected.id, m.selected.ok }

func (m Model) Init() tea.Cmd { return m.list.Init() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.selected.ok && key.Matches(msg, m.keys.Back) {
			return m, m.back()
		}

	case SelectTodoMsg:
		return m, m.selectTodo(msg.ID)

	case BackMsg:
		if !m.selected.ok {
			return m, nil
		}
		return m, m.back()
	}

	var cmd tea.Cmd
	if m.selected.ok {
		m.detail, cmd = m.detail.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

// selectTodo mounts the detail screen for id, or retargets it when one is
// already showing.
func (m *Model) selectTodo(id int) tea.Cmd {
	if m.selected.ok {
		m.selected.id = id
		return m.detail.SetID(id)
	}
	m.selected = selection{id: id, ok: true}
	m.detail = newDetailModel(m.ctx, m.svc, id)
	return m.detail.Init()
}

// back unmounts the detail screen and mounts a fresh list, which refetches.
func (m *Model) back() tea.Cmd {
	m.selected = selection{}
	m.detail = detailModel{}
	m.list = newListModel(m.ctx, m.svc, SelectTodo)
	m.list.setSize(m.width, m.height)
	return m.list.Init()
}

func (m Model) View() string {
	keys := m.keys
	keys.Back.SetEnabled(m.selected.ok)

	content := m.list.View()
	if m.selected.ok {
		content = m.detail.View()
	}
	return panelString(content + "\n\n" + m.help.View(keys))
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(ctx context.Context, svc service.Service, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(ctx, svc), opts...)
	_, err := p.Run()
	return err
}
