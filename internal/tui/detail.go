package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todoview/internal/fetch"
	"github.com/idilsaglam/todoview/internal/model"
	"github.com/idilsaglam/todoview/internal/service"
	"github.com/idilsaglam/todoview/internal/ui"
)

// detailModel is the detail screen for one identifier.
type detailModel struct {
	ctx context.Context
	svc service.Service

	id     int
	seq    int64
	status fetch.Status[*model.Item]

	spinner spinner.Model
}

func newDetailModel(ctx context.Context, svc service.Service, id int) detailModel {
	s := spinner.New()
	s.Spinner = spinner.Line
	return detailModel{
		ctx:     ctx,
		svc:     svc,
		id:      id,
		seq:     nextEpoch(),
		status:  fetch.Loading[*model.Item](),
		spinner: s,
	}
}

func (m detailModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchTodo())
}

// SetID points the screen at another record. Only a different id starts a new
// retrieval; results still in flight for the old id are dropped on arrival.
func (m *detailModel) SetID(id int) tea.Cmd {
	if id == m.id {
		return nil
	}
	m.id = id
	m.seq = nextEpoch()
	m.status = fetch.Loading[*model.Item]()
	return tea.Batch(m.spinner.Tick, m.fetchTodo())
}

// ID returns the identifier the screen is showing.
func (m detailModel) ID() int { return m.id }

func (m detailModel) fetchTodo() tea.Cmd {
	ctx, svc, id, seq := m.ctx, m.svc, m.id, m.seq
	return func() tea.Msg {
		return todoFetchedMsg{id: id, seq: seq, status: fetch.One(ctx, svc, id)}
	}
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case todoFetchedMsg:
		if msg.id != m.id || msg.seq != m.seq {
			return m, nil
		}
		m.status = msg.status
		return m, nil

	case spinner.TickMsg:
		if !m.status.IsLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m detailModel) View() string {
	switch {
	case m.status.IsLoading():
		return m.spinner.View() + " Loading todo..."
	case m.status.IsError():
		return errorStyle.Render("Error loading todo") + "\n" + m.status.Message()
	}

	it, _ := m.status.Data()
	if it == nil {
		return mutedStyle.Render("Todo not found")
	}

	t := ui.Current()
	status := t.Pending.Render(it.Status())
	if it.Completed {
		status = t.Success.Render(it.Status())
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render("Todo Details") + "\n\n")
	b.WriteString(labelStyle.Render("ID") + fmt.Sprintf("%d", it.ID) + "\n")
	b.WriteString(labelStyle.Render("Title") + it.Title + "\n")
	b.WriteString(labelStyle.Render("User ID") + fmt.Sprintf("%d", it.UserID) + "\n")
	b.WriteString(labelStyle.Render("Status") + t.Box(it.Completed) + " " + status)
	return b.String()
}
