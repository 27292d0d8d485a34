package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todoview/internal/model"
	"github.com/idilsaglam/todoview/internal/testutil"
)

func startedApp(t *testing.T, svc *testutil.FakeService) Model {
	t.Helper()
	m := New(context.Background(), svc)
	m = settleApp(m, m.Init())
	require.True(t, m.list.status.IsReady())
	return m
}

func press(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestApp_StartsOnList(t *testing.T) {
	m := New(context.Background(), testutil.NewFakeService())
	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "Loading todos...")
}

func TestApp_EndToEndFilterSelectAndBack(t *testing.T) {
	svc := testutil.NewFakeService(testutil.SampleTodos()...)
	m := startedApp(t, svc)

	m = settleApp(press(m, runes("o")))
	assert.Equal(t, []string{"Todo 1", "Todo 3"}, visibleTitles(m.list))

	m = settleApp(press(m, runes("j")))
	m = settleApp(press(m, tea.KeyMsg{Type: tea.KeyEnter}))

	id, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, 3, id)
	view := m.View()
	assert.Contains(t, view, "Todo Details")
	assert.Contains(t, view, "Todo 3")
	assert.Equal(t, []int{3}, svc.TodoCalls())

	m = settleApp(press(m, tea.KeyMsg{Type: tea.KeyEsc}))
	_, ok = m.Selected()
	assert.False(t, ok)
	assert.Equal(t, 2, svc.TodosCalls(), "returning to the list refetches")
	assert.Equal(t, model.FilterAll, m.list.Filter(), "a fresh mount starts on All")
	assert.Contains(t, m.View(), "Todo 2")
}

func TestApp_SelectingZeroCountsAsSelection(t *testing.T) {
	svc := testutil.NewFakeService(model.Item{ID: 0, UserID: 1, Title: "Zeroth"})
	m := startedApp(t, svc)

	m = settleApp(press(m, SelectTodoMsg{ID: 0}))

	id, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, 0, id)
	assert.Contains(t, m.View(), "Zeroth")
	assert.Equal(t, []int{0}, svc.TodoCalls())
}

func TestApp_SelectWhileOnDetailRetargets(t *testing.T) {
	svc := testutil.NewFakeService(testutil.SampleTodos()...)
	m := startedApp(t, svc)

	m = settleApp(press(m, SelectTodoMsg{ID: 1}))
	m = settleApp(press(m, SelectTodoMsg{ID: 2}))
	m = settleApp(press(m, SelectTodoMsg{ID: 2}))

	assert.Equal(t, []int{1, 2}, svc.TodoCalls())
	assert.Contains(t, m.View(), "Todo 2")
}

func TestApp_BackShowsCurrentCollection(t *testing.T) {
	svc := testutil.NewFakeService(testutil.SampleTodos()...)
	m := startedApp(t, svc)

	m = settleApp(press(m, SelectTodoMsg{ID: 1}))
	svc.SetItems([]model.Item{{ID: 4, UserID: 2, Title: "Todo 4"}})

	m = settleApp(press(m, tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, []string{"Todo 4"}, visibleTitles(m.list))
	assert.NotContains(t, m.View(), "Todo 1")
}

func TestApp_BackMsg(t *testing.T) {
	svc := testutil.NewFakeService(testutil.SampleTodos()...)
	m := startedApp(t, svc)

	m = settleApp(press(m, BackMsg{}))
	assert.Equal(t, 1, svc.TodosCalls(), "back on the list screen is a no-op")

	m = settleApp(press(m, SelectTodoMsg{ID: 1}))
	m = settleApp(m, Back)
	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Equal(t, 2, svc.TodosCalls())
}

func TestApp_EscOnListDoesNotQuit(t *testing.T) {
	m := startedApp(t, testutil.NewFakeService(testutil.SampleTodos()...))

	_, cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc})
	for _, msg := range collect(cmd) {
		_, isQuit := msg.(tea.QuitMsg)
		assert.False(t, isQuit)
	}
}

func TestApp_Quit(t *testing.T) {
	m := startedApp(t, testutil.NewFakeService(testutil.SampleTodos()...))

	for _, k := range []tea.KeyMsg{{Type: tea.KeyCtrlC}, runes("q")} {
		_, cmd := press(m, k)
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, "expected tea.QuitMsg for %s", k)
	}
}

func TestApp_LateListResultAfterNavigationIsDropped(t *testing.T) {
	svc := testutil.NewFakeService(testutil.SampleTodos()...)
	m := New(context.Background(), svc)
	pending := collect(m.list.fetchTodos())

	m = settleApp(press(m, SelectTodoMsg{ID: 1}))
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	for _, msg := range pending {
		m, _ = press(m, msg)
	}

	assert.True(t, m.list.status.IsLoading(), "result from the unmounted list must not populate the new one")
}

func TestApp_WindowResizeReachesList(t *testing.T) {
	m := startedApp(t, testutil.NewFakeService(testutil.SampleTodos()...))

	m, _ = press(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 116, m.list.list.Width())
	assert.Equal(t, 32, m.list.list.Height())
}
