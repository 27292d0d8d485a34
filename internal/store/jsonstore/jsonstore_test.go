package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todoview/internal/model"
	"github.com/idilsaglam/todoview/internal/service"
)

var _ service.Service = (*Store)(nil)

func TestSaveThenServe(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "todos.json"))
	items := []model.Item{
		{ID: 0, UserID: 9, Title: "zero", Completed: false},
		{ID: 5, UserID: 1, Title: "five", Completed: true},
	}
	require.NoError(t, s.Save(items))

	got, err := s.Todos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, items, got)

	it, err := s.Todo(context.Background(), 0)
	require.NoError(t, err)
	require.NotNil(t, it)
	assert.Equal(t, "zero", it.Title)

	it, err = s.Todo(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, it)
}

func TestSave_WritesJSONArray(t *testing.T) {
	p := filepath.Join(t.TempDir(), "todos.json")
	require.NoError(t, New(p).Save(nil))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(b))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent.json")).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Corrupt(t *testing.T) {
	p := filepath.Join(t.TempDir(), "todos.json")
	require.NoError(t, os.WriteFile(p, []byte("{"), 0o644))

	_, err := New(p).Load()
	assert.ErrorContains(t, err, "json unmarshal")
}

func TestTodos_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New("unused.json").Todos(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
