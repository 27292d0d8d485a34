// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"github.com/idilsaglam/todoview/internal/model"
	"github.com/idilsaglam/todoview/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
// It counts every retrieval so tests can assert on call volume.
type FakeService struct {
	mu    sync.Mutex
	items []model.Item

	todosCalls int
	todoCalls  []int

	// Error injection for testing
	TodosErr error
	TodoErr  map[int]error // id -> error
}

// NewFakeService creates a FakeService serving items.
func NewFakeService(items ...model.Item) *FakeService {
	return &FakeService{
		items:   items,
		TodoErr: make(map[int]error),
	}
}

// SampleTodos is the three-record collection used across tests.
func SampleTodos() []model.Item {
	return []model.Item{
		{ID: 1, UserID: 1, Title: "Todo 1", Completed: false},
		{ID: 2, UserID: 1, Title: "Todo 2", Completed: true},
		{ID: 3, UserID: 1, Title: "Todo 3", Completed: false},
	}
}

// SetItems replaces the served collection.
func (f *FakeService) SetItems(items []model.Item) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = items
}

// Todos implements service.Service.
func (f *FakeService) Todos(ctx context.Context) ([]model.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.todosCalls++
	if f.TodosErr != nil {
		return nil, f.TodosErr
	}
	out := make([]model.Item, len(f.items))
	copy(out, f.items)
	return out, nil
}

// Todo implements service.Service.
func (f *FakeService) Todo(ctx context.Context, id int) (*model.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.todoCalls = append(f.todoCalls, id)
	if err := f.TodoErr[id]; err != nil {
		return nil, err
	}
	for _, it := range f.items {
		if it.ID == id {
			found := it
			return &found, nil
		}
	}
	return nil, nil
}

// TodosCalls returns how many times Todos was called.
func (f *FakeService) TodosCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.todosCalls
}

// TodoCalls returns the ids passed to Todo, in call order.
func (f *FakeService) TodoCalls() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]int, len(f.todoCalls))
	copy(out, f.todoCalls)
	return out
}

var _ service.Service = (*FakeService)(nil)
