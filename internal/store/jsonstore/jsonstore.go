package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/idilsaglam/todoview/internal/model"
)

// JSON-backed todo source. Single file, human-readable, portable.
// Same shape as the remote collection endpoint, so an exported file can be
// browsed offline with --file.

// Store reads and writes a JSON array of todos at Path.
type Store struct {
	Path string
}

// New returns a Store for path.
func New(path string) *Store { return &Store{Path: path} }

// Load reads every record. A missing file is an error: the user named it.
func (s *Store) Load() ([]model.Item, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// Save writes items, replacing the file.
func (s *Store) Save(items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.Path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Todos implements service.Service.
func (s *Store) Todos(ctx context.Context) ([]model.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Load()
}

// Todo implements service.Service. An unknown id yields (nil, nil).
func (s *Store) Todo(ctx context.Context, id int) (*model.Item, error) {
	items, err := s.Todos(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			it := items[i]
			return &it, nil
		}
	}
	return nil, nil
}
