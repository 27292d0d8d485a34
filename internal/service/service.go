// Package service defines the backend-agnostic interface for todo retrieval.
package service

import (
	"context"

	"github.com/idilsaglam/todoview/internal/model"
)

// Service is the read-only source of todo records.
// Views and commands never talk HTTP directly; they go through this interface.
type Service interface {
	// Todos returns the full collection in source order.
	Todos(ctx context.Context) ([]model.Item, error)

	// Todo returns the record addressed by id.
	// A nil item with a nil error means the source answered but held no usable record.
	Todo(ctx context.Context, id int) (*model.Item, error)
}
