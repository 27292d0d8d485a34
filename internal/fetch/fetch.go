package fetch

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/idilsaglam/todoview/internal/model"
	"github.com/idilsaglam/todoview/internal/service"
)

// Sinks receive the outcome of a collection retrieval. Nil sinks are skipped.
type Sinks struct {
	Todos    func([]model.Item)
	Filtered func([]model.Item)
	Loading  func(bool)
	Error    func(string)
}

// Collection performs one retrieval of the full collection and reports into sinks:
// Loading(true) first, then either Todos+Filtered with the same slice or Error with
// a user-facing message, and Loading(false) on every exit path. The error, if any,
// is also returned so callers can classify it.
func Collection(ctx context.Context, svc service.Service, sinks Sinks) error {
	setLoading(sinks, true)
	defer setLoading(sinks, false)

	start := time.Now()
	items, err := svc.Todos(ctx)
	if err != nil {
		log.Printf("[fetch] todos failed after %s: %v", time.Since(start), err)
		if sinks.Error != nil {
			sinks.Error(Message(err))
		}
		return err
	}
	log.Printf("[fetch] todos: %d records in %s", len(items), time.Since(start))

	if sinks.Todos != nil {
		sinks.Todos(items)
	}
	if sinks.Filtered != nil {
		sinks.Filtered(items)
	}
	return nil
}

// One retrieves a single record and folds the outcome into a Status.
// Ready with a nil item means the source had no usable record.
func One(ctx context.Context, svc service.Service, id int) Status[*model.Item] {
	start := time.Now()
	it, err := svc.Todo(ctx, id)
	if err != nil {
		log.Printf("[fetch] todo %d failed after %s: %v", id, time.Since(start), err)
		return Failed[*model.Item](Message(err))
	}
	log.Printf("[fetch] todo %d found=%t in %s", id, it != nil, time.Since(start))
	return Ready(it)
}

// Message renders err the way the views show it.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var he *service.HTTPError
	if errors.As(err, &he) {
		return he.Error()
	}
	var ne *service.NetworkError
	if errors.As(err, &ne) {
		return ne.Error()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return service.UnknownErrorMessage
}

func setLoading(sinks Sinks, v bool) {
	if sinks.Loading != nil {
		sinks.Loading(v)
	}
}
