// Package fetch holds the retrieval state flow shared by the list and detail
// screens: a tagged fetch status and the fetchers that produce it.
package fetch

// Kind tags a Status.
type Kind int

const (
	KindLoading Kind = iota
	KindError
	KindReady
)

func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindReady:
		return "ready"
	default:
		return "loading"
	}
}

// Status is exactly one of Loading, Error{message} or Ready{data}.
// The zero value is Loading.
type Status[T any] struct {
	kind    Kind
	message string
	data    T
}

func Loading[T any]() Status[T] { return Status[T]{kind: KindLoading} }

func Failed[T any](message string) Status[T] {
	return Status[T]{kind: KindError, message: message}
}

func Ready[T any](data T) Status[T] { return Status[T]{kind: KindReady, data: data} }

func (s Status[T]) Kind() Kind      { return s.kind }
func (s Status[T]) IsLoading() bool { return s.kind == KindLoading }
func (s Status[T]) IsError() bool   { return s.kind == KindError }
func (s Status[T]) IsReady() bool   { return s.kind == KindReady }

// Message is the error text; empty unless the status is an error.
func (s Status[T]) Message() string { return s.message }

// Data returns the payload and whether the status is Ready.
func (s Status[T]) Data() (T, bool) { return s.data, s.kind == KindReady }
