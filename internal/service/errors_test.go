package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPErrorMessage(t *testing.T) {
	assert.Equal(t, "HTTP error! Status: 404", (&HTTPError{Status: 404}).Error())
	assert.Equal(t, "HTTP error! Status: 500", (&HTTPError{Status: 500}).Error())
}

func TestNetworkErrorMessage(t *testing.T) {
	assert.Equal(t, "Network error", (&NetworkError{Description: "Network error"}).Error())
	assert.Equal(t, UnknownErrorMessage, (&NetworkError{}).Error())
}

func TestNetworkErrorUnwrap(t *testing.T) {
	err := &NetworkError{Description: "timeout", Err: context.DeadlineExceeded}
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestIsBackend(t *testing.T) {
	assert.True(t, IsBackend(&HTTPError{Status: 503}))
	assert.True(t, IsBackend(fmt.Errorf("list: %w", &NetworkError{Description: "x"})))
	assert.False(t, IsBackend(ErrNotFound))
	assert.False(t, IsBackend(errors.New("boom")))
}
