// Package logging routes the standard logger. Output is discarded unless debug
// logging is on, in which case it goes to a file: the terminal belongs to the TUI.
package logging

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

const prefix = "todoview"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup points the standard logger at path when debug is set and silences it
// otherwise. Close the returned closer on exit.
func Setup(debug bool, path string) (io.Closer, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, err
	}
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}
