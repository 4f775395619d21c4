package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Setup sends the standard logger to path, creating its directory, and
// returns a function that closes the file. An empty path keeps stderr.
// Console programs log to a file so diagnostics never land on the screen.
func Setup(path string) (func(), error) {
	if path == "" {
		log.SetOutput(os.Stderr)
		return func() {}, nil
	}

	w, err := Open(path)
	if err != nil {
		return nil, err
	}
	log.SetOutput(w)
	return func() {
		log.SetOutput(os.Stderr)
		w.Close()
	}, nil
}

// Open opens path for appending, creating it and its directory.
func Open(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return f, nil
}
