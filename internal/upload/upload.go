// Package upload validates the code file sent with an ask request.
// Files are held in memory for the request only; nothing is persisted.
package upload

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

var (
	ErrNoFilename = errors.New("no file uploaded")
	ErrTooLarge   = errors.New("file too large")
	ErrNotText    = errors.New("file doesn't look like a text file")
	ErrEmptyFile  = errors.New("file is empty")
)

// File is a validated upload: UTF-8 text within the size limit.
type File struct {
	Name string
	Text string
	Size int
}

// Read drains the uploaded part and validates it. The reader is never
// consumed past maxBytes+1, so an oversized upload is rejected without
// buffering the whole body.
func Read(r io.Reader, filename string, maxBytes int64) (*File, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, ErrNoFilename
	}

	raw, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(raw)) > maxBytes {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, maxBytes)
	}

	if !utf8.Valid(raw) {
		return nil, ErrNotText
	}

	text := string(raw)
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyFile
	}

	return &File{
		Name: filename,
		Text: text,
		Size: len(raw),
	}, nil
}
