package upload

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  []byte
		maxBytes int64
		wantErr  error
		wantText string
	}{
		{
			name:     "valid text file",
			filename: "main.go",
			content:  []byte("package main\n"),
			maxBytes: 64,
			wantText: "package main\n",
		},
		{
			name:     "exactly at the limit",
			filename: "a.txt",
			content:  []byte("abcd"),
			maxBytes: 4,
			wantText: "abcd",
		},
		{
			name:     "one byte over the limit",
			filename: "a.txt",
			content:  []byte("abcde"),
			maxBytes: 4,
			wantErr:  ErrTooLarge,
		},
		{
			name:     "invalid utf-8",
			filename: "blob.bin",
			content:  []byte{0xff, 0xfe, 0xfd},
			maxBytes: 64,
			wantErr:  ErrNotText,
		},
		{
			name:     "empty file",
			filename: "empty.py",
			content:  []byte(""),
			maxBytes: 64,
			wantErr:  ErrEmptyFile,
		},
		{
			name:     "whitespace only",
			filename: "blank.py",
			content:  []byte("  \n\t\n"),
			maxBytes: 64,
			wantErr:  ErrEmptyFile,
		},
		{
			name:     "blank filename",
			filename: "   ",
			content:  []byte("code"),
			maxBytes: 64,
			wantErr:  ErrNoFilename,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(bytes.NewReader(tt.content), tt.filename, tt.maxBytes)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Read() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Read() unexpected error: %v", err)
			}
			if got.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", got.Text, tt.wantText)
			}
			if got.Name != tt.filename {
				t.Errorf("Name = %q, want %q", got.Name, tt.filename)
			}
			if got.Size != len(tt.content) {
				t.Errorf("Size = %d, want %d", got.Size, len(tt.content))
			}
		})
	}
}

func TestRead_NeverBuffersPastLimit(t *testing.T) {
	// A reader much larger than the limit must still be rejected cheaply.
	huge := strings.NewReader(strings.Repeat("x", 1<<20))

	_, err := Read(huge, "big.txt", 16)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("Expected ErrTooLarge, got %v", err)
	}
	if huge.Len() < (1<<20)-64 {
		t.Errorf("Reader drained too far: %d bytes left", huge.Len())
	}
}
