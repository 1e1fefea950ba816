package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var ErrDocumentNotFound = errors.New("document not found")

// Document is a single blob that is always read and replaced as a whole.
type Document interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Location() string
}

type localDocument struct {
	path string
}

func NewLocalDocument(path string) Document {
	return &localDocument{path: path}
}

func (d *localDocument) Read(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("read %s: %w", d.path, err)
	}
	return data, nil
}

func (d *localDocument) Write(ctx context.Context, data []byte) error {
	if dir := filepath.Dir(d.path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(d.path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", d.path, err)
	}
	return nil
}

func (d *localDocument) Location() string {
	return d.path
}
