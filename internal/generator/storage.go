package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ArtifactWriter abstracts output storage so renders stay pure and tests can
// capture artifacts in memory. Paths are slash-separated and relative to the
// output root.
type ArtifactWriter interface {
	EnsureDir(ctx context.Context, path string) error
	WriteFile(ctx context.Context, path string, data []byte) error
}

// NewFilesystemWriter returns an ArtifactWriter rooted at dir.
func NewFilesystemWriter(dir string) ArtifactWriter {
	return &filesystemWriter{root: dir}
}

type filesystemWriter struct {
	root string
}

func (w *filesystemWriter) EnsureDir(_ context.Context, path string) error {
	target, err := w.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("generator: ensure dir %s: %w", path, err)
	}
	return nil
}

func (w *filesystemWriter) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target, err := w.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("generator: ensure parent of %s: %w", path, err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("generator: write %s: %w", path, err)
	}
	return nil
}

func (w *filesystemWriter) resolve(path string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(strings.TrimSpace(path)))
	if clean == "" || clean == "." {
		return w.root, nil
	}
	if filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return "", errors.New("generator: artifact path escapes output root: " + path)
	}
	return filepath.Join(w.root, clean), nil
}
