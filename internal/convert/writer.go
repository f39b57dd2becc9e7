package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pshev/chat2md/internal"
)

// DirWriter writes rendered documents into a single output directory,
// creating it on first use.
type DirWriter struct {
	Dir string

	created bool
}

// NewDirWriter creates a DirWriter for dir.
func NewDirWriter(dir string) *DirWriter {
	return &DirWriter{Dir: dir}
}

// Write persists one document under the writer's directory.
func (w *DirWriter) Write(doc internal.RenderedDocument) error {
	if !w.created {
		if err := os.MkdirAll(w.Dir, 0755); err != nil {
			return fmt.Errorf("create output directory %s: %w", w.Dir, err)
		}
		w.created = true
	}

	path := filepath.Join(w.Dir, doc.FileName)
	if err := os.WriteFile(path, []byte(doc.Content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
