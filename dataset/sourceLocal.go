package dataset

import (
	"io"
	"os"
	"path/filepath"
)

// SourceLocal reads dataset files from a base folder on local disk.
type SourceLocal struct {
	basePath string
}

// NewSourceLocal creates a local source rooted at basePath.
func NewSourceLocal(basePath string) *SourceLocal {
	return &SourceLocal{basePath: basePath}
}

// Open opens the file at path relative to the base folder.
func (s *SourceLocal) Open(path string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.basePath, path))
}
