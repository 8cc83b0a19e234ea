package dataset

import (
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
)

// SourceMemory holds dataset files in memory using go-billy's memfs.
type SourceMemory struct {
	fs billy.Filesystem
}

// NewSourceMemory creates an empty in-memory source.
func NewSourceMemory() *SourceMemory {
	return &SourceMemory{fs: memfs.New()}
}

// Write stores data under path, replacing any existing file.
func (s *SourceMemory) Write(path string, data []byte) error {
	file, err := s.fs.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.Write(data)
	return err
}

// Open opens the file at path.
func (s *SourceMemory) Open(path string) (io.ReadCloser, error) {
	return s.fs.Open(path)
}
