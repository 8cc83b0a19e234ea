package dataset

import (
	"fmt"
	"io"
	"strings"
)

const (
	SOURCE_MODE_LOCAL  = "local"
	SOURCE_MODE_S3     = "s3"
	SOURCE_MODE_MEMORY = "memory"
)

// Source provides read-only access to the dataset file.
type Source interface {
	Open(path string) (io.ReadCloser, error)
}

// NewSource creates a source for the given mode. Local sources resolve
// paths relative to folder; the memory mode starts empty and is mainly
// useful for tests and demos.
func NewSource(mode string, folder string, s3cfg S3Config) (Source, error) {
	switch strings.ToLower(mode) {
	case SOURCE_MODE_LOCAL, "":
		return NewSourceLocal(folder), nil
	case SOURCE_MODE_S3:
		if s3cfg.Bucket == "" {
			return nil, fmt.Errorf("missing required S3 configuration: bucket")
		}
		return NewSourceS3(s3cfg)
	case SOURCE_MODE_MEMORY:
		return NewSourceMemory(), nil
	default:
		return nil, fmt.Errorf("unsupported source mode: %s (supported: local, s3, memory)", mode)
	}
}
