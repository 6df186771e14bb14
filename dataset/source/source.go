// Package source abstracts where a dataset's CSV bytes come from.
package source

import (
	"bytes"
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a dataset object does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Source fetches the raw bytes of a dataset.
type Source interface {
	// Fetch opens the dataset for reading. The caller closes the reader.
	Fetch(ctx context.Context) (io.ReadCloser, error)
}

// File returns a Source backed by a local file path.
func File(path string) Source {
	return fileSource(path)
}

type fileSource string

func (f fileSource) Fetch(_ context.Context) (io.ReadCloser, error) {
	rc, err := os.Open(string(f))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rc, nil
}

// Bytes returns a Source backed by an in-memory buffer.
// Useful for tests and embedded datasets.
func Bytes(b []byte) Source {
	return bytesSource(b)
}

type bytesSource []byte

func (b bytesSource) Fetch(_ context.Context) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b)), nil
}
