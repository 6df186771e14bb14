package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytes(t *testing.T) {
	ctx := context.Background()

	rc, err := Bytes([]byte("a,b\n1,2\n")).Fetch(ctx)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(data))
}

func TestFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "points.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))

	rc, err := File(path).Fetch(ctx)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(data))
}

func TestFile_NotFound(t *testing.T) {
	ctx := context.Background()

	_, err := File(filepath.Join(t.TempDir(), "missing.csv")).Fetch(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}
