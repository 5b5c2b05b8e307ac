package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_ReadAll_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0x01, 0xFF}, 0600))

	data, err := New().ReadAll(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0xFF}, data)
}

func TestSource_ReadAll_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	data, err := New().ReadAll(context.Background(), path)

	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestSource_ReadAll_MissingFile(t *testing.T) {
	_, err := New().ReadAll(context.Background(), filepath.Join(t.TempDir(), "nope.bin"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSource_ReadAll_Stdin(t *testing.T) {
	src := &Source{stdin: strings.NewReader("hello")}

	data, err := src.ReadAll(context.Background(), StdinPath)

	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
}

func TestSource_ReadAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().ReadAll(ctx, "anything")

	assert.ErrorIs(t, err, context.Canceled)
}
