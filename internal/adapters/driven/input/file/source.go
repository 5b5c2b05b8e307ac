// Package file provides the filesystem implementation of the
// InputSource port. The path "-" reads from stdin instead.
package file

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ali-raheem/shannon/internal/core/ports/driven"
)

// StdinPath is the pseudo-path that selects standard input.
const StdinPath = "-"

// Ensure Source implements the interface.
var _ driven.InputSource = (*Source)(nil)

// Source reads scan input from the filesystem or stdin.
type Source struct {
	stdin io.Reader
}

// New creates a new filesystem input source.
func New() *Source {
	return &Source{stdin: os.Stdin}
}

// ReadAll returns the full contents of the named input.
func (s *Source) ReadAll(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if path == StdinPath {
		data, err := io.ReadAll(s.stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
