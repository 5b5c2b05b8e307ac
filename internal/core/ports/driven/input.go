package driven

import "context"

// InputSource supplies the complete byte buffer for a scan.
// Implementations decide what a path means (filesystem path, "-" for
// stdin). The whole buffer is materialised before scanning begins; the
// entropy computation is block-local and needs no lookahead.
type InputSource interface {
	// ReadAll returns the full contents of the named input.
	ReadAll(ctx context.Context, path string) ([]byte, error)
}
