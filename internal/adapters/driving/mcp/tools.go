package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ali-raheem/shannon/internal/core/domain"
)

// ScanInput is the input schema for the scan tool.
type ScanInput struct {
	Path      string  `json:"path" jsonschema:"path of the file to analyse"`
	BlockSize int     `json:"block_size,omitempty" jsonschema:"bytes per block (default 1024)"`
	High      float64 `json:"high,omitempty" jsonschema:"high threshold, fraction of 8 bits/byte or absolute (default 0.95)"`
	Low       float64 `json:"low,omitempty" jsonschema:"low threshold, fraction of 8 bits/byte or absolute (default 0.85)"`
}

// ScanOutput is the output schema for the scan tool.
type ScanOutput struct {
	Path         string       `json:"path"`
	Size         int64        `json:"size"`
	BlockSize    int          `json:"block_size"`
	Blocks       int          `json:"blocks"`
	MeanEntropy  float64      `json:"mean_entropy"`
	MinEntropy   float64      `json:"min_entropy"`
	MaxEntropy   float64      `json:"max_entropy"`
	FileEntropy  float64      `json:"file_entropy"`
	TotalEntropy float64      `json:"total_entropy"`
	Edges        []EdgeOutput `json:"edges"`
	CreatedAt    time.Time    `json:"created_at"`
}

// EdgeOutput represents a single detected entropy transition.
type EdgeOutput struct {
	BlockIndex int    `json:"block_index"`
	ByteOffset int    `json:"byte_offset"`
	Type       string `json:"type"`
}

// EntropyInput is the input schema for the entropy tool.
type EntropyInput struct {
	Data string `json:"data" jsonschema:"raw text to compute the entropy of"`
}

// EntropyOutput is the output schema for the entropy tool.
type EntropyOutput struct {
	Entropy      float64 `json:"entropy"`
	TotalEntropy float64 `json:"total_entropy"`
	Bytes        int     `json:"bytes"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "entropy_scan",
		Description: "Compute block-wise Shannon entropy of a file and detect high/low entropy transitions",
	}, s.handleScan)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "entropy_value",
		Description: "Compute the Shannon entropy of a piece of text, in bits per byte",
	}, s.handleEntropy)
}

// handleScan handles the entropy_scan tool invocation.
func (s *Server) handleScan(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ScanInput,
) (*mcp.CallToolResult, ScanOutput, error) {
	blockSize := input.BlockSize
	if blockSize <= 0 {
		blockSize = domain.DefaultBlockSize
	}
	high := input.High
	if high == 0 {
		high = domain.DefaultHighThreshold
	}
	low := input.Low
	if low == 0 {
		low = domain.DefaultLowThreshold
	}

	opts := domain.ScanOptions{
		BlockSize:  blockSize,
		Thresholds: domain.FractionalThresholds(high, low),
	}
	result, err := s.ports.Scan.Scan(ctx, input.Path, opts)
	if err != nil {
		return nil, ScanOutput{}, err
	}

	r := result.Report
	output := ScanOutput{
		Path:         r.Path,
		Size:         r.Size,
		BlockSize:    r.BlockSize,
		Blocks:       r.Blocks,
		MeanEntropy:  r.MeanEntropy,
		MinEntropy:   r.MinEntropy,
		MaxEntropy:   r.MaxEntropy,
		FileEntropy:  r.FileEntropy,
		TotalEntropy: r.TotalEntropy,
		Edges:        make([]EdgeOutput, len(r.Edges)),
		CreatedAt:    r.CreatedAt,
	}
	for i, e := range r.Edges {
		output.Edges[i] = EdgeOutput{
			BlockIndex: e.BlockIndex,
			ByteOffset: e.BlockIndex * r.BlockSize,
			Type:       e.Type.String(),
		}
	}

	return nil, output, nil
}

// handleEntropy handles the entropy_value tool invocation.
func (s *Server) handleEntropy(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input EntropyInput,
) (*mcp.CallToolResult, EntropyOutput, error) {
	data := []byte(input.Data)

	output := EntropyOutput{
		Entropy:      s.ports.Analyser.Entropy(data),
		TotalEntropy: s.ports.Analyser.TotalEntropy(data),
		Bytes:        len(data),
	}

	return nil, output, nil
}
