package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ali-raheem/shannon/internal/core/domain"
)

func TestServer_handleScan(t *testing.T) {
	ctx := context.Background()

	t.Run("returns report summary and edges", func(t *testing.T) {
		mockScan := &mockScanService{
			result: domain.ScanResult{Report: sampleReport()},
		}
		ports := testPorts()
		ports.Scan = mockScan
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := ScanInput{Path: "/tmp/sample.bin", BlockSize: 1024}
		_, output, err := server.handleScan(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "/tmp/sample.bin", output.Path)
		assert.Equal(t, int64(4096), output.Size)
		assert.Equal(t, 4, output.Blocks)
		assert.Equal(t, 5.4, output.FileEntropy)
		require.Len(t, output.Edges, 1)
		assert.Equal(t, 2, output.Edges[0].BlockIndex)
		assert.Equal(t, 2048, output.Edges[0].ByteOffset)
		assert.Equal(t, "rising", output.Edges[0].Type)
	})

	t.Run("applies defaults for omitted options", func(t *testing.T) {
		mockScan := &mockScanService{}
		ports := testPorts()
		ports.Scan = mockScan
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := ScanInput{Path: "/tmp/sample.bin"}
		_, _, err = server.handleScan(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultBlockSize, mockScan.lastOpts.BlockSize)
		assert.InDelta(t, 7.6, mockScan.lastOpts.Thresholds.High, 1e-9)
		assert.InDelta(t, 6.8, mockScan.lastOpts.Thresholds.Low, 1e-9)
	})

	t.Run("accepts absolute thresholds", func(t *testing.T) {
		mockScan := &mockScanService{}
		ports := testPorts()
		ports.Scan = mockScan
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := ScanInput{Path: "/tmp/sample.bin", High: 7.0, Low: 6.0}
		_, _, err = server.handleScan(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 7.0, mockScan.lastOpts.Thresholds.High)
		assert.Equal(t, 6.0, mockScan.lastOpts.Thresholds.Low)
	})

	t.Run("returns error on scan failure", func(t *testing.T) {
		mockScan := &mockScanService{
			err: errors.New("scan failed"),
		}
		ports := testPorts()
		ports.Scan = mockScan
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := ScanInput{Path: "/tmp/missing.bin"}
		_, _, err = server.handleScan(ctx, nil, input)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "scan failed")
	})
}

func TestServer_handleEntropy(t *testing.T) {
	ctx := context.Background()

	t.Run("computes entropy of text", func(t *testing.T) {
		server, err := NewServer(testPorts())
		require.NoError(t, err)

		input := EntropyInput{Data: "aaaabbbb"}
		_, output, err := server.handleEntropy(ctx, nil, input)

		require.NoError(t, err)
		assert.InDelta(t, 1.0, output.Entropy, 1e-9)
		assert.InDelta(t, 8.0, output.TotalEntropy, 1e-9)
		assert.Equal(t, 8, output.Bytes)
	})

	t.Run("empty input has zero entropy", func(t *testing.T) {
		server, err := NewServer(testPorts())
		require.NoError(t, err)

		_, output, err := server.handleEntropy(ctx, nil, EntropyInput{})

		require.NoError(t, err)
		assert.Zero(t, output.Entropy)
		assert.Zero(t, output.Bytes)
	})
}
