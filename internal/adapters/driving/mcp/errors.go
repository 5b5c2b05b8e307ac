// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It enables AI assistants like Claude to run entropy scans and inspect
// stored scan reports.
package mcp

import "errors"

// ErrMissingScanService is returned when the scan service is not provided.
var ErrMissingScanService = errors.New("mcp: scan service is required")

// ErrMissingAnalyserService is returned when the analyser service is not provided.
var ErrMissingAnalyserService = errors.New("mcp: analyser service is required")
