package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for scan report resources.
	uriScheme = "shannon://"

	// resourceListLimit caps the number of reports the list resource
	// returns.
	resourceListLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing recent scan reports.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "reports",
		Name:        "reports",
		Description: "Recent entropy scan reports, newest first",
		MIMEType:    "application/json",
	}, s.handleReportsResource)

	// Template for a single report.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "reports/{reportId}",
		Name:        "report",
		Description: "A single entropy scan report, including detected edges",
		MIMEType:    "application/json",
	}, s.handleReportResource)
}

// handleReportsResource returns a list of recent scan reports.
func (s *Server) handleReportsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	reports, err := s.ports.History.List(ctx, resourceListLimit)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}

	// Build simplified report list.
	type reportInfo struct {
		ID          string  `json:"id"`
		Path        string  `json:"path"`
		Size        int64   `json:"size"`
		FileEntropy float64 `json:"file_entropy"`
		Edges       int     `json:"edges"`
		CreatedAt   string  `json:"created_at"`
	}

	infos := make([]reportInfo, len(reports))
	for i, r := range reports {
		infos[i] = reportInfo{
			ID:          r.ID,
			Path:        r.Path,
			Size:        r.Size,
			FileEntropy: r.FileEntropy,
			Edges:       len(r.Edges),
			CreatedAt:   r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling reports: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleReportResource returns a single scan report by ID.
func (s *Server) handleReportResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract reportId from URI: shannon://reports/{reportId}
	reportID := extractReportID(req.Params.URI)
	if reportID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	report, err := s.ports.History.Get(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("getting report: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling report: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractReportID extracts the report ID from a URI like shannon://reports/{reportId}.
func extractReportID(uri string) string {
	const prefix = uriScheme + "reports/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
