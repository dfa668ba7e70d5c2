package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const adherenceURI = "medisafe://adherence"

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         adherenceURI,
		Name:        "Adherence Trend",
		Description: "Today's taken percentage against previous days",
		MIMEType:    "application/json",
	}, s.handleAdherenceResource)
}

func (s *Server) handleAdherenceResource(ctx context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	a, err := s.logs.Adherence(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute adherence: %w", err)
	}

	out := map[string]any{
		"today_percent": a.TodayPercent,
		"past_percent":  a.PastPercent,
		"message":       a.Message,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      adherenceURI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
