package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/citelens-labs/citelens-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for citelens resources.
	uriScheme = "citelens://"

	// recentCacheLimit caps the recent-scores resource.
	recentCacheLimit = 20
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the most recent cached scores.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "cache/recent",
		Name:        "recent-scores",
		Description: "Most recently cached citation scores",
		MIMEType:    "application/json",
	}, s.handleRecentScoresResource)

	// Template for a single cached record by content hash.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "cache/{hash}",
		Name:        "cached-score",
		Description: "Cached citation scores for one answer, by content hash",
		MIMEType:    "application/json",
	}, s.handleCachedScoreResource)
}

// scoreInfo is the JSON shape cache resources are served in.
type scoreInfo struct {
	Hash      string    `json:"hash"`
	Target    string    `json:"target"`
	Total     float64   `json:"total_score"`
	CreatedAt time.Time `json:"created_at"`
}

// handleRecentScoresResource returns the newest cached score records.
func (s *Server) handleRecentScoresResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Scores == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	records, err := s.ports.Scores.List(ctx, recentCacheLimit)
	if err != nil {
		return nil, fmt.Errorf("listing cached scores: %w", err)
	}

	infos := make([]scoreInfo, len(records))
	for i, rec := range records {
		infos[i] = scoreInfo{
			Hash:      rec.Hash,
			Target:    rec.Target,
			Total:     rec.Metrics.TotalScore,
			CreatedAt: rec.CreatedAt,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling scores: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleCachedScoreResource returns one cached record by hash.
func (s *Server) handleCachedScoreResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Scores == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	hash := extractHash(req.Params.URI)
	if hash == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	rec, err := s.ports.Scores.Get(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting cached score: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling score: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractHash extracts the content hash from a URI like citelens://cache/{hash}.
func extractHash(uri string) string {
	const prefix = uriScheme + "cache/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	hash := strings.TrimPrefix(uri, prefix)
	if hash == "recent" {
		return ""
	}
	return hash
}
