package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bewertigo/bewertigo/internal/domain"
)

// weightsDocument describes the fixed scoring weights and thresholds.
type weightsDocument struct {
	Weights       map[domain.Module]float64 `json:"weights"`
	Total         float64                   `json:"total"`
	TopIssueLimit int                       `json:"topIssueLimit"`
	Thresholds    map[string]float64        `json:"thresholds"`
}

// registerResources registers all bewertigo MCP resources on the given server.
func registerResources(s *server.MCPServer, h *handlers) {
	// 1. bewertigo://weights - module weights and thresholds
	s.AddResource(
		mcplib.NewResource(
			"bewertigo://weights",
			"Scoring Weights",
			mcplib.WithResourceDescription("Point weight of each module and the scoring thresholds"),
			mcplib.WithMIMEType("application/json"),
		),
		h.handleWeightsResource,
	)

	// 2. bewertigo://benchmarks - industry averages
	s.AddResource(
		mcplib.NewResource(
			"bewertigo://benchmarks",
			"Industry Benchmarks",
			mcplib.WithResourceDescription("Industry-average total score per category, including configured overrides"),
			mcplib.WithMIMEType("application/json"),
		),
		h.handleBenchmarksResource,
	)

	// 3. bewertigo://benchmarks/{category} - single category (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"bewertigo://benchmarks/{category}",
			"Category Benchmark",
			mcplib.WithTemplateDescription("Industry-average total score for one category"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		h.handleCategoryBenchmarkResource,
	)
}

func (h *handlers) handleWeightsResource(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	doc := weightsDocument{
		Weights:       make(map[domain.Module]float64, len(domain.Modules)),
		Total:         domain.Weights.Total(),
		TopIssueLimit: domain.TopIssueLimit,
		Thresholds: map[string]float64{
			"excellentRating":     domain.ExcellentRating,
			"goodRating":          domain.GoodRating,
			"fairRating":          domain.FairRating,
			"desktopLcpExcellent": domain.DesktopLCPExcellent,
			"desktopLcpGood":      domain.DesktopLCPGood,
			"mobileLcpExcellent":  domain.MobileLCPExcellent,
			"mobileLcpGood":       domain.MobileLCPGood,
			"maxStableCls":        domain.MaxStableCLS,
			"minFollowers":        domain.MinFollowers,
			"engagementRate":      domain.EngagementRate,
			"inactivityDays":      domain.InactivityDays,
			"minPhotos":           domain.MinPhotos,
			"clickToCallPenalty":  domain.ClickToCallPenalty,
		},
	}
	for _, m := range domain.Modules {
		doc.Weights[m] = m.Weight()
	}
	return jsonResource("bewertigo://weights", doc)
}

func (h *handlers) handleBenchmarksResource(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	cfg, err := h.svc.LoadConfig(h.configDir)
	if err != nil {
		return nil, err
	}
	return jsonResource("bewertigo://benchmarks", cfg.BenchmarkTable().Entries())
}

func (h *handlers) handleCategoryBenchmarkResource(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	category := templateArgument(request.Params.Arguments["category"])
	if category == "" {
		return nil, fmt.Errorf("category is required")
	}

	b, err := h.svc.Benchmark(h.configDir, category, "")
	if err != nil {
		return nil, err
	}
	return jsonResource(request.Params.URI, b)
}

// templateArgument unwraps a matched URI template variable, which may arrive
// as a string or a single-element list.
func templateArgument(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func jsonResource(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
