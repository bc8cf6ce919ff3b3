package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/bewertigo/bewertigo/internal/adapters/outbound/input"
	"github.com/bewertigo/bewertigo/internal/domain"
)

// registerTools registers all bewertigo MCP tools on the given server.
func registerTools(s *server.MCPServer, h *handlers) {
	// 1. bewertigo_audit
	s.AddTool(
		mcplib.NewTool("bewertigo_audit",
			mcplib.WithDescription("Scores a local business's online presence from an audit input document and returns the full report as JSON"),
			mcplib.WithString("input",
				mcplib.Required(),
				mcplib.Description("Audit input document with business, performance, click_to_call, social, competitors, category and city sections"),
			),
			mcplib.WithString("format",
				mcplib.Description("Encoding of the input document: json (default) or yaml"),
			),
			mcplib.WithString("city",
				mcplib.Description("Overrides the city in the input document"),
			),
		),
		h.handleAudit,
	)

	// 2. bewertigo_audit_file
	s.AddTool(
		mcplib.NewTool("bewertigo_audit_file",
			mcplib.WithDescription("Scores the audit input file at the given path and returns the full report as JSON"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Path to a .json, .yaml or .yml audit input file"),
			),
			mcplib.WithString("city",
				mcplib.Description("Overrides the city in the input file"),
			),
		),
		h.handleAuditFile,
	)

	// 3. bewertigo_benchmark
	s.AddTool(
		mcplib.NewTool("bewertigo_benchmark",
			mcplib.WithDescription("Returns the industry-average score for a business category"),
			mcplib.WithString("category",
				mcplib.Required(),
				mcplib.Description("Business category label, e.g. restaurant or Beauty Salon"),
			),
			mcplib.WithString("city",
				mcplib.Description("City echoed back in the benchmark record"),
			),
		),
		h.handleBenchmark,
	)

	// 4. bewertigo_recommendations
	s.AddTool(
		mcplib.NewTool("bewertigo_recommendations",
			mcplib.WithDescription("Returns the recommended service links for a business category"),
			mcplib.WithString("category",
				mcplib.Required(),
				mcplib.Description("Business category label"),
			),
		),
		h.handleRecommendations,
	)
}

func (h *handlers) handleAudit(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	doc, err := request.RequireString("input")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	args := request.GetArguments()
	format := input.FormatJSON
	if f, ok := args["format"].(string); ok && f != "" {
		format = input.Format(strings.ToLower(f))
	}

	in, err := input.Decode(strings.NewReader(doc), format)
	if err != nil {
		return errorResult(fmt.Sprintf("invalid input: %v", err)), nil
	}
	if city, ok := args["city"].(string); ok && city != "" {
		in.City = city
	}

	cfg, err := h.svc.LoadConfig(h.configDir)
	if err != nil {
		return errorResult(err.Error()), nil
	}

	h.logger.Info("tool called", zap.String("tool", "bewertigo_audit"), zap.String("business", in.Business.Name))
	report, err := h.svc.Audit(in, cfg)
	if err != nil {
		return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
	}
	return jsonResult(report)
}

func (h *handlers) handleAuditFile(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	city, _ := request.GetArguments()["city"].(string)

	h.logger.Info("tool called", zap.String("tool", "bewertigo_audit_file"), zap.String("path", path))
	report, err := h.svc.AuditFile(path, h.configDir, city)
	if err != nil {
		return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
	}
	return jsonResult(report)
}

func (h *handlers) handleBenchmark(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	category, err := request.RequireString("category")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	city, _ := request.GetArguments()["city"].(string)

	b, err := h.svc.Benchmark(h.configDir, category, city)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return jsonResult(b)
}

func (h *handlers) handleRecommendations(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	category, err := request.RequireString("category")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"category":        category,
		"recommendations": domain.CallsToAction(category),
	})
}

func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
