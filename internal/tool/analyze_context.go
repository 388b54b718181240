package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mailtone/mailtone-mcp/internal/analysis"
)

// AnalyzeContextRequest contains the email draft to analyze.
type AnalyzeContextRequest struct {
	Subject string `json:"subject,omitempty" jsonschema:"email subject"`
	Content string `json:"content" jsonschema:"email body text"`
}

// AnalyzeContextResponse contains the derived context.
type AnalyzeContextResponse struct {
	Context ContextInfo `json:"context" jsonschema:"keywords, intent and recommended tone"`
}

type contextAnalyzer interface {
	Analyze(subject, content string) analysis.ContextInfo
}

// NewAnalyzeContext creates a new AnalyzeContext tool.
func NewAnalyzeContext(analyzer contextAnalyzer) *AnalyzeContext {
	return &AnalyzeContext{analyzer: analyzer}
}

// AnalyzeContext derives keywords, intent and tone from a draft.
type AnalyzeContext struct {
	analyzer contextAnalyzer
}

// AnalyzeContext analyzes the context of an email draft.
func (t *AnalyzeContext) AnalyzeContext(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeContextRequest,
) (*mcp.CallToolResult, AnalyzeContextResponse, error) {
	return nil, AnalyzeContextResponse{
		Context: newContextInfo(t.analyzer.Analyze(input.Subject, input.Content)),
	}, nil
}
