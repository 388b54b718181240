package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mailtone/mailtone-mcp/internal/analysis"
)

// ClassifyIntentRequest contains the email draft to classify.
type ClassifyIntentRequest struct {
	Subject string `json:"subject,omitempty" jsonschema:"email subject"`
	Content string `json:"content" jsonschema:"email body text"`
}

// ClassifyIntentResponse contains the classification.
type ClassifyIntentResponse struct {
	Intent          string `json:"intent" jsonschema:"classified intent category"`
	RecommendedTone string `json:"recommended_tone" jsonschema:"recommended tone for the intent"`
}

type intentClassifier interface {
	Classify(text string) analysis.Intent
}

// NewClassifyIntent creates a new ClassifyIntent tool.
func NewClassifyIntent(classifier intentClassifier) *ClassifyIntent {
	return &ClassifyIntent{classifier: classifier}
}

// ClassifyIntent assigns one intent category to a draft.
type ClassifyIntent struct {
	classifier intentClassifier
}

// ClassifyIntent classifies the intent of an email draft.
func (t *ClassifyIntent) ClassifyIntent(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ClassifyIntentRequest,
) (*mcp.CallToolResult, ClassifyIntentResponse, error) {
	intent := t.classifier.Classify(input.Subject + " " + input.Content)

	return nil, ClassifyIntentResponse{
		Intent:          string(intent),
		RecommendedTone: analysis.ToneForIntent(intent),
	}, nil
}
