package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mailtone/mailtone-mcp/internal/analysis"
)

// ParseStructureRequest contains the email text to split.
type ParseStructureRequest struct {
	Text string `json:"text" jsonschema:"raw email body text"`
}

// ParseStructureResponse contains the structural segments.
type ParseStructureResponse struct {
	Greeting  string `json:"greeting,omitempty" jsonschema:"greeting line, empty when absent"`
	Body      string `json:"body" jsonschema:"main body text"`
	Signature string `json:"signature,omitempty" jsonschema:"signature block, empty when absent"`
}

// NewParseStructure creates a new ParseStructure tool.
func NewParseStructure() *ParseStructure {
	return &ParseStructure{}
}

// ParseStructure splits an email into greeting, body and signature.
type ParseStructure struct{}

// ParseStructure parses the structural segments of an email.
func (t *ParseStructure) ParseStructure(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ParseStructureRequest,
) (*mcp.CallToolResult, ParseStructureResponse, error) {
	segments := analysis.ParseStructure(input.Text)

	return nil, ParseStructureResponse{
		Greeting:  segments.Greeting,
		Body:      segments.Body,
		Signature: segments.Signature,
	}, nil
}
