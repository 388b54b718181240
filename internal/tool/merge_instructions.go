package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mailtone/mailtone-mcp/internal/analysis"
)

// MergeInstructionsRequest contains the inferred tone and the user's
// refinement instruction.
type MergeInstructionsRequest struct {
	Tone        string `json:"tone" jsonschema:"inferred or recommended tone"`
	Instruction string `json:"instruction,omitempty" jsonschema:"free-form refinement instruction"`
}

// MergeInstructionsResponse contains the merged tone instruction.
type MergeInstructionsResponse struct {
	RefinedTone string `json:"refined_tone" jsonschema:"tone merged with the instruction"`
}

// NewMergeInstructions creates a new MergeInstructions tool.
func NewMergeInstructions() *MergeInstructions {
	return &MergeInstructions{}
}

// MergeInstructions merges a refinement instruction into a tone.
type MergeInstructions struct{}

// MergeInstructions merges a user instruction with the inferred tone.
func (t *MergeInstructions) MergeInstructions(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input MergeInstructionsRequest,
) (*mcp.CallToolResult, MergeInstructionsResponse, error) {
	return nil, MergeInstructionsResponse{
		RefinedTone: analysis.MergeInstructions(input.Tone, input.Instruction),
	}, nil
}
