package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"

	"github.com/mailtone/mailtone-mcp/internal/analysis"
	"github.com/mailtone/mailtone-mcp/internal/draft"
)

// RefineDraftRequest identifies the draft to refine and how.
type RefineDraftRequest struct {
	DraftID     string `json:"draft_id" jsonschema:"Gmail draft ID"`
	Instruction string `json:"instruction,omitempty" jsonschema:"free-form refinement instruction"`
	Update      bool   `json:"update,omitempty" jsonschema:"write the refined content back to the draft"`
}

// RefineDraftResponse contains the refined email content.
type RefineDraftResponse struct {
	Draft          DraftContent `json:"draft" jsonschema:"original draft content"`
	Intent         string       `json:"intent" jsonschema:"classified intent category"`
	RefinedTone    string       `json:"refined_tone" jsonschema:"tone merged with the instruction"`
	RefinedContent string       `json:"refined_content" jsonschema:"AI-refined email body"`
	Updated        bool         `json:"updated,omitempty" jsonschema:"whether the draft was updated"`
}

type refineDraftSvc interface {
	GetDraft(ctx context.Context, draftID string) (*gmail.Draft, error)
	UpdateDraft(ctx context.Context, draftID, raw string) (*gmail.Draft, error)
}

type refiner interface {
	RefineEmail(ctx context.Context, subject, content, intent, tone string) (string, error)
}

// NewRefineDraft creates a new RefineDraft tool.
func NewRefineDraft(svc refineDraftSvc, dec draftDecoder, analyzer contextAnalyzer, ref refiner) *RefineDraft {
	return &RefineDraft{
		svc:      svc,
		dec:      dec,
		analyzer: analyzer,
		ref:      ref,
	}
}

// RefineDraft rewrites a Gmail draft guided by its analyzed context and
// an optional user instruction.
type RefineDraft struct {
	svc      refineDraftSvc
	dec      draftDecoder
	analyzer contextAnalyzer
	ref      refiner
}

// RefineDraft refines a draft, optionally writing the result back.
func (t *RefineDraft) RefineDraft(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RefineDraftRequest,
) (*mcp.CallToolResult, RefineDraftResponse, error) {
	gd, err := t.svc.GetDraft(ctx, input.DraftID)
	if err != nil {
		return nil, RefineDraftResponse{}, fmt.Errorf("get draft %s failed: %w", input.DraftID, err)
	}

	d := t.dec.Decode(gd)
	info := t.analyzer.Analyze(d.Subject, d.Content)
	refinedTone := analysis.MergeInstructions(info.Tone, input.Instruction)

	refined, err := t.ref.RefineEmail(ctx, d.Subject, d.Content, string(info.Intent), refinedTone)
	if err != nil {
		return nil, RefineDraftResponse{}, fmt.Errorf("ref.RefineEmail failed: %w", err)
	}

	updated := false
	if input.Update {
		raw := draft.ComposeRaw(d.To, d.Subject, refined)
		if _, err := t.svc.UpdateDraft(ctx, d.ID, raw); err != nil {
			return nil, RefineDraftResponse{}, fmt.Errorf("svc.UpdateDraft failed: %w", err)
		}
		updated = true
	}

	return nil, RefineDraftResponse{
		Draft:          newDraftContent(d),
		Intent:         string(info.Intent),
		RefinedTone:    refinedTone,
		RefinedContent: refined,
		Updated:        updated,
	}, nil
}
