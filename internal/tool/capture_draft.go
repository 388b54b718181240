package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"

	"github.com/mailtone/mailtone-mcp/internal/draft"
)

// CaptureDraftRequest identifies the draft to capture.
type CaptureDraftRequest struct {
	DraftID string `json:"draft_id,omitempty" jsonschema:"Gmail draft ID, latest draft when omitted"`
}

// CaptureDraftResponse contains the captured draft and its context.
type CaptureDraftResponse struct {
	Draft   DraftContent `json:"draft" jsonschema:"captured draft content"`
	Context ContextInfo  `json:"context" jsonschema:"context analysis of the draft"`
}

type captureDraftSvc interface {
	GetDraft(ctx context.Context, draftID string) (*gmail.Draft, error)
	ListDrafts(ctx context.Context, maxResults int64) (*gmail.ListDraftsResponse, error)
}

type draftDecoder interface {
	Decode(gd *gmail.Draft) draft.Draft
}

// NewCaptureDraft creates a new CaptureDraft tool.
func NewCaptureDraft(svc captureDraftSvc, dec draftDecoder, analyzer contextAnalyzer) *CaptureDraft {
	return &CaptureDraft{
		svc:      svc,
		dec:      dec,
		analyzer: analyzer,
	}
}

// CaptureDraft fetches a Gmail draft and analyzes its context.
type CaptureDraft struct {
	svc      captureDraftSvc
	dec      draftDecoder
	analyzer contextAnalyzer
}

// CaptureDraft captures a draft and derives its context.
func (t *CaptureDraft) CaptureDraft(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CaptureDraftRequest,
) (*mcp.CallToolResult, CaptureDraftResponse, error) {
	draftID := input.DraftID
	if draftID == "" {
		list, err := t.svc.ListDrafts(ctx, 1)
		if err != nil {
			return nil, CaptureDraftResponse{}, fmt.Errorf("svc.ListDrafts failed: %w", err)
		}
		if len(list.Drafts) == 0 {
			return nil, CaptureDraftResponse{}, errors.New("no drafts found")
		}
		draftID = list.Drafts[0].Id
	}

	gd, err := t.svc.GetDraft(ctx, draftID)
	if err != nil {
		return nil, CaptureDraftResponse{}, fmt.Errorf("get draft %s failed: %w", draftID, err)
	}

	d := t.dec.Decode(gd)

	return nil, CaptureDraftResponse{
		Draft:   newDraftContent(d),
		Context: newContextInfo(t.analyzer.Analyze(d.Subject, d.Content)),
	}, nil
}
