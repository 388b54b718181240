package tool

import (
	"github.com/mailtone/mailtone-mcp/internal/analysis"
	"github.com/mailtone/mailtone-mcp/internal/draft"
)

// ContextInfo is the context analysis result exposed to MCP clients.
type ContextInfo struct {
	Keywords []string `json:"keywords" jsonschema:"up to 10 salient keywords"`
	Intent   string   `json:"intent" jsonschema:"classified intent category"`
	Tone     string   `json:"tone" jsonschema:"recommended tone for the intent"`
}

// DraftContent is an email draft reduced to what analysis works on.
type DraftContent struct {
	ID      string `json:"id" jsonschema:"Gmail draft ID"`
	To      string `json:"to,omitempty" jsonschema:"recipient"`
	Subject string `json:"subject" jsonschema:"email subject"`
	Content string `json:"content" jsonschema:"plain-text email body"`
}

func newContextInfo(info analysis.ContextInfo) ContextInfo {
	return ContextInfo{
		Keywords: info.Keywords,
		Intent:   string(info.Intent),
		Tone:     info.Tone,
	}
}

func newDraftContent(d draft.Draft) DraftContent {
	return DraftContent{
		ID:      d.ID,
		To:      d.To,
		Subject: d.Subject,
		Content: d.Content,
	}
}
