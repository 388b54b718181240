// Package gservice wraps the Gmail drafts API.
package gservice

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/mailtone/mailtone-mcp/internal/auth"
)

const gmailUserID = "me"

// NewDrafts creates a Gmail drafts service using the OAuth config and
// token manager.
func NewDrafts(cfg *oauth2.Config, tok *auth.Token) *Drafts {
	return &Drafts{
		cfg: cfg,
		tok: tok,
	}
}

// Drafts provides access to the authenticated user's Gmail drafts.
type Drafts struct {
	cfg *oauth2.Config
	tok *auth.Token
}

// GetDraft fetches a draft with its full message payload.
func (d *Drafts) GetDraft(ctx context.Context, draftID string) (*gmail.Draft, error) {
	svc, err := d.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	result, err := svc.Users.Drafts.Get(gmailUserID, draftID).Format("full").Do()
	if err != nil {
		return nil, fmt.Errorf("drafts.Get failed: %w", err)
	}

	return result, nil
}

// UpdateDraft replaces a draft's message with the given raw RFC 2822
// content (base64url encoded).
func (d *Drafts) UpdateDraft(ctx context.Context, draftID, raw string) (*gmail.Draft, error) {
	svc, err := d.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	update := &gmail.Draft{
		Message: &gmail.Message{Raw: raw},
	}

	result, err := svc.Users.Drafts.Update(gmailUserID, draftID, update).Do()
	if err != nil {
		return nil, fmt.Errorf("drafts.Update failed: %w", err)
	}

	return result, nil
}

// ListDrafts lists draft summaries, newest first.
func (d *Drafts) ListDrafts(ctx context.Context, maxResults int64) (*gmail.ListDraftsResponse, error) {
	svc, err := d.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	result, err := svc.Users.Drafts.List(gmailUserID).MaxResults(maxResults).Do()
	if err != nil {
		return nil, fmt.Errorf("drafts.List failed: %w", err)
	}

	return result, nil
}

func (d *Drafts) newSvc(ctx context.Context) (*gmail.Service, error) {
	t, err := d.tok.OAuthToken()
	if err != nil {
		return nil, fmt.Errorf("tok.OAuthToken failed: %w", err)
	}

	clt := d.cfg.Client(ctx, t)

	svc, err := gmail.NewService(ctx, option.WithHTTPClient(clt))
	if err != nil {
		return nil, fmt.Errorf("gmail.NewService failed: %w", err)
	}

	return svc, nil
}
