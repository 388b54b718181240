// Package enhance rewrites email drafts with an AI model, guided by the
// classified intent and refined tone.
package enhance

import (
	"context"
	"fmt"
	"strings"
)

const editorRole = "You are an expert email editor who helps refine emails to make them more effective."

type completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Refiner produces refined email content from a draft, its intent and
// the desired tone.
type Refiner struct {
	client completer
}

// NewRefiner creates a Refiner backed by the given completion client.
func NewRefiner(client completer) *Refiner {
	return &Refiner{client: client}
}

// RefineEmail asks the model for a rewritten email body. The rewrite
// keeps the original information and intent but adjusts language, tone
// and structure.
func (r *Refiner) RefineEmail(ctx context.Context, subject, content, intent, tone string) (string, error) {
	prompt := fmt.Sprintf(
		"Please rewrite the following email with the subject line: '%s'\n\n"+
			"The email's purpose is %s, and it should have a tone that is %s.\n\n"+
			"Original email content:\n\n%s\n\n"+
			"Please provide an improved version that maintains the same information and intent, "+
			"but with refined language, tone, and structure. Keep the email concise and impactful.",
		subject, intent, tone, content)

	refined, err := r.client.Complete(ctx, editorRole, prompt)
	if err != nil {
		return "", fmt.Errorf("client.Complete failed: %w", err)
	}

	return strings.TrimSpace(refined), nil
}
