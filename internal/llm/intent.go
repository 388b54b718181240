package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mailtone/mailtone-mcp/internal/analysis"
)

const predictTimeout = 10 * time.Second

type completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Predictor classifies email intent via a chat completion model. It is
// an optional refinement over rule-based scoring; callers fall back to
// rules on any error.
type Predictor struct {
	client completer
}

// NewPredictor creates an intent predictor backed by the given client.
func NewPredictor(client completer) *Predictor {
	return &Predictor{client: client}
}

// Predict asks the model for one intent label. The response must be
// exactly one of the known labels, otherwise an error is returned.
func (p *Predictor) Predict(text string) (analysis.Intent, error) {
	labels := make([]string, 0, len(analysis.Intents))
	for _, in := range analysis.Intents {
		labels = append(labels, string(in))
	}

	system := "You classify the intent of email drafts. " +
		"Respond with exactly one of the following labels and nothing else: " +
		strings.Join(labels, ", ") + "."

	ctx, cancel := context.WithTimeout(context.Background(), predictTimeout)
	defer cancel()

	reply, err := p.client.Complete(ctx, system, text)
	if err != nil {
		return "", fmt.Errorf("client.Complete failed: %w", err)
	}

	intent, ok := analysis.ParseIntent(strings.TrimSpace(strings.ToLower(reply)))
	if !ok {
		return "", fmt.Errorf("model returned unknown intent %q", reply)
	}

	return intent, nil
}
