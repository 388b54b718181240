package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mailtone/mailtone-mcp/internal/analysis"
)

func TestParseStructure(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected analysis.Segments
	}{
		{
			name: "greeting body and signature",
			text: "Dear John,\nHow are you?\nBest regards,\nJane",
			expected: analysis.Segments{
				Greeting:  "Dear John,",
				Body:      "How are you?",
				Signature: "Best regards,\nJane",
			},
		},
		{
			name: "no greeting",
			text: "Quick question about the invoice.\nCheers,\nSam",
			expected: analysis.Segments{
				Body:      "Quick question about the invoice.",
				Signature: "Cheers,\nSam",
			},
		},
		{
			name: "no signature",
			text: "Hi team,\nThe release is on track.",
			expected: analysis.Segments{
				Greeting: "Hi team,",
				Body:     "The release is on track.",
			},
		},
		{
			name: "greeting only within first five lines",
			text: "line1\nline2\nline3\nline4\nline5\nDear late greeting,",
			expected: analysis.Segments{
				Body: "line1\nline2\nline3\nline4\nline5\nDear late greeting,",
			},
		},
		{
			name: "signature on first line leaves empty body",
			text: "Thanks\nJoe",
			expected: analysis.Segments{
				Signature: "Thanks\nJoe",
			},
		},
		{
			name: "blank lines trimmed from body",
			text: "Hello Maria,\n\nSee attached notes.\n\nSincerely,\nLee",
			expected: analysis.Segments{
				Greeting:  "Hello Maria,",
				Body:      "See attached notes.",
				Signature: "Sincerely,\nLee",
			},
		},
		{
			name:     "empty input",
			text:     "",
			expected: analysis.Segments{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, analysis.ParseStructure(tc.text))
		})
	}
}
