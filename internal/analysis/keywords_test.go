package analysis_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mailtone/mailtone-mcp/internal/analysis"
)

func TestExtractKeywords(t *testing.T) {
	extractor := analysis.NewKeywordExtractor(&nlpMock{
		EntitiesFunc: func(string) []string {
			return []string{"Acme Corp"}
		},
	})

	subject := "Project deadline"
	content := "The project deadline is near. Review the project budget. Thanks."

	keywords := extractor.Extract(subject, content)

	// Entities first, then frequency terms; "thanks" is blacklisted.
	assert.Equal(t, []string{"acme corp", "project", "deadline", "near", "review", "budget"}, keywords)
}

func TestExtractKeywordsCapAndUniqueness(t *testing.T) {
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
		"golf", "hotel", "india", "juliet", "kilo", "lima",
	}
	content := strings.Join(words, " ")

	extractor := analysis.NewKeywordExtractor(&nlpMock{})
	keywords := extractor.Extract("", content)

	assert.Len(t, keywords, 10)

	seen := make(map[string]bool)
	for _, kw := range keywords {
		assert.False(t, seen[kw], "duplicate keyword %q", kw)
		seen[kw] = true
	}
}

func TestExtractKeywordsExcludesBlacklist(t *testing.T) {
	extractor := analysis.NewKeywordExtractor(&nlpMock{})

	keywords := extractor.Extract("hello", "dear hello thanks regards email email email")

	for _, banned := range []string{"email", "thanks", "dear", "hello", "hi", "regards"} {
		assert.NotContains(t, keywords, banned)
	}
	assert.Empty(t, keywords)
}

func TestExtractKeywordsFiltersShortAndNonAlnum(t *testing.T) {
	extractor := analysis.NewKeywordExtractor(&nlpMock{
		TokenizeFunc: func(text string) []string {
			return strings.Fields(text)
		},
	})

	keywords := extractor.Extract("", "ab c10 don't budget 42x ---")

	// "ab" too short, "don't" not alphanumeric, "---" not alphanumeric.
	assert.Equal(t, []string{"c10", "budget", "42x"}, keywords)
}

func TestExtractKeywordsLemmatizes(t *testing.T) {
	extractor := analysis.NewKeywordExtractor(&nlpMock{
		LemmaFunc: func(token string) string {
			return strings.TrimSuffix(token, "s")
		},
	})

	keywords := extractor.Extract("", "meetings meeting updates")

	assert.Equal(t, []string{"meeting", "update"}, keywords)
}

func TestExtractKeywordsDeterministic(t *testing.T) {
	extractor := analysis.NewKeywordExtractor(&nlpMock{
		EntitiesFunc: func(string) []string {
			return []string{"Jane", "Acme"}
		},
	})

	subject := "Quarterly review"
	content := "Budget numbers look solid. Quarterly targets met. Budget discussion pending."

	first := extractor.Extract(subject, content)
	for i := range 20 {
		assert.Equal(t, first, extractor.Extract(subject, content), fmt.Sprintf("run %d", i))
	}
}
