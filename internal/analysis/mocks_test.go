package analysis_test

import (
	"regexp"
	"strings"
)

// nlpMock implements the collaborator capabilities the analysis package
// consumes. Unset funcs fall back to simple deterministic behavior good
// enough for tests.
type nlpMock struct {
	TokenizeFunc   func(text string) []string
	SentencesFunc  func(text string) []string
	LemmaFunc      func(token string) string
	IsStopwordFunc func(token string) bool
	EntitiesFunc   func(text string) []string
	PolarityFunc   func(text string) float64
}

var mockSentenceRe = regexp.MustCompile(`[^.!?]+[.!?]?`)

var mockStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true,
	"to": true, "of": true, "for": true, "and": true, "i": true,
	"you": true, "we": true, "on": true, "in": true, "it": true,
	"this": true, "that": true, "be": true, "with": true, "your": true,
	"my": true, "so": true, "much": true,
}

func (m *nlpMock) Tokenize(text string) []string {
	if m.TokenizeFunc != nil {
		return m.TokenizeFunc(text)
	}
	var tokens []string
	for _, field := range strings.Fields(text) {
		tokens = append(tokens, strings.Trim(field, ".,!?;:"))
	}
	return tokens
}

func (m *nlpMock) Sentences(text string) []string {
	if m.SentencesFunc != nil {
		return m.SentencesFunc(text)
	}
	var sentences []string
	for _, s := range mockSentenceRe.FindAllString(text, -1) {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

func (m *nlpMock) Lemma(token string) string {
	if m.LemmaFunc != nil {
		return m.LemmaFunc(token)
	}
	return token
}

func (m *nlpMock) IsStopword(token string) bool {
	if m.IsStopwordFunc != nil {
		return m.IsStopwordFunc(token)
	}
	return mockStopwords[token]
}

func (m *nlpMock) Entities(text string) []string {
	if m.EntitiesFunc != nil {
		return m.EntitiesFunc(text)
	}
	return nil
}

func (m *nlpMock) Polarity(text string) float64 {
	if m.PolarityFunc != nil {
		return m.PolarityFunc(text)
	}
	return 0
}
