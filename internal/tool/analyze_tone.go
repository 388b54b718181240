package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mailtone/mailtone-mcp/internal/analysis"
)

// AnalyzeToneRequest contains the text to analyze.
type AnalyzeToneRequest struct {
	Text string `json:"text" jsonschema:"text to analyze"`
}

// SentimentScore is the compound sentiment and its label.
type SentimentScore struct {
	Compound float64 `json:"compound" jsonschema:"compound polarity in [-1, 1]"`
	Label    string  `json:"label" jsonschema:"positive, negative or neutral"`
}

// LinguisticFeatures holds surface-level counts and ratios over the text.
type LinguisticFeatures struct {
	SentenceCount     int     `json:"sentence_count" jsonschema:"number of sentences"`
	Questions         int     `json:"questions" jsonschema:"number of question marks"`
	Exclamations      int     `json:"exclamations" jsonschema:"number of exclamation marks"`
	FirstPerson       int     `json:"first_person" jsonschema:"first person pronoun count"`
	SecondPerson      int     `json:"second_person" jsonschema:"second person pronoun count"`
	Modals            int     `json:"modals" jsonschema:"modal verb count"`
	Contractions      int     `json:"contractions" jsonschema:"contraction count"`
	AcademicWords     int     `json:"academic_words" jsonschema:"academic connective count"`
	AvgTokenLength    float64 `json:"avg_token_length" jsonschema:"average word length"`
	AvgSentenceLength float64 `json:"avg_sentence_length" jsonschema:"average words per sentence"`
}

// AnalyzeToneResponse contains the full tone analysis.
type AnalyzeToneResponse struct {
	Sentiment     SentimentScore     `json:"sentiment" jsonschema:"sentiment score"`
	Features      LinguisticFeatures `json:"features" jsonschema:"linguistic features"`
	SpecificTones map[string]int     `json:"specific_tones,omitempty" jsonschema:"per-tone indicator counts, zero counts omitted"`
	OverallTone   string             `json:"overall_tone" jsonschema:"fused tone description"`
}

type toneAnalyzer interface {
	Analyze(text string) analysis.ToneAnalysis
}

// NewAnalyzeTone creates a new AnalyzeTone tool.
func NewAnalyzeTone(analyzer toneAnalyzer) *AnalyzeTone {
	return &AnalyzeTone{analyzer: analyzer}
}

// AnalyzeTone scores sentiment, linguistic features and specific tones.
type AnalyzeTone struct {
	analyzer toneAnalyzer
}

// AnalyzeTone analyzes the tone of a text.
func (t *AnalyzeTone) AnalyzeTone(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeToneRequest,
) (*mcp.CallToolResult, AnalyzeToneResponse, error) {
	result := t.analyzer.Analyze(input.Text)

	tones := make(map[string]int, len(result.SpecificTones))
	for tone, count := range result.SpecificTones {
		if count > 0 {
			tones[string(tone)] = count
		}
	}
	if len(tones) == 0 {
		tones = nil
	}

	return nil, AnalyzeToneResponse{
		Sentiment: SentimentScore{
			Compound: result.Sentiment.Compound,
			Label:    string(result.Sentiment.Label),
		},
		Features: LinguisticFeatures{
			SentenceCount:     result.Features.SentenceCount,
			Questions:         result.Features.Questions,
			Exclamations:      result.Features.Exclamations,
			FirstPerson:       result.Features.FirstPerson,
			SecondPerson:      result.Features.SecondPerson,
			Modals:            result.Features.Modals,
			Contractions:      result.Features.Contractions,
			AcademicWords:     result.Features.AcademicWords,
			AvgTokenLength:    result.Features.AvgTokenLength,
			AvgSentenceLength: result.Features.AvgSentenceLength,
		},
		SpecificTones: tones,
		OverallTone:   result.OverallTone,
	}, nil
}
