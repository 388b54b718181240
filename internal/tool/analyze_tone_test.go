package tool_test

import (
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailtone/mailtone-mcp/internal/analysis"
	"github.com/mailtone/mailtone-mcp/internal/draft"
	"github.com/mailtone/mailtone-mcp/internal/format"
	"github.com/mailtone/mailtone-mcp/internal/tool"
)

func TestAnalyzeTone(t *testing.T) {
	tones := &toneAnalyzerMock{
		AnalyzeFunc: func(text string) analysis.ToneAnalysis {
			assert.Equal(t, "We need this fixed ASAP!", text)
			return analysis.ToneAnalysis{
				Sentiment: analysis.SentimentScore{Compound: -0.3, Label: analysis.SentimentNegative},
				Features: analysis.LinguisticFeatures{
					SentenceCount:     1,
					Exclamations:      1,
					FirstPerson:       1,
					AvgTokenLength:    3.8,
					AvgSentenceLength: 5,
				},
				SpecificTones: map[analysis.Tone]int{
					analysis.ToneUrgent:   2,
					analysis.ToneFormal:   0,
					analysis.ToneFriendly: 0,
				},
				OverallTone: "negative and urgent and casual",
			}
		},
	}

	server := tool.NewServer(&contextAnalyzerMock{}, tones, &classifierMock{}, &draftSvcMock{}, draft.NewDecoder(format.Converter{}), &refinerMock{})
	ctx, session := newSession(t, server)

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "analyze_tone",
		Arguments: tool.AnalyzeToneRequest{Text: "We need this fixed ASAP!"},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.False(t, result.IsError)

	var response tool.AnalyzeToneResponse
	require.NoError(t, json.Unmarshal(
		[]byte(result.Content[0].(*mcp.TextContent).Text),
		&response,
	))

	assert.Equal(t, tool.AnalyzeToneResponse{
		Sentiment: tool.SentimentScore{Compound: -0.3, Label: "negative"},
		Features: tool.LinguisticFeatures{
			SentenceCount:     1,
			Exclamations:      1,
			FirstPerson:       1,
			AvgTokenLength:    3.8,
			AvgSentenceLength: 5,
		},
		SpecificTones: map[string]int{"urgent": 2},
		OverallTone:   "negative and urgent and casual",
	}, response)
}
