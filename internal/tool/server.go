package tool

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type draftSvc interface {
	captureDraftSvc
	refineDraftSvc
}

// NewServer creates an MCP server with email context and tone tools.
// The refine_draft tool is registered only when a refiner is provided.
func NewServer(analyzer contextAnalyzer, tones toneAnalyzer, classifier intentClassifier, svc draftSvc, dec draftDecoder, ref refiner) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "mailtone-helper", Version: "v1.0.0"}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_context",
		Description: "Analyze an email draft: keywords, intent and recommended tone",
	}, NewAnalyzeContext(analyzer).AnalyzeContext)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_tone",
		Description: "Analyze the tone of a text: sentiment, linguistic features and overall tone",
	}, NewAnalyzeTone(tones).AnalyzeTone)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "classify_intent",
		Description: "Classify the intent of an email draft into one category",
	}, NewClassifyIntent(classifier).ClassifyIntent)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_structure",
		Description: "Split an email into greeting, body and signature",
	}, NewParseStructure().ParseStructure)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge_instructions",
		Description: "Merge a free-form refinement instruction into a tone description",
	}, NewMergeInstructions().MergeInstructions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "capture_draft",
		Description: "Capture a Gmail draft and analyze its context",
	}, NewCaptureDraft(svc, dec, analyzer).CaptureDraft)

	if ref != nil {
		mcp.AddTool(server, &mcp.Tool{
			Name:        "refine_draft",
			Description: "Rewrite a Gmail draft with AI, guided by its context and an optional instruction",
		}, NewRefineDraft(svc, dec, analyzer, ref).RefineDraft)
	}

	return server
}
