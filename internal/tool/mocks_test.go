package tool_test

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/gmail/v1"

	"github.com/mailtone/mailtone-mcp/internal/analysis"
)

type contextAnalyzerMock struct {
	AnalyzeFunc func(subject, content string) analysis.ContextInfo
}

func (m *contextAnalyzerMock) Analyze(subject, content string) analysis.ContextInfo {
	return m.AnalyzeFunc(subject, content)
}

type toneAnalyzerMock struct {
	AnalyzeFunc func(text string) analysis.ToneAnalysis
}

func (m *toneAnalyzerMock) Analyze(text string) analysis.ToneAnalysis {
	return m.AnalyzeFunc(text)
}

type classifierMock struct {
	ClassifyFunc func(text string) analysis.Intent
}

func (m *classifierMock) Classify(text string) analysis.Intent {
	return m.ClassifyFunc(text)
}

type refinerMock struct {
	RefineEmailFunc func(ctx context.Context, subject, content, intent, tone string) (string, error)
}

func (m *refinerMock) RefineEmail(ctx context.Context, subject, content, intent, tone string) (string, error) {
	return m.RefineEmailFunc(ctx, subject, content, intent, tone)
}

type draftSvcMock struct {
	GetDraftFunc    func(ctx context.Context, draftID string) (*gmail.Draft, error)
	UpdateDraftFunc func(ctx context.Context, draftID, raw string) (*gmail.Draft, error)
	ListDraftsFunc  func(ctx context.Context, maxResults int64) (*gmail.ListDraftsResponse, error)
}

func (m *draftSvcMock) GetDraft(ctx context.Context, draftID string) (*gmail.Draft, error) {
	return m.GetDraftFunc(ctx, draftID)
}

func (m *draftSvcMock) UpdateDraft(ctx context.Context, draftID, raw string) (*gmail.Draft, error) {
	return m.UpdateDraftFunc(ctx, draftID, raw)
}

func (m *draftSvcMock) ListDrafts(ctx context.Context, maxResults int64) (*gmail.ListDraftsResponse, error) {
	return m.ListDraftsFunc(ctx, maxResults)
}

func newSession(t *testing.T, server *mcp.Server) (context.Context, *mcp.ClientSession) {
	t.Helper()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	ctx := context.Background()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = clientSession.Close() })

	return ctx, clientSession
}
