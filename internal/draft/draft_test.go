package draft_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/gmail/v1"

	"github.com/mailtone/mailtone-mcp/internal/draft"
	"github.com/mailtone/mailtone-mcp/internal/format"
)

func b64(s string) string {
	return base64.URLEncoding.EncodeToString([]byte(s))
}

func TestDecode(t *testing.T) {
	dec := draft.NewDecoder(format.Converter{})

	cases := []struct {
		name     string
		input    *gmail.Draft
		expected draft.Draft
	}{
		{
			name:     "nil draft",
			input:    nil,
			expected: draft.Draft{},
		},
		{
			name:     "draft without message",
			input:    &gmail.Draft{Id: "d-1"},
			expected: draft.Draft{ID: "d-1"},
		},
		{
			name: "single part plain text",
			input: &gmail.Draft{
				Id: "d-2",
				Message: &gmail.Message{
					Payload: &gmail.MessagePart{
						MimeType: "text/plain",
						Headers: []*gmail.MessagePartHeader{
							{Name: "To", Value: "jane@example.com"},
							{Name: "Subject", Value: "Quick question"},
						},
						Body: &gmail.MessagePartBody{Data: b64("Hi Jane,\nIs the report ready?")},
					},
				},
			},
			expected: draft.Draft{
				ID:      "d-2",
				To:      "jane@example.com",
				Subject: "Quick question",
				Content: "Hi Jane,\nIs the report ready?",
			},
		},
		{
			name: "multipart prefers plain text",
			input: &gmail.Draft{
				Id: "d-3",
				Message: &gmail.Message{
					Payload: &gmail.MessagePart{
						MimeType: "multipart/alternative",
						Headers: []*gmail.MessagePartHeader{
							{Name: "Subject", Value: "Status"},
						},
						Parts: []*gmail.MessagePart{
							{
								MimeType: "text/plain",
								Body:     &gmail.MessagePartBody{Data: b64("plain body")},
							},
							{
								MimeType: "text/html",
								Body:     &gmail.MessagePartBody{Data: b64("<p>html body</p>")},
							},
						},
					},
				},
			},
			expected: draft.Draft{ID: "d-3", Subject: "Status", Content: "plain body"},
		},
		{
			name: "html only falls back to converted text",
			input: &gmail.Draft{
				Id: "d-4",
				Message: &gmail.Message{
					Payload: &gmail.MessagePart{
						MimeType: "multipart/alternative",
						Headers: []*gmail.MessagePartHeader{
							{Name: "Subject", Value: "Newsletter"},
						},
						Parts: []*gmail.MessagePart{
							{
								MimeType: "text/html",
								Body:     &gmail.MessagePartBody{Data: b64("<p>Hi all,</p><p>Big news.</p>")},
							},
						},
					},
				},
			},
			expected: draft.Draft{ID: "d-4", Subject: "Newsletter", Content: "Hi all,\nBig news."},
		},
		{
			name: "nested multipart",
			input: &gmail.Draft{
				Id: "d-5",
				Message: &gmail.Message{
					Payload: &gmail.MessagePart{
						MimeType: "multipart/mixed",
						Headers: []*gmail.MessagePartHeader{
							{Name: "Subject", Value: "Nested"},
						},
						Parts: []*gmail.MessagePart{
							{
								MimeType: "multipart/alternative",
								Parts: []*gmail.MessagePart{
									{
										MimeType: "text/plain",
										Body:     &gmail.MessagePartBody{Data: b64("nested body")},
									},
								},
							},
						},
					},
				},
			},
			expected: draft.Draft{ID: "d-5", Subject: "Nested", Content: "nested body"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, dec.Decode(tc.input))
		})
	}
}

func TestComposeRaw(t *testing.T) {
	raw := draft.ComposeRaw("jane@example.com", "Re: Budget", "Hi Jane,\n\nApproved.\n")

	decoded, err := base64.URLEncoding.DecodeString(raw)
	require.NoError(t, err)

	msg := string(decoded)
	assert.True(t, strings.HasPrefix(msg, "To: jane@example.com\r\n"))
	assert.Contains(t, msg, "Subject: Re: Budget\r\n")
	assert.Contains(t, msg, "Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\nHi Jane,\n\nApproved.\n"))
}
