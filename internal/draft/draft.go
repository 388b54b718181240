// Package draft converts between Gmail draft payloads and the plain
// subject/content pair the analysis engine works on.
package draft

import (
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/api/gmail/v1"
)

// Draft is an email draft reduced to what analysis needs.
type Draft struct {
	ID      string
	To      string
	Subject string
	Content string
}

type htmlConverter interface {
	HTML2Text(raw []byte) string
}

// Decoder extracts subject and content from Gmail draft messages,
// converting HTML bodies to text when no plain-text part exists.
type Decoder struct {
	conv htmlConverter
}

// NewDecoder creates a Decoder using the given HTML converter.
func NewDecoder(conv htmlConverter) *Decoder {
	return &Decoder{conv: conv}
}

// Decode reduces a Gmail draft to its subject and plain-text content.
// Missing pieces degrade to empty strings; Decode never fails.
func (d *Decoder) Decode(gd *gmail.Draft) Draft {
	out := Draft{}
	if gd == nil {
		return out
	}
	out.ID = gd.Id

	msg := gd.Message
	if msg == nil || msg.Payload == nil {
		return out
	}

	out.To = headerValue(msg.Payload.Headers, "To")
	out.Subject = headerValue(msg.Payload.Headers, "Subject")

	textBody, htmlBody := extractBodies(msg.Payload)
	if textBody != "" {
		out.Content = textBody
	} else if htmlBody != "" {
		out.Content = d.conv.HTML2Text([]byte(htmlBody))
	}

	return out
}

// ComposeRaw builds the base64url-encoded RFC 2822 message Gmail expects
// when updating a draft.
func ComposeRaw(to, subject, content string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(content)

	return base64.URLEncoding.EncodeToString([]byte(b.String()))
}

func headerValue(headers []*gmail.MessagePartHeader, name string) string {
	for _, h := range headers {
		if h.Name == name {
			return h.Value
		}
	}
	return ""
}

func extractBodies(payload *gmail.MessagePart) (textBody, htmlBody string) {
	textBody, htmlBody = bodyFromPart(payload)

	for _, part := range payload.Parts {
		partText, partHTML := bodyFromPart(part)

		if textBody == "" {
			textBody = partText
		}
		if htmlBody == "" {
			htmlBody = partHTML
		}

		if len(part.Parts) > 0 {
			nestedText, nestedHTML := extractBodies(part)
			if textBody == "" {
				textBody = nestedText
			}
			if htmlBody == "" {
				htmlBody = nestedHTML
			}
		}
	}

	return textBody, htmlBody
}

func bodyFromPart(part *gmail.MessagePart) (textBody, htmlBody string) {
	if part.Body == nil || part.Body.Data == "" {
		return "", ""
	}

	switch part.MimeType {
	case "text/plain":
		return decodeBase64URL(part.Body.Data), ""
	case "text/html":
		return "", decodeBase64URL(part.Body.Data)
	default:
		return "", ""
	}
}

func decodeBase64URL(data string) string {
	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		decoded, err = base64.RawURLEncoding.DecodeString(data)
		if err != nil {
			return data
		}
	}
	return string(decoded)
}
