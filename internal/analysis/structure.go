package analysis

import (
	"regexp"
	"strings"
)

// Segments are the structural parts of an email body. Absent greeting or
// signature are empty strings; the body expands to fill.
type Segments struct {
	Greeting  string
	Body      string
	Signature string
}

var greetingRe = regexp.MustCompile(`^(Dear|Hi|Hello|Hey|Good morning|Good afternoon|Good evening)`)

var signatureMarkers = []string{"Best", "Regards", "Sincerely", "Thanks", "Thank you", "Cheers"}

// ParseStructure splits raw email text into greeting, body and signature.
// It never fails; missing parts degrade gracefully.
func ParseStructure(text string) Segments {
	lines := strings.Split(text, "\n")

	greetingIdx := -1
	var greeting string
	for i, line := range lines {
		if i >= 5 {
			break
		}
		trimmed := strings.TrimSpace(line)
		if greetingRe.MatchString(trimmed) {
			greeting = trimmed
			greetingIdx = i
			break
		}
	}

	signatureIdx := -1
	var signature string
	for i := len(lines) - 1; i >= 0; i-- {
		trimmed := strings.TrimSpace(lines[i])
		if containsAnyMarker(trimmed) {
			signatureIdx = i
			signature = strings.Join(lines[i:], "\n")
			break
		}
	}

	bodyStart := 0
	if greetingIdx >= 0 {
		bodyStart = greetingIdx + 1
	}
	bodyEnd := len(lines)
	if signatureIdx >= 0 && signatureIdx >= bodyStart {
		bodyEnd = signatureIdx
	}

	body := strings.TrimSpace(strings.Join(lines[bodyStart:bodyEnd], "\n"))

	return Segments{
		Greeting:  greeting,
		Body:      body,
		Signature: signature,
	}
}

func containsAnyMarker(line string) bool {
	for _, marker := range signatureMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
