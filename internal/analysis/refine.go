package analysis

import (
	"regexp"
	"strings"
)

type refinementTerm struct {
	term   string
	phrase string
}

// Refinement vocabulary: instruction terms and the richer phrasing they
// expand to. Order matters, adjustments are collected in this order.
var refinementTerms = []refinementTerm{
	{"formal", "formal and professional"},
	{"professional", "business-appropriate and polished"},
	{"friendly", "warm and personable"},
	{"casual", "relaxed and conversational"},
	{"concise", "brief and to the point"},
	{"detailed", "thorough and comprehensive"},
	{"persuasive", "compelling and convincing"},
	{"assertive", "confident and direct"},
	{"humble", "modest and respectful"},
	{"enthusiastic", "excited and positive"},
	{"urgent", "time-sensitive and pressing"},
	{"empathetic", "understanding and compassionate"},
	{"appreciative", "grateful and thankful"},
	{"considerate", "thoughtful and respectful"},
	{"apologetic", "regretful and remorseful"},
	{"firm", "resolute and unwavering"},
	{"diplomatic", "tactful and sensitive"},
	{"respectful", "courteous and deferential"},
	{"clear", "straightforward and unambiguous"},
	{"encouraging", "supportive and motivating"},
}

var (
	beMoreRe = regexp.MustCompile(`be more (\w+)`)
	beLessRe = regexp.MustCompile(`be less (\w+)`)
)

// MergeInstructions fuses the context-inferred tone with a free-text user
// instruction into a single tone directive. An empty instruction returns
// the inferred tone unchanged. Adjustments recognized both by the term
// dictionary and the generic "be more/less" patterns are kept twice; the
// duplication is intentional and pinned by tests.
func MergeInstructions(inferredTone, instruction string) string {
	if instruction == "" {
		return inferredTone
	}

	adjustments := parseAdjustments(instruction)
	if len(adjustments) == 0 {
		return inferredTone + ", " + instruction
	}

	return inferredTone + ", while also being " + strings.Join(adjustments, ", ")
}

func parseAdjustments(instruction string) []string {
	lower := strings.ToLower(instruction)

	var adjustments []string
	for _, rt := range refinementTerms {
		if !strings.Contains(lower, rt.term) {
			continue
		}
		switch {
		case strings.Contains(lower, "more "+rt.term):
			adjustments = append(adjustments, "more "+rt.phrase)
		case strings.Contains(lower, "less "+rt.term):
			adjustments = append(adjustments, "less "+rt.phrase)
		default:
			adjustments = append(adjustments, rt.phrase)
		}
	}

	if m := beMoreRe.FindStringSubmatch(lower); m != nil {
		adjustments = append(adjustments, "more "+m[1])
	}
	if m := beLessRe.FindStringSubmatch(lower); m != nil {
		adjustments = append(adjustments, "less "+m[1])
	}

	return adjustments
}
