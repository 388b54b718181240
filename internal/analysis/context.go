package analysis

// ContextInfo is the analysis contract the rest of the system consumes:
// salient keywords, one intent category and a recommended tone.
type ContextInfo struct {
	Keywords []string
	Intent   Intent
	Tone     string
}

// Recommended tone per intent category.
var intentTones = map[Intent]string{
	IntentInquiry:        "professional and inquisitive",
	IntentMeetingRequest: "professional and courteous",
	IntentFollowUp:       "friendly but persistent",
	IntentStatusUpdate:   "informative and clear",
	IntentProblemReport:  "concerned but composed",
	IntentComplaint:      "firm but respectful",
	IntentApology:        "genuine and humble",
	IntentThankYou:       "appreciative and warm",
	IntentIntroduction:   "friendly and professional",
	IntentRequest:        "polite and clear",
	IntentSalesPitch:     "persuasive but not pushy",
	IntentFeedback:       "constructive and thoughtful",
	IntentInvitation:     "welcoming and enthusiastic",
	IntentAnnouncement:   "informative and engaging",
	IntentApplication:    "confident and professional",
}

const defaultTone = "professional"

// ToneForIntent returns the recommended tone for an intent, defaulting to
// "professional" for anything unmapped.
func ToneForIntent(intent Intent) string {
	if tone, ok := intentTones[intent]; ok {
		return tone
	}
	return defaultTone
}

// ContextAnalyzer is the single entry point for draft analysis. It
// composes keyword extraction, intent classification and the intent to
// tone lookup into one ContextInfo.
type ContextAnalyzer struct {
	keywords   *KeywordExtractor
	classifier *Classifier
}

// NewContextAnalyzer creates a ContextAnalyzer from its parts.
func NewContextAnalyzer(keywords *KeywordExtractor, classifier *Classifier) *ContextAnalyzer {
	return &ContextAnalyzer{
		keywords:   keywords,
		classifier: classifier,
	}
}

// Analyze derives the context of an email draft. Missing subject or
// content are treated as empty strings; the result is always well formed.
func (a *ContextAnalyzer) Analyze(subject, content string) ContextInfo {
	intent := a.classifier.Classify(subject + " " + content)

	return ContextInfo{
		Keywords: a.keywords.Extract(subject, content),
		Intent:   intent,
		Tone:     ToneForIntent(intent),
	}
}
