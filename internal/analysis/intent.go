// Package analysis derives semantic signals from email drafts: intent,
// tone, keywords and structure. All operations are deterministic, pure
// functions of their input and safe for concurrent use.
package analysis

import (
	"log"
	"regexp"
	"strings"
)

// Intent is the communicative purpose of an email.
type Intent string

// The closed set of intent categories, in definition order.
const (
	IntentInquiry        Intent = "inquiry"
	IntentMeetingRequest Intent = "meeting_request"
	IntentFollowUp       Intent = "follow_up"
	IntentStatusUpdate   Intent = "status_update"
	IntentProblemReport  Intent = "problem_report"
	IntentComplaint      Intent = "complaint"
	IntentApology        Intent = "apology"
	IntentThankYou       Intent = "thank_you"
	IntentIntroduction   Intent = "introduction"
	IntentRequest        Intent = "request"
	IntentSalesPitch     Intent = "sales_pitch"
	IntentFeedback       Intent = "feedback"
	IntentInvitation     Intent = "invitation"
	IntentAnnouncement   Intent = "announcement"
	IntentApplication    Intent = "application"
)

// Intents lists every category in definition order. The order is part of
// the classifier contract: it breaks ties that survive the priority list.
var Intents = []Intent{
	IntentInquiry,
	IntentMeetingRequest,
	IntentFollowUp,
	IntentStatusUpdate,
	IntentProblemReport,
	IntentComplaint,
	IntentApology,
	IntentThankYou,
	IntentIntroduction,
	IntentRequest,
	IntentSalesPitch,
	IntentFeedback,
	IntentInvitation,
	IntentAnnouncement,
	IntentApplication,
}

// ParseIntent maps a category name to its Intent, reporting whether the
// name is one of the defined categories.
func ParseIntent(name string) (Intent, bool) {
	for _, it := range Intents {
		if string(it) == name {
			return it, true
		}
	}
	return "", false
}

// Valid reports whether the intent is one of the defined categories.
func (i Intent) Valid() bool {
	_, ok := ParseIntent(string(i))
	return ok
}

type intentRule struct {
	intent   Intent
	patterns []*regexp.Regexp
}

// Patterns are matched against lowercased text, so they are written in
// lowercase themselves.
var intentRules = []intentRule{
	{IntentInquiry, compileAll(
		`\b(?:what|who|when|where|why|how)\b.*\?`,
		`\bask(?:ing)?\b.*\babout\b`,
		`\bcurious\b|\bwonder(?:ing)?\b`,
	)},
	{IntentMeetingRequest, compileAll(
		`\bmeet(?:ing)?\b.*\b(?:schedule|discuss|talk|available|time)\b`,
		`\b(?:schedule|set up|arrange)\b.*\b(?:meeting|call|discussion)\b`,
		`\bavailab(?:le|ility)\b.*\b(?:meet|discuss|talk)\b`,
	)},
	{IntentFollowUp, compileAll(
		`\bfollow(?:ing)? up\b`,
		`\bjust check(?:ing)?\b`,
		`\bany update\b|\bany progress\b`,
		`\bhaven't heard\b`,
	)},
	{IntentStatusUpdate, compileAll(
		`\bupdate\b.*\b(?:progress|status|project)\b`,
		`\bprogress report\b`,
		`\b(?:completed|finished|working on)\b.*\btask\b`,
	)},
	{IntentProblemReport, compileAll(
		`\bissue\b|\bproblem\b|\berror\b|\bfail(?:ed|ure)?\b`,
		`\bdifficult(?:y|ies)\b|\btrouble\b|\bnot working\b`,
		`\b(?:fix|resolve|address)\b.*\b(?:issue|problem)\b`,
	)},
	{IntentComplaint, compileAll(
		`\bdissatisf(?:ied|action)\b|\bunhappy\b|\bfrustrat(?:ed|ing)\b`,
		`\bcomplain(?:t)?\b|\bdisappoint(?:ed|ing)\b`,
		`\bnot acceptable\b|\bunacceptable\b`,
	)},
	{IntentApology, compileAll(
		`\b(?:i'm|i am|we're|we are) sorry\b`,
		`\bapologi(?:ze|se|es)\b`,
		`\bregret\b|\bmistake\b.*\bour\b`,
		`\bmy bad\b`,
	)},
	{IntentThankYou, compileAll(
		`\bthank(?:s|ing|ful)?\b|\bapprec[ie]at\w+\b`,
		`\bgrateful\b|\bappreciation\b`,
	)},
	{IntentIntroduction, compileAll(
		`\bintroduc(?:e|ing|tion)\b|\bnice to meet\b`,
		`\bmy name is\b|\bi am\b.*\bfrom\b`,
		`\bi'd like to introduce\b`,
	)},
	{IntentRequest, compileAll(
		`\b(?:request|asking for|would like|need)\b.*\b(?:help|assistance|support|information)\b`,
		`\bcan you\b|\bcould you\b|\bwould you\b`,
		`\bplease\b.*\b(?:provide|send|review|consider)\b`,
	)},
	{IntentSalesPitch, compileAll(
		`\b(?:offer|discount|promotion|deal|sale)\b`,
		`\b(?:product|service|solution)\b.*\b(?:benefit|feature|advantage)\b`,
		`\b(?:opportunity|limited time|special)\b`,
	)},
	{IntentFeedback, compileAll(
		`\b(?:feedback|thoughts|opinion|suggestion|review)\b`,
		`\b(?:what do you think|your input|your view)\b`,
		`\b(?:evaluate|assessment|evaluation)\b`,
	)},
	{IntentInvitation, compileAll(
		`\b(?:invite|invitation|join us|attend|participate)\b`,
		`\b(?:event|webinar|conference|party|celebration)\b`,
		`\bwould love for you to\b`,
	)},
	{IntentAnnouncement, compileAll(
		`\b(?:announce|announcing|pleased to|happy to)\b.*\b(?:inform|share|tell)\b`,
		`\b(?:news|update|launch|release)\b`,
		`\bwe're excited\b|\bi'm excited\b`,
	)},
	{IntentApplication, compileAll(
		`\b(?:apply|applying|application)\b`,
		`\b(?:resume|cv|cover letter|portfolio)\b`,
		`\b(?:position|job|role|opportunity)\b.*\b(?:interest|consideration)\b`,
	)},
}

// Tie-break priority for categories that score equally.
var intentPriority = []Intent{
	IntentApology,
	IntentThankYou,
	IntentProblemReport,
	IntentComplaint,
	IntentMeetingRequest,
	IntentFollowUp,
	IntentInquiry,
	IntentRequest,
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}

type predictor interface {
	Predict(text string) (Intent, error)
}

// Classifier assigns one of the 15 intent categories to email text.
// An optional predictor (e.g. an LLM-backed one) is consulted first;
// any failure falls back to the rule-based scorer, so classification
// itself never fails.
type Classifier struct {
	predictor predictor
}

// NewClassifier creates a Classifier. The predictor may be nil, in which
// case only the rule-based scorer is used.
func NewClassifier(p predictor) *Classifier {
	return &Classifier{predictor: p}
}

// Classify returns the intent category for the given text. Empty or
// unmatched text yields IntentInquiry.
func (c *Classifier) Classify(text string) Intent {
	if c.predictor != nil {
		intent, err := c.predictor.Predict(text)
		if err == nil && intent.Valid() {
			return intent
		}
		if err != nil {
			log.Println("intent predictor failed, using rules:", err)
		}
	}

	return classifyWithRules(text)
}

func classifyWithRules(text string) Intent {
	lower := strings.ToLower(text)

	scores := make([]int, len(intentRules))
	maxScore := 0

	for i, rule := range intentRules {
		for _, p := range rule.patterns {
			scores[i] += len(p.FindAllString(lower, -1))
		}
		if scores[i] > maxScore {
			maxScore = scores[i]
		}
	}

	if maxScore == 0 {
		return IntentInquiry
	}

	tied := make(map[Intent]bool, len(intentRules))
	for i, rule := range intentRules {
		if scores[i] == maxScore {
			tied[rule.intent] = true
		}
	}

	for _, it := range intentPriority {
		if tied[it] {
			return it
		}
	}

	// No priority category tied: fall back to definition order.
	for _, rule := range intentRules {
		if tied[rule.intent] {
			return rule.intent
		}
	}

	return IntentInquiry
}
