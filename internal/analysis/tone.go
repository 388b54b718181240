package analysis

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sentiment is the polarity label derived from the compound score.
type Sentiment string

// Sentiment labels.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Tone is one of the closed stylistic categories detected via pattern
// scoring.
type Tone string

// The six tone categories, in definition order.
const (
	ToneFormal       Tone = "formal"
	ToneUrgent       Tone = "urgent"
	ToneFriendly     Tone = "friendly"
	ToneApologetic   Tone = "apologetic"
	ToneAssertive    Tone = "assertive"
	ToneAppreciative Tone = "appreciative"
)

// Tones lists every tone category in definition order. Fusion appends
// top-scoring tones in this order, which keeps the overall tone string
// deterministic.
var Tones = []Tone{
	ToneFormal,
	ToneUrgent,
	ToneFriendly,
	ToneApologetic,
	ToneAssertive,
	ToneAppreciative,
}

type toneRule struct {
	tone     Tone
	patterns []*regexp.Regexp
}

var toneRules = []toneRule{
	{ToneFormal, compileAll(
		`\brespectfully\b`, `\bhonor(?:ed|able)\b`, `\bregards\b`,
		`\bsincerely\b`, `\bpursuant\b`, `\bhereby\b`,
	)},
	{ToneUrgent, compileAll(
		`\burgent\b`, `\bimmediate\b`, `\bas soon as possible\b`,
		`\basap\b`, `\bpressing\b`, `\btime-sensitive\b`,
	)},
	{ToneFriendly, compileAll(
		`\bcheers\b`, `\bthanks\b`, `\bappreciate\b`, `\blooking forward\b`,
		`\bhope all is well\b`, `\bhope you(?:'re| are) doing well\b`,
	)},
	{ToneApologetic, compileAll(
		`\bsorry\b`, `\bapologi[sz]e\b`, `\bregret\b`,
		`\bunfortunately\b`, `\bmistake\b`, `\binconvenience\b`,
	)},
	{ToneAssertive, compileAll(
		`\bmust\b`, `\brequire\b`, `\bnecessary\b`,
		`\bimportant\b`, `\bessential\b`, `\bcritical\b`,
	)},
	{ToneAppreciative, compileAll(
		`\bthank you\b`, `\bgrateful\b`, `\bappreciate\b`,
		`\bthankful\b`, `\bindebted\b`, `\bvalu(?:e|able)\b`,
	)},
}

var contractionRe = regexp.MustCompile(`\w+'\w+`)

var firstPersonWords = wordSet("i", "me", "my", "mine", "we", "us", "our", "ours")
var secondPersonWords = wordSet("you", "your", "yours")
var modalWords = wordSet("would", "could", "might", "may", "can", "should", "must")
var academicWords = wordSet(
	"therefore", "thus", "however", "consequently", "furthermore", "moreover",
	"nevertheless", "notwithstanding", "accordingly", "subsequently",
)

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// LinguisticFeatures holds surface-level counts and ratios over a text.
type LinguisticFeatures struct {
	SentenceCount     int
	Questions         int
	Exclamations      int
	FirstPerson       int
	SecondPerson      int
	Modals            int
	Contractions      int
	AcademicWords     int
	AvgTokenLength    float64
	AvgSentenceLength float64
}

// SentimentScore is the compound polarity score and its label.
type SentimentScore struct {
	Compound float64
	Label    Sentiment
}

// ToneAnalysis is the full result of analyzing a text's tone.
type ToneAnalysis struct {
	Sentiment     SentimentScore
	Features      LinguisticFeatures
	SpecificTones map[Tone]int
	OverallTone   string
}

type toneNLP interface {
	Tokenize(text string) []string
	Sentences(text string) []string
	Polarity(text string) float64
}

// ToneAnalyzer combines sentiment, linguistic features and specific tone
// scores into a single overall tone description.
type ToneAnalyzer struct {
	nlp toneNLP
}

// NewToneAnalyzer creates a ToneAnalyzer backed by the given collaborators.
func NewToneAnalyzer(nlp toneNLP) *ToneAnalyzer {
	return &ToneAnalyzer{nlp: nlp}
}

// Analyze returns the tone analysis for a text. It never fails: empty
// input degrades to zero counts and a neutral, casual overall tone.
func (a *ToneAnalyzer) Analyze(text string) ToneAnalysis {
	sentiment := a.analyzeSentiment(text)
	features := a.analyzeFeatures(text)
	specific := detectSpecificTones(text)

	return ToneAnalysis{
		Sentiment:     sentiment,
		Features:      features,
		SpecificTones: specific,
		OverallTone:   fuseOverallTone(sentiment, features, specific),
	}
}

func (a *ToneAnalyzer) analyzeSentiment(text string) SentimentScore {
	compound := a.nlp.Polarity(text)

	label := SentimentNeutral
	switch {
	case compound >= 0.05:
		label = SentimentPositive
	case compound <= -0.05:
		label = SentimentNegative
	}

	return SentimentScore{Compound: compound, Label: label}
}

func (a *ToneAnalyzer) analyzeFeatures(text string) LinguisticFeatures {
	sentences := a.nlp.Sentences(text)
	tokens := a.nlp.Tokenize(text)

	f := LinguisticFeatures{SentenceCount: len(sentences)}

	totalSentenceTokens := 0
	for _, s := range sentences {
		trimmed := strings.TrimSpace(s)
		if strings.HasSuffix(trimmed, "?") {
			f.Questions++
		}
		if strings.HasSuffix(trimmed, "!") {
			f.Exclamations++
		}
		totalSentenceTokens += len(a.nlp.Tokenize(s))
	}

	wordTokens := 0
	wordLength := 0
	for _, tok := range tokens {
		lower := strings.ToLower(tok)
		switch {
		case firstPersonWords[lower]:
			f.FirstPerson++
		case secondPersonWords[lower]:
			f.SecondPerson++
		case modalWords[lower]:
			f.Modals++
		case academicWords[lower]:
			f.AcademicWords++
		}
		if !isPunctuation(tok) {
			wordTokens++
			wordLength += utf8.RuneCountInString(tok)
		}
	}

	f.Contractions = len(contractionRe.FindAllString(text, -1))
	f.AvgTokenLength = float64(wordLength) / float64(max(1, wordTokens))
	f.AvgSentenceLength = float64(totalSentenceTokens) / float64(max(1, len(sentences)))

	return f
}

func detectSpecificTones(text string) map[Tone]int {
	lower := strings.ToLower(text)

	scores := make(map[Tone]int, len(toneRules))
	for _, rule := range toneRules {
		score := 0
		for _, p := range rule.patterns {
			score += len(p.FindAllString(lower, -1))
		}
		scores[rule.tone] = score
	}

	return scores
}

// fuseOverallTone builds the overall tone string: sentiment first, then
// top-scoring specific tones in definition order, then formality, then
// question/exclamation markers. Elements are deduplicated preserving
// first occurrence and the first three are joined with " and ".
func fuseOverallTone(sentiment SentimentScore, f LinguisticFeatures, specific map[Tone]int) string {
	maxToneScore := 0
	for _, t := range Tones {
		if specific[t] > maxToneScore {
			maxToneScore = specific[t]
		}
	}

	formalityScore := 2 * f.AcademicWords
	if f.AvgTokenLength > 5 {
		formalityScore++
	}
	formalityScore -= f.Contractions
	if f.FirstPerson > 3 {
		formalityScore--
	}
	formalityScore -= f.Exclamations

	formality := "casual"
	if formalityScore > 2 {
		formality = "formal"
	}

	var elements []string
	switch sentiment.Label {
	case SentimentPositive:
		elements = append(elements, "positive")
	case SentimentNegative:
		elements = append(elements, "negative")
	}

	if maxToneScore > 0 {
		for _, t := range Tones {
			if specific[t] == maxToneScore {
				elements = append(elements, string(t))
			}
		}
	}

	elements = append(elements, formality)

	if float64(f.Questions)/float64(max(1, f.SentenceCount)) > 0.5 {
		elements = append(elements, "inquisitive")
	}
	if f.Exclamations > 0 {
		elements = append(elements, "emphatic")
	}

	deduped := dedupFirstOccurrence(elements)
	if len(deduped) > 3 {
		deduped = deduped[:3]
	}

	return strings.Join(deduped, " and ")
}

func dedupFirstOccurrence(elements []string) []string {
	seen := make(map[string]bool, len(elements))
	out := make([]string, 0, len(elements))
	for _, e := range elements {
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}

func isPunctuation(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
