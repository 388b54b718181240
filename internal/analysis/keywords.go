package analysis

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxKeywords = 10

// Terms too generic to be useful as keywords, even when frequent.
var keywordBlacklist = wordSet("email", "thanks", "dear", "hello", "hi", "regards")

type keywordNLP interface {
	Tokenize(text string) []string
	Lemma(token string) string
	IsStopword(token string) bool
	Entities(text string) []string
}

// KeywordExtractor extracts the salient terms of an email by combining
// named entities with the most frequent content words.
type KeywordExtractor struct {
	nlp keywordNLP
}

// NewKeywordExtractor creates a KeywordExtractor backed by the given
// collaborators.
func NewKeywordExtractor(nlp keywordNLP) *KeywordExtractor {
	return &KeywordExtractor{nlp: nlp}
}

// Extract returns up to 10 unique keywords for the subject and content.
// Entities come first, then frequency terms; identical input always
// yields the identical ordered result.
func (e *KeywordExtractor) Extract(subject, content string) []string {
	text := subject + " " + content

	terms := e.frequentTerms(text)

	entities := e.nlp.Entities(text)
	keywords := make([]string, 0, len(entities)+len(terms))
	for _, ent := range entities {
		keywords = append(keywords, strings.ToLower(ent))
	}
	keywords = append(keywords, terms...)

	keywords = dedupFirstOccurrence(keywords)
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}

	return keywords
}

func (e *KeywordExtractor) frequentTerms(text string) []string {
	tokens := e.nlp.Tokenize(strings.ToLower(text))

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, tok := range tokens {
		if e.nlp.IsStopword(tok) || !isAlphanumeric(tok) || utf8.RuneCountInString(tok) <= 2 {
			continue
		}
		lemma := e.nlp.Lemma(tok)
		if _, ok := counts[lemma]; !ok {
			firstSeen[lemma] = order
			order++
		}
		counts[lemma]++
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}

	// Most frequent first; ties break by first occurrence in the text so
	// the ordering is stable.
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return firstSeen[terms[i]] < firstSeen[terms[j]]
	})

	if len(terms) > maxKeywords {
		terms = terms[:maxKeywords]
	}

	kept := terms[:0]
	for _, term := range terms {
		if !keywordBlacklist[term] {
			kept = append(kept, term)
		}
	}

	return kept
}

func isAlphanumeric(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
