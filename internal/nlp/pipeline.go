// Package nlp implements the linguistic collaborators the analysis engine
// depends on: tokenization, sentence splitting, lemmatization, stopword
// lookup, named-entity extraction and sentiment scoring.
package nlp

import (
	"fmt"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	prose "github.com/jdkato/prose/v2"
	"github.com/jonreiter/govader"
)

// Pipeline bundles the NLP capabilities behind simple methods. It holds
// only read-only state after construction and is safe for concurrent use.
type Pipeline struct {
	lemmatizer *golem.Lemmatizer
	sentiment  *govader.SentimentIntensityAnalyzer
}

// NewPipeline loads the lemmatizer dictionary and the sentiment lexicon.
func NewPipeline() (*Pipeline, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("golem.New failed: %w", err)
	}

	return &Pipeline{
		lemmatizer: lemmatizer,
		sentiment:  govader.NewSentimentIntensityAnalyzer(),
	}, nil
}

// Tokenize splits text into tokens, punctuation included.
func (p *Pipeline) Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	doc, err := prose.NewDocument(text, prose.WithTagging(false), prose.WithExtraction(false))
	if err != nil {
		return nil
	}

	tokens := doc.Tokens()
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Text)
	}

	return out
}

// Sentences splits text into sentences.
func (p *Pipeline) Sentences(text string) []string {
	if text == "" {
		return nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil
	}

	sentences := doc.Sentences()
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		out = append(out, s.Text)
	}

	return out
}

// Entities returns the named entities found in text.
func (p *Pipeline) Entities(text string) []string {
	if text == "" {
		return nil
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil
	}

	entities := doc.Entities()
	out := make([]string, 0, len(entities))
	for _, e := range entities {
		out = append(out, e.Text)
	}

	return out
}

// Lemma returns the dictionary form of a token, or the token itself when
// no lemma is known.
func (p *Pipeline) Lemma(token string) string {
	return p.lemmatizer.Lemma(token)
}

// IsStopword reports whether the token is an English stopword.
func (p *Pipeline) IsStopword(token string) bool {
	return stopwords[token]
}

// Polarity returns the VADER compound sentiment score in [-1, 1].
func (p *Pipeline) Polarity(text string) float64 {
	return p.sentiment.PolarityScores(text).Compound
}
