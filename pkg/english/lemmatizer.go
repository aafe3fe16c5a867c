package english

import (
	"strings"

	"github.com/kljensen/snowball"

	"github.com/pepperkit/stopwords/pkg/pipeline"
)

// Lemmatizer fills token lemmas with lowercase snowball English stems. A stem
// is not a dictionary lemma, but it is a workable stand-in for pipelines that
// have no real lemmatizer. Tokens the stemmer rejects keep their lowercased
// surface form as the lemma.
type Lemmatizer struct{}

func NewLemmatizer() *Lemmatizer {
	return &Lemmatizer{}
}

func (l *Lemmatizer) Name() string {
	return "lemma"
}

func (l *Lemmatizer) Requires() []string {
	return []string{pipeline.CapabilityTokenize}
}

func (l *Lemmatizer) Satisfies() []string {
	return []string{pipeline.CapabilityLemma}
}

func (l *Lemmatizer) Annotate(doc *pipeline.Document) {
	for _, token := range doc.Tokens {
		lower := strings.ToLower(token.Word)
		if stemmed, err := snowball.Stem(lower, "english", false); err == nil && stemmed != "" {
			token.Lemma = stemmed
		} else {
			token.Lemma = lower
		}
	}
}
