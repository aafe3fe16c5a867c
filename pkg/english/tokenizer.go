// Package english provides simple upstream annotators (tokenizer, POS
// tagger, lemmatizer) so the stop word annotator can be exercised end to end
// without an external NLP pipeline. They are demo collaborators, not
// production linguistic components.
package english

import (
	"strings"
	"unicode"

	"github.com/pepperkit/stopwords/pkg/pipeline"
)

// Tokenizer splits document text into word tokens on runes that are neither
// letters nor digits. It treats the whole document as one sentence.
type Tokenizer struct{}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

func (t *Tokenizer) Name() string {
	return "tokenize"
}

func (t *Tokenizer) Requires() []string {
	return nil
}

func (t *Tokenizer) Satisfies() []string {
	return []string{pipeline.CapabilityTokenize, pipeline.CapabilitySSplit}
}

func (t *Tokenizer) Annotate(doc *pipeline.Document) {
	words := strings.FieldsFunc(doc.Text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	doc.Tokens = make([]*pipeline.Token, 0, len(words))
	for _, word := range words {
		doc.Tokens = append(doc.Tokens, &pipeline.Token{Word: word})
	}
}
