// Package stopwords decides, for each token produced by an upstream
// annotation pipeline, whether the token should be excluded from downstream
// consumers interested only in content-bearing words. The decision combines
// lexical list membership, POS category membership and minimum length
// thresholds, resolved once from a flat key/value configuration.
package stopwords

import (
	"strings"
	"unicode/utf8"

	"github.com/RoaringBitmap/roaring"

	"github.com/pepperkit/stopwords/pkg/pipeline"
)

// AnnotatorName identifies the annotator inside a pipeline configuration and
// is the key under which verdicts are attached to tokens.
const AnnotatorName = "stopwords"

// Annotator marks stop tokens. It holds a resolved Config and is safe for
// concurrent use over independent documents.
type Annotator struct {
	config *Config
}

// NewAnnotator resolves the given properties and returns the annotator. The
// three stop word sources, the category and length rules and their defaults
// are described on the Prop constants and Config fields.
func NewAnnotator(props Properties) (*Annotator, error) {
	cfg, err := Resolve(props)
	if err != nil {
		return nil, err
	}
	return NewAnnotatorWithConfig(cfg), nil
}

// NewAnnotatorWithConfig wraps an already resolved configuration.
func NewAnnotatorWithConfig(cfg *Config) *Annotator {
	return &Annotator{config: cfg}
}

// Config returns the resolved configuration.
func (a *Annotator) Config() *Config {
	return a.config
}

func (a *Annotator) Name() string {
	return AnnotatorName
}

// Requires declares the upstream capabilities whose output the annotator
// reads: tokenization, sentence splitting, POS tagging and lemmatization.
func (a *Annotator) Requires() []string {
	return []string{
		pipeline.CapabilityTokenize,
		pipeline.CapabilitySSplit,
		pipeline.CapabilityPOS,
		pipeline.CapabilityLemma,
	}
}

// Satisfies declares the single capability supplied to later stages: the
// stop verdict.
func (a *Annotator) Satisfies() []string {
	return []string{AnnotatorName}
}

// Annotate writes a stop verdict for every token in the document.
//
// When no lexical stop word source was configured at all, no verdict is
// written (the annotation stays absent, not false) even if length or
// category rules are set. The gate is legacy behavior kept deliberately; set
// the annotateWithoutList property to lift it.
func (a *Annotator) Annotate(doc *pipeline.Document) {
	if len(a.config.Stopwords) == 0 && !a.config.AnnotateWithoutList {
		return
	}
	for _, token := range doc.Tokens {
		token.SetAnnotation(AnnotatorName, a.Decide(token.Word, token.Lemma, token.Tag))
	}
}

// Decide reports whether a token with the given surface word, lemma and POS
// tag is a stop token. It is a pure function of its inputs and the resolved
// configuration; lengths are measured in runes.
func (a *Annotator) Decide(word, lemma, tag string) bool {
	cfg := a.config
	if utf8.RuneCountInString(word) < cfg.MinimumWordLength {
		return true
	}
	if utf8.RuneCountInString(lemma) < cfg.MinimumLemmaLength {
		return true
	}
	if _, ok := cfg.StopPosCategories[tag]; ok {
		return true
	}
	if _, ok := cfg.Stopwords[strings.ToLower(lemma)]; ok {
		return true
	}
	if !cfg.CheckOnlyLemmas {
		if _, ok := cfg.Stopwords[strings.ToLower(word)]; ok {
			return true
		}
	}
	return false
}

// Mask returns the positions of stopped tokens as a bitmap. Tokens without a
// verdict are not set.
func (a *Annotator) Mask(doc *pipeline.Document) *roaring.Bitmap {
	mask := roaring.New()
	for i, token := range doc.Tokens {
		if stopped, ok := token.Annotation(AnnotatorName); ok && stopped {
			mask.Add(uint32(i))
		}
	}
	return mask
}

// ContentLemmas returns the lemmas of the tokens that were not stopped.
// Tokens that received no verdict are kept.
func (a *Annotator) ContentLemmas(doc *pipeline.Document) []string {
	mask := a.Mask(doc)
	lemmas := make([]string, 0, len(doc.Tokens))
	for i, token := range doc.Tokens {
		if !mask.Contains(uint32(i)) {
			lemmas = append(lemmas, token.Lemma)
		}
	}
	return lemmas
}
