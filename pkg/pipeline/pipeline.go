// Package pipeline defines the minimal annotation pipeline contract: tokens,
// documents and the annotator extension point with capability declarations.
package pipeline

import "fmt"

// Capability names declared by annotators via Requires and Satisfies.
const (
	CapabilityTokenize = "tokenize"
	CapabilitySSplit   = "ssplit"
	CapabilityPOS      = "pos"
	CapabilityLemma    = "lemma"
)

// Token is a single unit of processed text. Word, Lemma and Tag are filled by
// upstream annotators and are read-only for later stages; later stages attach
// boolean annotations under their own name key.
type Token struct {
	Word        string
	Lemma       string
	Tag         string
	Annotations map[string]bool
}

// SetAnnotation attaches a boolean annotation under the given key.
func (t *Token) SetAnnotation(key string, value bool) {
	if t.Annotations == nil {
		t.Annotations = map[string]bool{}
	}
	t.Annotations[key] = value
}

// Annotation returns the annotation stored under key and whether any
// annotator wrote it at all. An absent annotation is not the same as false.
func (t *Token) Annotation(key string) (value bool, ok bool) {
	value, ok = t.Annotations[key]
	return value, ok
}

// Document carries the original text and the token sequence produced from it.
type Document struct {
	Text   string
	Tokens []*Token
}

func NewDocument(text string) *Document {
	return &Document{Text: text}
}

// AnnotatorInterface is the extension point for pipeline stages.
type AnnotatorInterface interface {
	// Name identifies the annotator; it doubles as its annotation key.
	Name() string
	// Annotate processes the document in place.
	Annotate(doc *Document)
	// Requires lists the capabilities that must be satisfied by earlier stages.
	Requires() []string
	// Satisfies lists the capabilities this annotator supplies to later stages.
	Satisfies() []string
}

// Pipeline runs a fixed sequence of annotators over documents. The sequence
// is validated once at construction; running it is synchronous and keeps no
// state between documents, so a single pipeline may annotate independent
// documents from multiple goroutines.
type Pipeline struct {
	Annotators []AnnotatorInterface
}

// NewPipeline checks that every annotator's requirements are satisfied by the
// annotators placed before it and returns the runnable pipeline.
func NewPipeline(annotators ...AnnotatorInterface) (*Pipeline, error) {
	satisfied := map[string]struct{}{}
	for _, annotator := range annotators {
		for _, required := range annotator.Requires() {
			if _, ok := satisfied[required]; !ok {
				return nil, fmt.Errorf("annotator %q requires capability %q which no earlier annotator satisfies", annotator.Name(), required)
			}
		}
		for _, capability := range annotator.Satisfies() {
			satisfied[capability] = struct{}{}
		}
	}
	return &Pipeline{Annotators: annotators}, nil
}

// Annotate runs every annotator over the document in order.
func (p *Pipeline) Annotate(doc *Document) {
	for _, annotator := range p.Annotators {
		annotator.Annotate(doc)
	}
}
