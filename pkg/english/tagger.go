package english

import (
	"strings"
	"unicode"

	"github.com/pepperkit/stopwords/pkg/pipeline"
)

// lexicon maps closed-class English words to their Penn Treebank tag. Open
// classes are not covered; anything outside the lexicon falls back to NN.
var lexicon = map[string]string{
	// Determiners
	"the": "DT", "a": "DT", "an": "DT", "this": "DT", "these": "DT", "those": "DT",
	// Predeterminers
	"all": "PDT", "both": "PDT", "half": "PDT",
	// Coordinating conjunctions
	"and": "CC", "or": "CC", "but": "CC", "nor": "CC", "yet": "CC",
	// Prepositions and subordinating conjunctions
	"in": "IN", "on": "IN", "at": "IN", "by": "IN", "of": "IN", "for": "IN",
	"with": "IN", "from": "IN", "to": "IN", "as": "IN", "if": "IN",
	"because": "IN", "while": "IN", "than": "IN", "into": "IN", "under": "IN",
	"over": "IN", "upon": "IN",
	// Personal pronouns
	"i": "PRP", "you": "PRP", "he": "PRP", "she": "PRP", "it": "PRP",
	"we": "PRP", "they": "PRP", "me": "PRP", "him": "PRP", "us": "PRP", "them": "PRP",
	// Possessive pronouns
	"my": "PRP$", "your": "PRP$", "his": "PRP$", "her": "PRP$", "its": "PRP$", "our": "PRP$", "their": "PRP$",
	// Modal verbs
	"can": "MD", "could": "MD", "may": "MD", "might": "MD", "must": "MD",
	"shall": "MD", "should": "MD", "will": "MD", "would": "MD",
	// Particles
	"up": "RP", "off": "RP", "out": "RP", "down": "RP",
	// Existential there
	"there": "EX",
	// Interjections
	"oh": "UH", "uh": "UH", "wow": "UH", "hey": "UH",
	// Wh-words
	"which": "WDT", "who": "WP", "whom": "WP", "what": "WP", "whose": "WP$",
	"when": "WRB", "where": "WRB", "why": "WRB", "how": "WRB",
}

// Tagger assigns Penn Treebank tags from the closed-class lexicon. Numbers
// are tagged CD, unknown words NN. The tag quality is only good enough to
// drive POS category rules in demos and tests.
type Tagger struct{}

func NewTagger() *Tagger {
	return &Tagger{}
}

func (t *Tagger) Name() string {
	return "pos"
}

func (t *Tagger) Requires() []string {
	return []string{pipeline.CapabilityTokenize}
}

func (t *Tagger) Satisfies() []string {
	return []string{pipeline.CapabilityPOS}
}

func (t *Tagger) Annotate(doc *pipeline.Document) {
	for _, token := range doc.Tokens {
		token.Tag = tagOf(token.Word)
	}
}

func tagOf(word string) string {
	if word == "" {
		return "NN"
	}
	for _, r := range word {
		if unicode.IsDigit(r) {
			return "CD"
		}
		break
	}
	if tag, ok := lexicon[strings.ToLower(word)]; ok {
		return tag
	}
	return "NN"
}
