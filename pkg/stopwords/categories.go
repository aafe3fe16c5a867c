package stopwords

// DefaultStopCategories returns the closed-class Penn Treebank tags that are
// commonly filtered when only content-bearing words are of interest: proper
// nouns, predeterminers, conjunctions, determiners, interjections, foreign
// words, modal verbs, particles, pronouns, existential there, possessive
// endings, symbols and wh-words. The resolver does not apply it implicitly;
// callers pass it as withPosCategories when they want the default behavior.
func DefaultStopCategories() map[string]struct{} {
	tags := []string{
		"NNP", "NNPS",
		"PDT",
		"IN", "CC",
		"DT",
		"UH",
		"FW",
		"MD",
		"RP",
		"PRP", "PRP$",
		"EX",
		"POS",
		"SYM",
		"WDT", "WP", "WP$",
		"WRB",
	}
	m := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		m[tag] = struct{}{}
	}
	return m
}
