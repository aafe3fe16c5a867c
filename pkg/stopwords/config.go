package stopwords

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Recognized property keys. Each key may be given bare or prefixed with the
// annotator name ("stopwords.customList"), the form used when the annotator
// is embedded in a larger pipeline configuration. Key matching is
// case-insensitive so configuration loaders that lowercase keys still work.
const (
	PropCheckOnlyLemmas = "checkOnlyLemmas"

	PropPosCategories    = "withPosCategories"
	PropPosCategoriesAlt = "stopPosCategories"

	PropWordsShorterThan     = "shorterThan"
	PropWordsShorterThanAlt  = "stopAllWordsShorterThan"
	PropLemmasShorterThan    = "withLemmasShorterThan"
	PropLemmasShorterThanAlt = "stopAllLemmasShorterThan"

	PropCustomList              = "customList"
	PropCustomListFilePath      = "customListFilePath"
	PropCustomListResourcesPath = "customListResourcesFilePath"

	// PropAnnotateWithoutList lifts the legacy gate that suppresses all
	// verdicts when no stop word list is configured.
	PropAnnotateWithoutList = "annotateWithoutList"
)

// Properties is the flat string-keyed configuration consumed by Resolve.
type Properties map[string]string

// normalized lowercases keys and strips the annotator name prefix. When both
// the bare and the prefixed form of a key are present, the bare form wins.
func (p Properties) normalized() map[string]string {
	prefix := strings.ToLower(AnnotatorName) + "."
	m := make(map[string]string, len(p))
	for key, value := range p {
		k := strings.ToLower(strings.TrimSpace(key))
		if strings.HasPrefix(k, prefix) {
			m[strings.TrimPrefix(k, prefix)] = value
		}
	}
	for key, value := range p {
		k := strings.ToLower(strings.TrimSpace(key))
		if !strings.HasPrefix(k, prefix) {
			m[k] = value
		}
	}
	return m
}

// Config is the resolved stop word configuration. It is immutable once
// resolved; a single Config may be shared by concurrent document runs.
type Config struct {
	// Stopwords is the lexical stop word set, lowercase. Empty means no
	// lexical filtering was configured.
	Stopwords map[string]struct{}
	// StopPosCategories holds the POS tags that mark a token stopped,
	// uppercase.
	StopPosCategories map[string]struct{}
	// MinimumWordLength stops every token whose surface form is shorter, in
	// runes. Zero disables the rule.
	MinimumWordLength int
	// MinimumLemmaLength stops every token whose lemma is shorter, in runes.
	// Zero disables the rule.
	MinimumLemmaLength int
	// CheckOnlyLemmas restricts lexical matching to the lemma; when false the
	// surface word is checked as well.
	CheckOnlyLemmas bool
	// AnnotateWithoutList lifts the gate that suppresses all verdicts when
	// Stopwords is empty.
	AnnotateWithoutList bool
}

// Resolve builds a Config from the given properties. Bundled resource paths
// are looked up in the embedded Resources file system.
func Resolve(props Properties) (*Config, error) {
	return ResolveFS(props, Resources)
}

// ResolveFS builds a Config from the given properties, resolving
// customListResourcesFilePath against resources. Exactly one stop word
// source is honored; the precedence is inline list, then file path, then
// bundled resource. No source at all leaves the set empty, which is not an
// error.
func ResolveFS(props Properties, resources fs.FS) (*Config, error) {
	normalized := props.normalized()
	cfg := &Config{
		Stopwords:         map[string]struct{}{},
		StopPosCategories: map[string]struct{}{},
		CheckOnlyLemmas:   true,
	}

	if value, ok := lookup(normalized, PropCheckOnlyLemmas); ok {
		cfg.CheckOnlyLemmas = parseBool(value)
	}
	if value, ok := lookup(normalized, PropAnnotateWithoutList); ok {
		cfg.AnnotateWithoutList = parseBool(value)
	}

	if value, ok := lookup(normalized, PropPosCategories, PropPosCategoriesAlt); ok {
		for _, category := range strings.Split(value, ",") {
			category = strings.ToUpper(strings.TrimSpace(category))
			if category != "" {
				cfg.StopPosCategories[category] = struct{}{}
			}
		}
	}

	var err error
	if cfg.MinimumWordLength, err = intLookup(normalized, PropWordsShorterThan, PropWordsShorterThanAlt); err != nil {
		return nil, err
	}
	if cfg.MinimumLemmaLength, err = intLookup(normalized, PropLemmasShorterThan, PropLemmasShorterThanAlt); err != nil {
		return nil, err
	}

	if value, ok := lookup(normalized, PropCustomList); ok {
		for _, word := range strings.Split(value, ",") {
			word = strings.ToLower(strings.TrimSpace(word))
			if word != "" {
				cfg.Stopwords[word] = struct{}{}
			}
		}
		return cfg, nil
	}
	if path, ok := lookup(normalized, PropCustomListFilePath); ok {
		if cfg.Stopwords, err = loadStopwordsFile(path); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if path, ok := lookup(normalized, PropCustomListResourcesPath); ok {
		if cfg.Stopwords, err = loadStopwordsResource(resources, path); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return cfg, nil
}

// lookup returns the first present key among keys. Keys are the exported
// Prop constants; matching is case-insensitive.
func lookup(normalized map[string]string, keys ...string) (string, bool) {
	for _, key := range keys {
		if value, ok := normalized[strings.ToLower(key)]; ok {
			return value, true
		}
	}
	return "", false
}

func intLookup(normalized map[string]string, keys ...string) (int, error) {
	value, ok := lookup(normalized, keys...)
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumericConfig, value)
	}
	return n, nil
}

func parseBool(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), "true")
}

// loadStopwordsFile reads a newline-delimited stop word file from the file
// system. Entries are lowercased; the same policy applies to every source.
func loadStopwordsFile(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStopwordFileNotFound, path)
	}
	defer f.Close()

	words, err := readStopwordLines(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStopwordFileNotFound, path)
	}
	return words, nil
}

// loadStopwordsResource reads a newline-delimited stop word list from the
// bundled resources file system.
func loadStopwordsResource(resources fs.FS, path string) (map[string]struct{}, error) {
	f, err := resources.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStopwordResourceNotFound, path)
	}
	defer f.Close()

	words, err := readStopwordLines(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStopwordResourceNotFound, path)
	}
	return words, nil
}

func readStopwordLines(r io.Reader) (map[string]struct{}, error) {
	words := map[string]struct{}{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word != "" {
			words[word] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
