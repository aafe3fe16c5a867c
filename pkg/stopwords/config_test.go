package stopwords

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeListFile(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stop-words-list-test.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := Resolve(Properties{})
	require.NoError(t, err)

	assert.Empty(t, cfg.Stopwords)
	assert.Empty(t, cfg.StopPosCategories)
	assert.Equal(t, 0, cfg.MinimumWordLength)
	assert.Equal(t, 0, cfg.MinimumLemmaLength)
	assert.True(t, cfg.CheckOnlyLemmas)
	assert.False(t, cfg.AnnotateWithoutList)
}

func TestResolveCheckOnlyLemmas(t *testing.T) {
	cfg, err := Resolve(Properties{PropCheckOnlyLemmas: "false"})
	require.NoError(t, err)
	assert.False(t, cfg.CheckOnlyLemmas)
}

func TestResolvePosCategories(t *testing.T) {
	tests := []struct {
		name  string
		props Properties
		want  []string
	}{
		{
			name:  "plain list",
			props: Properties{PropPosCategories: "IN,WDT"},
			want:  []string{"IN", "WDT"},
		},
		{
			name:  "surrounding spaces trimmed",
			props: Properties{PropPosCategories: " IN, WDT"},
			want:  []string{"IN", "WDT"},
		},
		{
			name:  "lower case normalized to upper",
			props: Properties{PropPosCategories: "in,Wdt"},
			want:  []string{"IN", "WDT"},
		},
		{
			name:  "alternate key",
			props: Properties{PropPosCategoriesAlt: "DT,CC"},
			want:  []string{"DT", "CC"},
		},
		{
			name:  "prefixed key",
			props: Properties{"stopwords.withPosCategories": "MD"},
			want:  []string{"MD"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Resolve(tt.props)
			require.NoError(t, err)
			require.Len(t, cfg.StopPosCategories, len(tt.want))
			for _, category := range tt.want {
				assert.Contains(t, cfg.StopPosCategories, category)
			}
		})
	}
}

func TestResolveLengthThresholds(t *testing.T) {
	cfg, err := Resolve(Properties{
		PropWordsShorterThan:  "3",
		PropLemmasShorterThan: "4",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MinimumWordLength)
	assert.Equal(t, 4, cfg.MinimumLemmaLength)

	cfg, err = Resolve(Properties{
		PropWordsShorterThanAlt:  "5",
		PropLemmasShorterThanAlt: "6",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MinimumWordLength)
	assert.Equal(t, 6, cfg.MinimumLemmaLength)
}

func TestResolveInvalidNumericValue(t *testing.T) {
	_, err := Resolve(Properties{PropWordsShorterThan: "three"})
	require.ErrorIs(t, err, ErrInvalidNumericConfig)

	_, err = Resolve(Properties{PropLemmasShorterThan: "4.5"})
	require.ErrorIs(t, err, ErrInvalidNumericConfig)
}

func TestResolveCustomList(t *testing.T) {
	cfg, err := Resolve(Properties{PropCustomList: "stop,words,list"})
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"stop": {}, "words": {}, "list": {}}, cfg.Stopwords)
}

func TestResolveCustomListTrimsAndLowercases(t *testing.T) {
	cfg, err := Resolve(Properties{PropCustomList: " Stop, WORDS ,list"})
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"stop": {}, "words": {}, "list": {}}, cfg.Stopwords)
}

func TestResolveCustomListFilePath(t *testing.T) {
	path := writeListFile(t, "Stop\nWords\nLIST\nin\nfile\n")

	cfg, err := Resolve(Properties{PropCustomListFilePath: path})
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{
		"stop": {}, "words": {}, "list": {}, "in": {}, "file": {},
	}, cfg.Stopwords)
}

func TestResolveMissingFileFails(t *testing.T) {
	_, err := Resolve(Properties{PropCustomListFilePath: filepath.Join(t.TempDir(), "missing.txt")})
	require.ErrorIs(t, err, ErrStopwordFileNotFound)
}

func TestResolveResourcePath(t *testing.T) {
	resources := fstest.MapFS{
		"stop-words-list-test.txt": &fstest.MapFile{Data: []byte("stop\nwords\nlist\nin\nfile\n")},
	}

	cfg, err := ResolveFS(Properties{PropCustomListResourcesPath: "stop-words-list-test.txt"}, resources)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{
		"stop": {}, "words": {}, "list": {}, "in": {}, "file": {},
	}, cfg.Stopwords)
}

func TestResolveMissingResourceFails(t *testing.T) {
	_, err := ResolveFS(Properties{PropCustomListResourcesPath: "no-such-resource.txt"}, fstest.MapFS{})
	require.ErrorIs(t, err, ErrStopwordResourceNotFound)
	assert.Contains(t, err.Error(), "no-such-resource.txt")
}

func TestResolveBundledEnglishResource(t *testing.T) {
	cfg, err := Resolve(Properties{PropCustomListResourcesPath: "english.txt"})
	require.NoError(t, err)
	assert.Contains(t, cfg.Stopwords, "the")
	assert.Contains(t, cfg.Stopwords, "because")
}

func TestResolveSourcePrecedence(t *testing.T) {
	path := writeListFile(t, "from\nfile\n")

	// The inline list wins over the file; the file must not even be read.
	cfg, err := Resolve(Properties{
		PropCustomList:              "inline,only",
		PropCustomListFilePath:      filepath.Join(t.TempDir(), "does-not-exist.txt"),
		PropCustomListResourcesPath: "no-such-resource.txt",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"inline": {}, "only": {}}, cfg.Stopwords)

	// The file wins over the bundled resource.
	cfg, err = Resolve(Properties{
		PropCustomListFilePath:      path,
		PropCustomListResourcesPath: "no-such-resource.txt",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"from": {}, "file": {}}, cfg.Stopwords)
}

func TestResolveKeysAreCaseInsensitive(t *testing.T) {
	// Configuration loaders such as viper lowercase map keys.
	cfg, err := Resolve(Properties{
		"customlist":        "stop,words",
		"shorterthan":       "2",
		"checkonlylemmas":   "false",
		"withposcategories": "dt",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"stop": {}, "words": {}}, cfg.Stopwords)
	assert.Equal(t, 2, cfg.MinimumWordLength)
	assert.False(t, cfg.CheckOnlyLemmas)
	assert.Contains(t, cfg.StopPosCategories, "DT")
}

func TestDefaultStopCategories(t *testing.T) {
	categories := DefaultStopCategories()
	for _, tag := range []string{"NNP", "DT", "CC", "MD", "PRP$", "WRB", "SYM"} {
		assert.Contains(t, categories, tag)
	}
	assert.NotContains(t, categories, "NN")
	assert.NotContains(t, categories, "VB")
}
