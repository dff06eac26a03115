package prompt

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode"
)

func TestStaticSource(t *testing.T) {
	text, err := Static("hello world").Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if text != "hello world" {
		t.Fatalf("unexpected prompt: %q", text)
	}
	if _, err := Static("").Next(); err == nil {
		t.Fatalf("expected error for empty static prompt")
	}
}

func TestWordListSourceCounts(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	src, err := newWordListSource([]string{"alpha", "beta", "gamma"}, Options{Words: 5}, rnd)
	if err != nil {
		t.Fatalf("new source: %v", err)
	}
	text, err := src.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	words := strings.Fields(text)
	if len(words) != 5 {
		t.Fatalf("expected 5 words, got %d: %q", len(words), text)
	}
	for _, w := range words {
		if w != "alpha" && w != "beta" && w != "gamma" {
			t.Fatalf("unexpected word %q", w)
		}
	}
}

func TestWordListSourceCapsAndPunct(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	src, err := newWordListSource([]string{"word"}, Options{
		Words:    10,
		CapsPct:  1.0,
		PunctPct: 1.0,
		PunctSet: []rune{'!'},
	}, rnd)
	if err != nil {
		t.Fatalf("new source: %v", err)
	}
	text, err := src.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	for _, w := range strings.Fields(text) {
		if !unicode.IsUpper([]rune(w)[0]) {
			t.Fatalf("expected capitalized word, got %q", w)
		}
		if !strings.HasSuffix(w, "!") {
			t.Fatalf("expected trailing punctuation, got %q", w)
		}
	}
}

func TestWordListSourceValidation(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	if _, err := newWordListSource(nil, Options{Words: 5}, rnd); err == nil {
		t.Fatalf("expected error for empty word list")
	}
	if _, err := newWordListSource([]string{"a"}, Options{Words: 0}, rnd); err == nil {
		t.Fatalf("expected error for zero word count")
	}
}

func TestLoadWordsSkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en.txt")
	if err := os.WriteFile(path, []byte("one\n\n  two  \nthree\n"), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	words, err := LoadWords(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{"one", "two", "three"}
	if len(words) != len(want) {
		t.Fatalf("expected %d words, got %d", len(want), len(words))
	}
	for i := range want {
		if words[i] != want[i] {
			t.Fatalf("word %d: got %q, want %q", i, words[i], want[i])
		}
	}
}

func TestEmbeddedWordsAvailable(t *testing.T) {
	words, err := EmbeddedWords()
	if err != nil {
		t.Fatalf("embedded words: %v", err)
	}
	if len(words) == 0 {
		t.Fatalf("embedded corpus is empty")
	}
}

func TestResolveWordsFallsBackToEmbedded(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "en.txt")
	words, err := ResolveWords("en", "", missing)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(words) == 0 {
		t.Fatalf("expected embedded fallback words")
	}

	if _, err := ResolveWords("xx", "", filepath.Join(t.TempDir(), "xx.txt")); err == nil {
		t.Fatalf("expected error for missing non-default language")
	}
}

func TestResolveWordsPrefersExplicitPath(t *testing.T) {
	dir := t.TempDir()
	explicit := filepath.Join(dir, "custom.txt")
	if err := os.WriteFile(explicit, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	words, err := ResolveWords("en", explicit, filepath.Join(dir, "en.txt"))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(words) != 1 || words[0] != "custom" {
		t.Fatalf("expected explicit list, got %+v", words)
	}
}
