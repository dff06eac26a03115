package prompt

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
)

// EmbeddedLang is the language shipped inside the binary as a fallback
// when no word list has been installed.
const EmbeddedLang = "en"

//go:embed corpus/en.txt
var corpusFS embed.FS

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return readWords(file)
}

// EmbeddedWords returns the built-in default word list.
func EmbeddedWords() ([]string, error) {
	file, err := corpusFS.Open("corpus/" + EmbeddedLang + ".txt")
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for embedded data.
			_ = cerr
		}
	}()
	return readWords(file)
}

// ResolveWords loads the word list for the given language. An explicit
// path wins; otherwise the installed list at langPath is used; the
// embedded corpus backs the default language when nothing is installed.
func ResolveWords(lang, explicitPath, langPath string) ([]string, error) {
	if explicitPath != "" {
		words, err := LoadWords(explicitPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load word list %s: %w", explicitPath, err)
		}
		return words, nil
	}
	words, err := LoadWords(langPath)
	if err == nil {
		return words, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load word list %s: %w", langPath, err)
	}
	if lang == EmbeddedLang {
		return EmbeddedWords()
	}
	return nil, fmt.Errorf("no word list for language %q (expected %s)", lang, langPath)
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}
