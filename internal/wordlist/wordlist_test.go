package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "en.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	return path
}

func TestLoadWordsSkipsBlankAndFiltered(t *testing.T) {
	path := writeList(t, "hello\n\n  world  \ncafé\ntwo words\n")
	words, err := LoadWords(path, FilterForLang("en"))
	if err != nil {
		t.Fatalf("load words: %v", err)
	}
	if len(words) != 2 || words[0] != "hello" || words[1] != "world" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestLoadWordsNilFilter(t *testing.T) {
	path := writeList(t, "café\nnaïve\n")
	words, err := LoadWords(path, nil)
	if err != nil {
		t.Fatalf("load words: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %v", words)
	}
}

func TestLoadWordsEmpty(t *testing.T) {
	path := writeList(t, "\n\n")
	if _, err := LoadWords(path, nil); err == nil {
		t.Fatalf("expected error for empty list")
	}
}
