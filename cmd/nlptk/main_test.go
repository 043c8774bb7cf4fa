package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nlptk/nlptk/internal/vocabstore"
)

// Test helper functions

func createTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

const testCorpus = "The soup pleased the dog.\nThe cat caught the rat."

// TestLoadCorpus tests the shared loader used by every corpus command.
func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()
	path := createTestFile(t, dir, "corpus.txt", testCorpus)

	c, err := loadCorpus(path)
	if err != nil {
		t.Fatalf("loadCorpus failed: %v", err)
	}
	if c.NumWords() != 10 || c.NumSentences() != 2 {
		t.Errorf("words=%d sentences=%d, want 10 and 2", c.NumWords(), c.NumSentences())
	}

	if _, err := loadCorpus(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestRenderSentence tests space-joined sentence rendering.
func TestRenderSentence(t *testing.T) {
	dir := t.TempDir()
	path := createTestFile(t, dir, "corpus.txt", testCorpus)
	c, err := loadCorpus(path)
	if err != nil {
		t.Fatalf("loadCorpus failed: %v", err)
	}
	sents := c.Sentences()
	if got := renderSentence(sents[0]); got != "The soup pleased the dog." {
		t.Errorf("renderSentence = %q", got)
	}
	if got := renderSentence(nil); got != "" {
		t.Errorf("renderSentence(nil) = %q, want empty", got)
	}
}

// TestTopEntries tests ordering, tie-breaking, and truncation.
func TestTopEntries(t *testing.T) {
	in := []entry{
		{label: "b", count: 2},
		{label: "a", count: 2},
		{label: "c", count: 5},
		{label: "d", count: 1},
	}
	got := topEntries(in, 3)
	want := []entry{
		{label: "c", count: 5},
		{label: "a", count: 2},
		{label: "b", count: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	if n := len(topEntries([]entry{{label: "x", count: 1}}, 5)); n != 1 {
		t.Errorf("truncation grew the slice to %d entries", n)
	}
}

// TestCorpusCommands tests the read-only corpus commands end to end.
func TestCorpusCommands(t *testing.T) {
	dir := t.TempDir()
	path := createTestFile(t, dir, "corpus.txt", testCorpus)

	words := &WordsCmd{Path: path}
	if err := words.Run(); err != nil {
		t.Errorf("words: %v", err)
	}
	sentences := &SentencesCmd{Path: path}
	if err := sentences.Run(); err != nil {
		t.Errorf("sentences: %v", err)
	}
	stats := &StatsCmd{Path: path, Top: 5}
	if err := stats.Run(); err != nil {
		t.Errorf("stats: %v", err)
	}
	hash := &HashCmd{Path: path}
	if err := hash.Run(); err != nil {
		t.Errorf("hash: %v", err)
	}
}

// TestGenerateCmd tests sampling from a small corpus, including the
// empty-corpus error path.
func TestGenerateCmd(t *testing.T) {
	dir := t.TempDir()
	path := createTestFile(t, dir, "corpus.txt", testCorpus)

	gen := &GenerateCmd{Path: path, Sentences: 5, Seed: 42}
	if err := gen.Run(); err != nil {
		t.Errorf("generate: %v", err)
	}

	empty := createTestFile(t, dir, "empty.txt", "")
	gen = &GenerateCmd{Path: empty, Sentences: 1, Seed: 42}
	if err := gen.Run(); err == nil {
		t.Error("expected error for empty corpus")
	}
}

// TestVocabWorkflow tests build, list, and apply against one database.
func TestVocabWorkflow(t *testing.T) {
	dir := t.TempDir()
	path := createTestFile(t, dir, "corpus.txt", testCorpus)
	db := filepath.Join(dir, "vocab.db")

	build := &VocabBuildCmd{Path: path, DB: db, MinCount: 2}
	if err := build.Run(); err != nil {
		t.Fatalf("vocab build: %v", err)
	}

	// min-count 2 keeps "The" and "the" (case-distinct, two
	// occurrences each); every other word appears once.
	store, err := vocabstore.Open(db)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	latest, err := store.Latest()
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	counts, err := store.Load(latest.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	store.Close()
	if len(counts) != 2 || counts["the"] != 2 || counts["The"] != 2 {
		t.Errorf("stored counts = %v, want the:2 The:2", counts)
	}

	list := &VocabListCmd{DB: db}
	if err := list.Run(); err != nil {
		t.Errorf("vocab list: %v", err)
	}

	apply := &VocabApplyCmd{Path: path, DB: db}
	if err := apply.Run(); err != nil {
		t.Errorf("vocab apply: %v", err)
	}
	apply = &VocabApplyCmd{Path: path, DB: db, ID: "no-such-id"}
	if err := apply.Run(); err == nil {
		t.Error("expected error for unknown vocabulary ID")
	}
}

// TestVersionCmd tests that version reporting succeeds.
func TestVersionCmd(t *testing.T) {
	cmd := &VersionCmd{}
	if err := cmd.Run(); err != nil {
		t.Errorf("version: %v", err)
	}
}
