// Command nlptk tokenizes text corpora and derives n-gram statistics,
// sampled text, and vocabulary filters from them.
package main

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/nlptk/nlptk/core/corpus"
	"github.com/nlptk/nlptk/core/errors"
	"github.com/nlptk/nlptk/core/freq"
	"github.com/nlptk/nlptk/core/ngram"
	"github.com/nlptk/nlptk/core/sample"
	"github.com/nlptk/nlptk/core/sqlite"
	"github.com/nlptk/nlptk/core/token"
	"github.com/nlptk/nlptk/core/vocab"
	"github.com/nlptk/nlptk/internal/logging"
	"github.com/nlptk/nlptk/internal/vocabstore"
)

const version = "0.1.0"

// source is the language tag for corpora handled by this CLI. The
// library keeps corpora of different languages apart at compile time;
// the CLI works in one language at a time.
type source struct{ token.Tag }

// CLI defines the command-line interface for nlptk.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" help:"Log level (debug|info|warn|error)" enum:"debug,info,warn,error" default:"warn"`
	LogFormat string `name:"log-format" help:"Log output format (text|json)" enum:"text,json" default:"text"`

	Words     WordsCmd     `cmd:"" help:"Print word tokens, one per line"`
	Sentences SentencesCmd `cmd:"" help:"Print sentences, one per line"`
	Stats     StatsCmd     `cmd:"" help:"Print corpus statistics and top n-grams"`
	Hash      HashCmd      `cmd:"" help:"Print the BLAKE3 hash of the corpus content"`
	Generate  GenerateCmd  `cmd:"" help:"Sample sentences from corpus statistics"`
	Vocab     VocabGroup   `cmd:"" help:"Vocabulary store operations"`
	Version   VersionCmd   `cmd:"" help:"Print version information"`
}

// VocabGroup contains vocabulary store operations.
type VocabGroup struct {
	Build VocabBuildCmd `cmd:"" help:"Count corpus words into a stored vocabulary set"`
	Apply VocabApplyCmd `cmd:"" help:"Replace out-of-vocabulary words in a corpus stream"`
	List  VocabListCmd  `cmd:"" help:"List stored vocabulary sets"`
}

// loadCorpus reads and tokenizes one corpus file, logging its shape.
func loadCorpus(path string) (*corpus.Corpus[source], error) {
	c, err := corpus.FromFile[source](path)
	if err != nil {
		return nil, err
	}
	logging.CorpusLoaded(path, c.Size(), c.NumWords(), c.NumSentences())
	return c, nil
}

// renderSentence joins a sentence's tokens with single spaces.
func renderSentence(s corpus.Sentence[source]) string {
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

// WordsCmd prints every word token on its own line.
type WordsCmd struct {
	Path string `arg:"" help:"Corpus file (.txt, .txt.gz, .txt.xz)" type:"existingfile"`
}

func (c *WordsCmd) Run() error {
	corp, err := loadCorpus(c.Path)
	if err != nil {
		return err
	}
	for _, t := range corp.Words() {
		fmt.Println(t)
	}
	return nil
}

// SentencesCmd prints each sentence on its own line.
type SentencesCmd struct {
	Path string `arg:"" help:"Corpus file (.txt, .txt.gz, .txt.xz)" type:"existingfile"`
}

func (c *SentencesCmd) Run() error {
	corp, err := loadCorpus(c.Path)
	if err != nil {
		return err
	}
	for _, s := range corp.Sentences() {
		fmt.Println(renderSentence(s))
	}
	return nil
}

// StatsCmd prints corpus counts and the most frequent unigrams and
// bigrams.
type StatsCmd struct {
	Path string `arg:"" help:"Corpus file (.txt, .txt.gz, .txt.xz)" type:"existingfile"`
	Top  int    `help:"Number of top n-grams to show" default:"10"`
}

func (c *StatsCmd) Run() error {
	corp, err := loadCorpus(c.Path)
	if err != nil {
		return err
	}

	wordCounts := freq.Count(ngram.Tokens(corp.Words()))
	fmt.Printf("bytes:          %d\n", corp.Size())
	fmt.Printf("words:          %d\n", corp.NumWords())
	fmt.Printf("distinct words: %d\n", len(wordCounts))
	fmt.Printf("sentences:      %d\n", corp.NumSentences())

	var words []entry
	for t, n := range wordCounts {
		words = append(words, entry{label: t.String(), count: n})
	}
	fmt.Printf("\ntop %d words:\n", c.Top)
	for _, e := range topEntries(words, c.Top) {
		fmt.Printf("  %6d  %s\n", e.count, e.label)
	}

	bigramCounts := freq.Count(ngram.Bigrams(ngram.Padded(corp.Sentences())))
	var bigrams []entry
	for b, n := range bigramCounts {
		bigrams = append(bigrams, entry{label: b.First.String() + " " + b.Second.String(), count: n})
	}
	fmt.Printf("\ntop %d bigrams:\n", c.Top)
	for _, e := range topEntries(bigrams, c.Top) {
		fmt.Printf("  %6d  %s\n", e.count, e.label)
	}
	return nil
}

// entry is one labeled count in a frequency report.
type entry struct {
	label string
	count int
}

// topEntries sorts by descending count, breaking ties by label, and
// keeps at most n entries.
func topEntries(entries []entry, n int) []entry {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].label < entries[j].label
	})
	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// HashCmd prints the corpus content hash.
type HashCmd struct {
	Path string `arg:"" help:"Corpus file (.txt, .txt.gz, .txt.xz)" type:"existingfile"`
}

func (c *HashCmd) Run() error {
	corp, err := loadCorpus(c.Path)
	if err != nil {
		return err
	}
	fmt.Println(corp.Hash())
	return nil
}

// GenerateCmd samples sentences: sentence lengths and words are drawn
// from alias-method distributions over the corpus frequencies.
type GenerateCmd struct {
	Path      string `arg:"" help:"Corpus file (.txt, .txt.gz, .txt.xz)" type:"existingfile"`
	Sentences int    `help:"Number of sentences to generate" default:"10"`
	Seed      uint64 `help:"RNG seed (0 picks a random seed)" default:"0"`
}

func (c *GenerateCmd) Run() error {
	corp, err := loadCorpus(c.Path)
	if err != nil {
		return err
	}
	if corp.NumWords() == 0 {
		return errors.NewValidation("corpus", "no words to sample")
	}

	wordTable, err := sample.FromCounts(freq.Count(ngram.Tokens(corp.Words())))
	if err != nil {
		return err
	}
	var lengths iter.Seq[int] = func(yield func(int) bool) {
		for _, s := range corp.Sentences() {
			if !yield(len(s)) {
				return
			}
		}
	}
	lengthTable, err := sample.FromCounts(freq.Count(lengths))
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	logging.GenerationRun(c.Sentences, seed)

	for i := 0; i < c.Sentences; i++ {
		length := lengthTable.Pick(rng)
		parts := make([]string, length)
		for j := range parts {
			parts[j] = wordTable.Pick(rng).String()
		}
		fmt.Println(strings.Join(parts, " "))
	}
	return nil
}

// VocabBuildCmd counts corpus words and stores them as a vocabulary
// set.
type VocabBuildCmd struct {
	Path     string `arg:"" help:"Corpus file (.txt, .txt.gz, .txt.xz)" type:"existingfile"`
	DB       string `help:"Vocabulary database path" default:"vocab.db" type:"path"`
	MinCount int    `name:"min-count" help:"Drop words seen fewer times than this" default:"1"`
}

func (c *VocabBuildCmd) Run() error {
	corp, err := loadCorpus(c.Path)
	if err != nil {
		return err
	}

	counts := make(map[string]int)
	for t, n := range freq.Count(ngram.Tokens(corp.Words())) {
		if n >= c.MinCount {
			counts[t.Text()] = n
		}
	}

	store, err := vocabstore.Open(c.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Save(corp.Hash(), counts)
	if err != nil {
		return err
	}
	logging.VocabularySaved(id, corp.Hash(), len(counts), "db", c.DB)
	fmt.Println(id)
	return nil
}

// VocabApplyCmd renders the corpus's padded token stream with
// out-of-vocabulary words replaced by the unknown marker.
type VocabApplyCmd struct {
	Path string `arg:"" help:"Corpus file (.txt, .txt.gz, .txt.xz)" type:"existingfile"`
	DB   string `help:"Vocabulary database path" default:"vocab.db" type:"path"`
	ID   string `help:"Vocabulary set ID (defaults to the latest set)"`
}

func (c *VocabApplyCmd) Run() error {
	corp, err := loadCorpus(c.Path)
	if err != nil {
		return err
	}

	store, err := vocabstore.Open(c.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	id := c.ID
	if id == "" {
		latest, err := store.Latest()
		if err != nil {
			return err
		}
		id = latest.ID
	}
	counts, err := store.Load(id)
	if err != nil {
		return err
	}

	v := make(vocab.Vocabulary[source], len(counts)+1)
	for word := range counts {
		v.Add(token.Word[source](word))
	}
	// Keep sentence boundaries intact when filtering the padded stream.
	v.Add(token.Null[source]())

	var parts []string
	for t := range vocab.Unk(ngram.Padded(corp.Sentences()), v) {
		parts = append(parts, t.String())
	}
	fmt.Println(strings.Join(parts, " "))
	return nil
}

// VocabListCmd lists stored vocabulary sets, newest first.
type VocabListCmd struct {
	DB string `help:"Vocabulary database path" default:"vocab.db" type:"path"`
}

func (c *VocabListCmd) Run() error {
	store, err := vocabstore.Open(c.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	infos, err := store.List()
	if err != nil {
		return err
	}
	for _, info := range infos {
		hash := info.CorpusHash
		if len(hash) > 12 {
			hash = hash[:12]
		}
		fmt.Printf("%s  corpus=%s  words=%d  created=%s\n",
			info.ID, hash, info.WordCount, info.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

// VersionCmd prints version and build configuration.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("nlptk %s\n", version)
	info := sqlite.GetInfo()
	fmt.Printf("sqlite driver: %s (%s)\n", info.Package, info.DriverType)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("nlptk"),
		kong.Description("Tokenize text corpora and derive n-gram statistics, samples, and vocabularies."),
		kong.UsageOnError(),
	)
	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), logging.ParseFormat(CLI.LogFormat))
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
