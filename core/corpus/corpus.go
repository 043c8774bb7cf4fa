// Package corpus builds and serves the immutable tokenized corpus: one
// source buffer plus the word and sentence indices derived from it.
//
// A corpus stores its indices as buffer-relative offsets, never as live
// references into its own buffer. Accessors rebuild token views on
// demand; the views share the buffer's memory and stay valid for as
// long as the corpus is referenced, because the buffer is never mutated
// or reallocated after construction. For the same reason any number of
// goroutines may read one corpus concurrently without locking.
package corpus

import (
	"io"

	"github.com/nlptk/nlptk/core/errors"
	"github.com/nlptk/nlptk/core/token"
	"github.com/nlptk/nlptk/internal/textio"
)

// Sentence is a contiguous read-only view over a run of corpus words.
type Sentence[L token.Language] = []token.Token[L]

// Corpus owns a source text and its derived indices, parameterized by a
// compile-time language tag. Construct one with FromBytes, FromString,
// FromReader or FromFile; a corpus is immutable afterwards, and no API
// extends it with further text.
type Corpus[L token.Language] struct {
	text  string
	words []Span
	sents []Range
}

// FromBytes tokenizes data into a corpus. It cannot fail: arbitrary
// byte content, including invalid UTF-8 and the empty buffer, is
// accepted and stored verbatim.
func FromBytes[L token.Language](data []byte) *Corpus[L] {
	words, sents := Tokenize(data)
	return &Corpus[L]{text: string(data), words: words, sents: sents}
}

// FromString tokenizes s into a corpus.
func FromString[L token.Language](s string) *Corpus[L] {
	return FromBytes[L]([]byte(s))
}

// FromReader reads r to EOF and tokenizes the result. If reading fails
// no corpus is produced; there is no partially constructed state.
func FromReader[L token.Language](r io.Reader) (*Corpus[L], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewIO("read", "corpus source", err)
	}
	return FromBytes[L](data), nil
}

// FromFile reads the file at path and tokenizes it. Files with an .xz
// or .gz extension are decompressed transparently.
func FromFile[L token.Language](path string) (*Corpus[L], error) {
	data, err := textio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromBytes[L](data), nil
}

// Words returns every word token in order of appearance. The slice is
// rebuilt from the stored spans on each call; each token's text is a
// substring of the corpus buffer, not a copy.
func (c *Corpus[L]) Words() []token.Token[L] {
	out := make([]token.Token[L], len(c.words))
	for i, s := range c.words {
		out[i] = token.Word[L](c.text[s.Start:s.End])
	}
	return out
}

// Sentences returns one contiguous sub-view per sentence, in order.
// Concatenating the views reproduces Words exactly: the sentence ranges
// partition the word index with no gaps and no overlaps. An empty
// corpus has exactly one sentence of length zero.
func (c *Corpus[L]) Sentences() []Sentence[L] {
	words := c.Words()
	out := make([]Sentence[L], len(c.sents))
	for i, r := range c.sents {
		out[i] = words[r.Start:r.End]
	}
	return out
}

// Text returns the full source text, verbatim.
func (c *Corpus[L]) Text() string {
	return c.text
}

// Size returns the length of the source buffer in bytes.
func (c *Corpus[L]) Size() int {
	return len(c.text)
}

// NumWords returns the number of word tokens.
func (c *Corpus[L]) NumWords() int {
	return len(c.words)
}

// NumSentences returns the number of sentences.
func (c *Corpus[L]) NumSentences() int {
	return len(c.sents)
}
