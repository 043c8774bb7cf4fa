// Package ngram derives n-gram sequences from token streams.
//
// Every function returns a lazy iter.Seq that is restartable: ranging
// over one twice replays it from the start. All sequences are finite
// and deterministic given their input.
package ngram

import (
	"iter"

	"github.com/nlptk/nlptk/core/token"
)

// Unigram is a single token.
type Unigram[L token.Language] = token.Token[L]

// Bigram is a pair of adjacent tokens from one stream, usually of the
// same corpus.
type Bigram[L token.Language] struct {
	First  token.Token[L]
	Second token.Token[L]
}

// Tokens adapts a token slice into a restartable sequence.
func Tokens[L token.Language](toks []token.Token[L]) iter.Seq[token.Token[L]] {
	return func(yield func(token.Token[L]) bool) {
		for _, t := range toks {
			if !yield(t) {
				return
			}
		}
	}
}

// Collect drains a sequence into a slice.
func Collect[L token.Language](seq iter.Seq[token.Token[L]]) []token.Token[L] {
	var out []token.Token[L]
	for t := range seq {
		out = append(out, t)
	}
	return out
}

// Unigrams returns the stream unchanged.
func Unigrams[L token.Language](seq iter.Seq[token.Token[L]]) iter.Seq[token.Token[L]] {
	return seq
}

// Bigrams yields every pair of adjacent tokens in the stream, sliding a
// window of two: a stream of n tokens yields max(0, n-1) pairs, and the
// second element of each pair equals the first element of the next.
func Bigrams[L token.Language](seq iter.Seq[token.Token[L]]) iter.Seq[Bigram[L]] {
	return func(yield func(Bigram[L]) bool) {
		var prev token.Token[L]
		have := false
		for t := range seq {
			if have && !yield(Bigram[L]{First: prev, Second: t}) {
				return
			}
			prev, have = t, true
		}
	}
}

// Padded yields one Null token, then for each sentence in order that
// sentence's tokens followed by one Null token. The result has
// 1 + (total token count) + (sentence count) elements, making
// boundary-sensitive statistics well-defined at sentence edges.
func Padded[L token.Language](sentences [][]token.Token[L]) iter.Seq[token.Token[L]] {
	return func(yield func(token.Token[L]) bool) {
		if !yield(token.Null[L]()) {
			return
		}
		for _, sentence := range sentences {
			for _, t := range sentence {
				if !yield(t) {
					return
				}
			}
			if !yield(token.Null[L]()) {
				return
			}
		}
	}
}
