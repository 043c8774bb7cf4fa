// Package vocab implements the known-word set and the
// out-of-vocabulary filter.
package vocab

import (
	"iter"

	"github.com/nlptk/nlptk/core/token"
)

// Vocabulary is the set of tokens considered known. Membership uses the
// same structural equality as tokens themselves; the language tag keeps
// vocabularies of different languages apart at compile time.
type Vocabulary[L token.Language] map[token.Token[L]]struct{}

// New builds a vocabulary containing every distinct token in the
// stream.
func New[L token.Language](seq iter.Seq[token.Token[L]]) Vocabulary[L] {
	v := make(Vocabulary[L])
	for t := range seq {
		v.Add(t)
	}
	return v
}

// Of builds a vocabulary from the listed tokens.
func Of[L token.Language](toks ...token.Token[L]) Vocabulary[L] {
	v := make(Vocabulary[L], len(toks))
	for _, t := range toks {
		v.Add(t)
	}
	return v
}

// Add inserts a token into the set.
func (v Vocabulary[L]) Add(t token.Token[L]) {
	v[t] = struct{}{}
}

// Contains reports membership.
func (v Vocabulary[L]) Contains(t token.Token[L]) bool {
	_, ok := v[t]
	return ok
}

// Len returns the number of distinct tokens in the set.
func (v Vocabulary[L]) Len() int {
	return len(v)
}

// Unk replaces every token not present in v with the Unknown marker,
// preserving the stream's length and order; members pass through
// unchanged.
//
// Membership is checked literally for every token, synthetic variants
// included: a Null boundary marker in the stream is rewritten to
// Unknown unless the caller has added token.Null to v. Callers
// filtering a padded stream usually want to do exactly that.
func Unk[L token.Language](seq iter.Seq[token.Token[L]], v Vocabulary[L]) iter.Seq[token.Token[L]] {
	return func(yield func(token.Token[L]) bool) {
		for t := range seq {
			if !v.Contains(t) {
				t = token.Unknown[L]()
			}
			if !yield(t) {
				return
			}
		}
	}
}
