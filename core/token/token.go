// Package token defines the atomic unit of a tokenized corpus: a word
// carrying its exact byte content, or one of two synthetic markers used
// for sentence boundaries and out-of-vocabulary words.
//
// Tokens are parameterized by a compile-time language tag so that tokens
// and corpora from different source languages cannot be mixed by
// accident. The tag carries no runtime data and never participates in
// equality, ordering, or display.
package token

import "strings"

// Kind discriminates the token variants. The zero value is KindNull, so
// the zero Token is the boundary marker.
type Kind int

const (
	// KindNull is the sentence-boundary marker. It never appears in
	// source text.
	KindNull Kind = iota
	// KindUnknown is the out-of-vocabulary marker. It never appears in
	// source text.
	KindUnknown
	// KindWord is a non-empty run of bytes taken from a corpus buffer.
	KindWord
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindUnknown:
		return "unknown"
	case KindWord:
		return "word"
	}
	return "invalid"
}

// Language is the constraint satisfied by language marker types. Declare
// a new language by embedding Tag in an empty struct:
//
//	type French struct{ token.Tag }
//
// Two distinct marker types are distinct languages; the compiler rejects
// mixing their tokens or corpora. A marker has no fields and no runtime
// cost.
type Language interface{ language() }

// Tag is embedded in marker types to satisfy Language.
type Tag struct{}

func (Tag) language() {}

// Untagged is the language marker for corpora whose source language is
// not tracked.
type Untagged struct{ Tag }

// Token is a single token belonging to language L. The zero value is the
// Null token. Tokens are plain comparable values: equality and ordering
// are structural (Null < Unknown < Word, words by byte content), so they
// work directly as map keys.
type Token[L Language] struct {
	kind Kind
	text string
}

// Null returns the sentence-boundary token.
func Null[L Language]() Token[L] {
	return Token[L]{}
}

// Unknown returns the out-of-vocabulary token.
func Unknown[L Language]() Token[L] {
	return Token[L]{kind: KindUnknown}
}

// Word builds a word token from its exact byte content. Corpus accessors
// pass substrings of the corpus buffer here, so no text is copied.
func Word[L Language](text string) Token[L] {
	return Token[L]{kind: KindWord, text: text}
}

// Kind reports the token variant.
func (t Token[L]) Kind() Kind {
	return t.kind
}

// IsWord reports whether the token is a word from some source text.
func (t Token[L]) IsWord() bool {
	return t.kind == KindWord
}

// Text returns the word content. It is empty for Null and Unknown.
func (t Token[L]) Text() string {
	return t.text
}

// Compare orders tokens: Null < Unknown < Word, and words by their byte
// content regardless of where in a buffer they occur. It returns -1, 0
// or 1 in the usual way.
func (t Token[L]) Compare(o Token[L]) int {
	if t.kind != o.kind {
		if t.kind < o.kind {
			return -1
		}
		return 1
	}
	return strings.Compare(t.text, o.text)
}

// Loan relabels a token as belonging to language M, preserving variant
// and byte content exactly. It is an unchecked escape hatch: nothing
// verifies that the content makes sense in the target language, only the
// compile-time tag changes.
func Loan[M, L Language](t Token[L]) Token[M] {
	return Token[M]{kind: t.kind, text: t.text}
}

// String renders Null as "ε", Unknown as "�", and a word by decoding its
// content one byte per character. Multi-byte UTF-8 input therefore
// renders lossily; display is best-effort and never fails.
func (t Token[L]) String() string {
	switch t.kind {
	case KindNull:
		return "ε"
	case KindUnknown:
		return "�"
	}
	var b strings.Builder
	b.Grow(len(t.text))
	for i := 0; i < len(t.text); i++ {
		b.WriteRune(rune(t.text[i]))
	}
	return b.String()
}
