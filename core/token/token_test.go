package token

import (
	"sort"
	"testing"
)

type english struct{ Tag }
type french struct{ Tag }

// TestZeroValueIsNull tests that the zero Token is the boundary marker.
func TestZeroValueIsNull(t *testing.T) {
	var tok Token[english]
	if tok != Null[english]() {
		t.Errorf("zero token = %v, want Null", tok)
	}
	if tok.Kind() != KindNull {
		t.Errorf("zero token kind = %v, want KindNull", tok.Kind())
	}
}

// TestWordContent tests that word tokens keep their exact content and
// that synthetic tokens have none.
func TestWordContent(t *testing.T) {
	w := Word[english]("soup")
	if !w.IsWord() {
		t.Error("Word token not reported as word")
	}
	if w.Text() != "soup" {
		t.Errorf("Text() = %q, want %q", w.Text(), "soup")
	}
	if got := Null[english]().Text(); got != "" {
		t.Errorf("Null text = %q, want empty", got)
	}
	if got := Unknown[english]().Text(); got != "" {
		t.Errorf("Unknown text = %q, want empty", got)
	}
}

// TestStructuralEquality tests that equality ignores position and
// depends only on variant and content.
func TestStructuralEquality(t *testing.T) {
	a := Word[english]("the")
	b := Word[english]("the")
	if a != b {
		t.Error("equal words compare unequal")
	}
	if Word[english]("the") == Word[english]("The") {
		t.Error("distinct words compare equal")
	}
	if Null[english]() == Unknown[english]() {
		t.Error("Null equals Unknown")
	}
}

// TestCompareOrder tests the fixed total order Null < Unknown < Word,
// with words ordered by byte content.
func TestCompareOrder(t *testing.T) {
	toks := []Token[english]{
		Word[english]("zebra"),
		Unknown[english](),
		Word[english]("apple"),
		Null[english](),
	}
	sort.Slice(toks, func(i, j int) bool { return toks[i].Compare(toks[j]) < 0 })

	want := []Token[english]{
		Null[english](),
		Unknown[english](),
		Word[english]("apple"),
		Word[english]("zebra"),
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("sorted[%d] = %v, want %v", i, toks[i], want[i])
		}
	}
}

// TestCompareReflexive tests that Compare returns 0 for equal tokens.
func TestCompareReflexive(t *testing.T) {
	for _, tok := range []Token[english]{Null[english](), Unknown[english](), Word[english]("rat")} {
		if tok.Compare(tok) != 0 {
			t.Errorf("Compare(%v, %v) != 0", tok, tok)
		}
	}
}

// TestLoanPreservesVariantAndContent tests that relabeling across
// language tags changes nothing observable about the token.
func TestLoanPreservesVariantAndContent(t *testing.T) {
	cases := []Token[english]{
		Null[english](),
		Unknown[english](),
		Word[english]("chien"),
	}
	for _, tok := range cases {
		loaned := Loan[french](tok)
		if loaned.Kind() != tok.Kind() {
			t.Errorf("loan changed kind: %v -> %v", tok.Kind(), loaned.Kind())
		}
		if loaned.Text() != tok.Text() {
			t.Errorf("loan changed text: %q -> %q", tok.Text(), loaned.Text())
		}
		// Round trip back to the original tag restores the original value.
		if back := Loan[english](loaned); back != tok {
			t.Errorf("loan round trip: got %v, want %v", back, tok)
		}
	}
}

// TestString tests the fixed glyphs and the byte-per-character word
// rendering.
func TestString(t *testing.T) {
	tests := []struct {
		tok  Token[english]
		want string
	}{
		{Null[english](), "ε"},
		{Unknown[english](), "�"},
		{Word[english]("dog."), "dog."},
		// 0xE9 is é in Latin-1; byte-per-character decoding maps the
		// raw byte to U+00E9, not to a UTF-8 sequence.
		{Word[english]("caf\xe9"), "café"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String(%v) = %q, want %q", tt.tok.Kind(), got, tt.want)
		}
	}
}

// TestKindString tests the Kind names used in logs.
func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNull, "null"},
		{KindUnknown, "unknown"},
		{KindWord, "word"},
		{Kind(42), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

// TestTokenAsMapKey tests that tokens work as map keys with structural
// identity.
func TestTokenAsMapKey(t *testing.T) {
	m := map[Token[english]]int{}
	m[Word[english]("the")]++
	m[Word[english]("the")]++
	m[Null[english]()]++
	if m[Word[english]("the")] != 2 {
		t.Errorf("map count = %d, want 2", m[Word[english]("the")])
	}
	if len(m) != 2 {
		t.Errorf("map size = %d, want 2", len(m))
	}
}
