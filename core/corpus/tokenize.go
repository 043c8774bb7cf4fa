package corpus

// Span is a half-open byte range [Start, End) within a corpus buffer.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Range is a half-open range [Start, End) of positions in the word
// index. Each sentence owns one such range; consecutive ranges abut, so
// together they partition the word index exactly.
type Range struct {
	Start int
	End   int
}

// Len returns the number of words in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Tokenize splits data into word spans and sentence ranges in a single
// pass over the buffer. Sentences are delimited by '\n' (0x0A); words
// within a sentence by ' ' (0x20). Runs of spaces and leading or
// trailing spaces contribute no words, so every word span is non-empty.
// All other bytes, including '\r', pass through untouched and stay
// attached to the word they occur in.
//
// Tokenize is total: it succeeds for any byte content. Splitting an
// empty buffer on '\n' yields one empty segment, so empty input
// produces no words and exactly one zero-length sentence.
func Tokenize(data []byte) ([]Span, []Range) {
	var words []Span
	sentences := make([]Range, 0, 1)

	lineStart := 0
	for i := 0; i <= len(data); i++ {
		if i < len(data) && data[i] != '\n' {
			continue
		}
		// data[lineStart:i] is one sentence segment.
		first := len(words)
		wordStart := lineStart
		for j := lineStart; j <= i; j++ {
			if j < i && data[j] != ' ' {
				continue
			}
			if j > wordStart {
				words = append(words, Span{Start: wordStart, End: j})
			}
			wordStart = j + 1
		}
		sentences = append(sentences, Range{Start: first, End: len(words)})
		lineStart = i + 1
	}
	return words, sentences
}
