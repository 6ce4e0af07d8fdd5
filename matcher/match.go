package matcher

// Match is a successful query result: a byte range of the haystack plus
// whether the match consumed the pattern only partially against a reading
// that straddled the haystack boundary (see Builder.PatternPartial).
type Match struct {
	Start            int
	End              int
	IsPatternPartial bool
}

// Len reports the byte length of the match.
func (m Match) Len() int {
	return m.End - m.Start
}

// Range reports the match's start and end byte offsets.
func (m Match) Range() (int, int) {
	return m.Start, m.End
}

// subMatch is the internal accumulator threaded through the recursive
// matching core; matchedLen is tail-call accumulated rather than summed
// after unwinding, per
// `_examples/original_source/ib-matcher/src/matcher/mod.rs`'s comment on
// `sub_test`.
type subMatch struct {
	matchedLen       int
	isPatternPartial bool
}
