// Package ahocorasick implements a generic Aho-Corasick automaton keyed by
// an arbitrary comparable symbol type. It backs both the byte-level ASCII
// fast path and the rune-level romaji tokenizer, grounded on the classic
// trie-plus-failure-links construction shown in the retrieved reference
// implementations (storbeck-augustus's augustus port of the Rust
// aho-corasick crate, and itgcl-ahocorasick's single-file port), rewritten
// here as a single generic package rather than imported, since no complete
// importable Go Aho-Corasick module was available to wire with confidence
// offline.
package ahocorasick

// MatchKind selects how overlapping candidate matches at a single position
// are resolved.
type MatchKind int

const (
	// LeftmostFirst prefers the pattern that was added first among those
	// tied for longest prefix at a position.
	LeftmostFirst MatchKind = iota
	// LeftmostLongest prefers the longest matching pattern at a position,
	// breaking ties by insertion order.
	LeftmostLongest
)

// Match reports a single matched pattern occurrence.
type Match struct {
	Pattern int
	Start   int
	End     int
}

const rootState = 0

type node[S comparable] struct {
	children map[S]int
	fail     int
	// output holds indices, into Automaton.patterns, of every pattern that
	// ends at this state either directly or via a suffix reachable by
	// following fail links. Built once at construction time so the query
	// path never walks the fail chain.
	output []int
	depth  int
}

// Automaton is a multi-pattern Aho-Corasick automaton over symbols of type
// S. The zero value is not usable; construct with Build.
type Automaton[S comparable] struct {
	nodes     []node[S]
	patterns  [][]S
	matchKind MatchKind
	fold      func(S) S
}

// Build constructs an automaton over patterns, keeping the first occurrence
// of any duplicate pattern's index as canonical. A nil or empty patterns
// slice yields an automaton that never matches.
func Build[S comparable](patterns [][]S, kind MatchKind) *Automaton[S] {
	return BuildFold(patterns, kind, nil)
}

// BuildFold is Build with an optional per-symbol normalization function
// (e.g. ASCII case folding) applied to both the stored patterns and the
// haystack at query time.
func BuildFold[S comparable](patterns [][]S, kind MatchKind, fold func(S) S) *Automaton[S] {
	a := &Automaton[S]{
		patterns:  patterns,
		matchKind: kind,
		fold:      fold,
		nodes:     []node[S]{{children: map[S]int{}}},
	}
	for i, p := range patterns {
		a.insert(p, i)
	}
	a.buildFailLinks()
	return a
}

func (a *Automaton[S]) at(s S) S {
	if a.fold != nil {
		return a.fold(s)
	}
	return s
}

func (a *Automaton[S]) insert(pattern []S, id int) {
	cur := rootState
	for _, sym := range pattern {
		sym = a.at(sym)
		next, ok := a.nodes[cur].children[sym]
		if !ok {
			a.nodes = append(a.nodes, node[S]{children: map[S]int{}, depth: a.nodes[cur].depth + 1})
			next = len(a.nodes) - 1
			a.nodes[cur].children[sym] = next
		}
		cur = next
	}
	a.nodes[cur].output = append(a.nodes[cur].output, id)
}

func (a *Automaton[S]) buildFailLinks() {
	var queue []int
	root := &a.nodes[rootState]
	for _, child := range root.children {
		a.nodes[child].fail = rootState
		queue = append(queue, child)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for sym, next := range a.nodes[cur].children {
			queue = append(queue, next)
			fail := a.nodes[cur].fail
			for {
				if f, ok := a.nodes[fail].children[sym]; ok && f != next {
					a.nodes[next].fail = f
					break
				}
				if fail == rootState {
					a.nodes[next].fail = rootState
					break
				}
				fail = a.nodes[fail].fail
			}
			a.nodes[next].output = append(a.nodes[next].output, a.nodes[a.nodes[next].fail].output...)
		}
	}
}

func (a *Automaton[S]) step(state int, sym S) int {
	sym = a.at(sym)
	for {
		if next, ok := a.nodes[state].children[sym]; ok {
			return next
		}
		if state == rootState {
			return rootState
		}
		state = a.nodes[state].fail
	}
}

// PatternCount reports the number of patterns the automaton was built with.
func (a *Automaton[S]) PatternCount() int {
	return len(a.patterns)
}

// Pattern returns the original pattern stored under id.
func (a *Automaton[S]) Pattern(id int) []S {
	return a.patterns[id]
}

// pick resolves multiple candidate outputs ending at the same position down
// to a single winner according to the automaton's MatchKind.
func (a *Automaton[S]) pick(end int, ids []int) Match {
	best := ids[0]
	if a.matchKind == LeftmostLongest {
		for _, id := range ids[1:] {
			if len(a.patterns[id]) > len(a.patterns[best]) {
				best = id
			}
		}
	}
	return Match{Pattern: best, Start: end - len(a.patterns[best]), End: end}
}

// FindAt scans haystack starting at offset start and returns the leftmost
// match whose start position is >= start. If anchored is true, only matches
// that start exactly at start are considered (anchored prefix search); this
// degenerates to a simple trie walk that never needs failure links, which
// is the only mode the romaji tokenizer uses.
func (a *Automaton[S]) FindAt(haystack []S, start int, anchored bool) *Match {
	if len(a.patterns) == 0 {
		return nil
	}
	if anchored {
		return a.findAnchored(haystack, start)
	}
	state := rootState
	for i := start; i < len(haystack); i++ {
		state = a.step(state, haystack[i])
		if outs := a.nodes[state].output; len(outs) > 0 {
			m := a.pick(i+1, outs)
			if m.Start >= start {
				return &m
			}
		}
	}
	return nil
}

// findAnchored walks the trie (no failure links) matching haystack[start:]
// against the pattern set, remembering the best candidate output seen along
// the walk. Because it never backtracks, it reports the best (by
// MatchKind) pattern that is an exact match of a prefix of haystack[start:].
func (a *Automaton[S]) findAnchored(haystack []S, start int) *Match {
	state := rootState
	var best *Match
	for i := start; i < len(haystack); i++ {
		sym := a.at(haystack[i])
		next, ok := a.nodes[state].children[sym]
		if !ok {
			break
		}
		state = next
		if outs := a.nodes[state].output; len(outs) > 0 {
			m := a.pick(i+1, outs)
			if best == nil || m.End > best.End || (m.End == best.End && a.matchKind == LeftmostLongest && len(a.patterns[m.Pattern]) > len(a.patterns[best.Pattern])) {
				best = &m
			}
		}
	}
	return best
}

// Find returns the leftmost match anywhere in haystack, or nil.
func (a *Automaton[S]) Find(haystack []S) *Match {
	return a.FindAt(haystack, 0, false)
}

// IsMatch reports whether any pattern occurs anywhere in haystack.
func (a *Automaton[S]) IsMatch(haystack []S) bool {
	return a.Find(haystack) != nil
}

// FindAll returns every non-overlapping leftmost match in haystack, scanning
// left to right and resuming after each match's end.
func (a *Automaton[S]) FindAll(haystack []S) []Match {
	var out []Match
	pos := 0
	for pos <= len(haystack) {
		m := a.FindAt(haystack, pos, false)
		if m == nil {
			break
		}
		out = append(out, *m)
		if m.End > pos {
			pos = m.End
		} else {
			pos++
		}
	}
	return out
}
