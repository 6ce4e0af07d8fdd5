package pinyin

import "sort"

// noIndex is the "no pinyin" sentinel used throughout the range table and
// combination rows, mirroring the Rust original's `u16::MAX`.
const noIndex = 0xFFFF

// MinCodepoint and MaxCodepoint bound the aggregate covering range: any
// rune outside [MinCodepoint, MaxCodepoint] is guaranteed to have no
// pinyin and short-circuits before any table lookup.
const (
	MinCodepoint = 0x3007
	MaxCodepoint = 0x30EDE
)

// rangeTable is one inclusive codepoint range paired with a dense lookup
// table indexed by (codepoint - lo). Grounded on
// `_examples/original_source/ib-matcher/src/pinyin/mod.rs`'s
// `PinyinRangeTable`.
type rangeTable struct {
	lo, hi uint32
	table  []uint16
}

func (rt rangeTable) get(c rune) (uint16, bool) {
	u := uint32(c)
	if u < rt.lo || u > rt.hi {
		return 0, false
	}
	v := rt.table[u-rt.lo]
	if v == noIndex {
		return 0, false
	}
	return v, true
}

// staticTable is the compiled static data: deduplicated unicode pinyin
// strings, the combination rows for polyphone characters, and the range
// tables resolving a codepoint to an index into either array.
type staticTable struct {
	pinyins      []string // unique unicode pinyin strings, index < len(pinyins)
	combinations [][]uint16
	ranges       []rangeTable
}

// buildStaticTable compiles a curated map of rune -> ordered list of
// unicode pinyin readings (polyphone characters list more than one) into
// the range-table + combination-row structure described by the data
// model. Entries are grouped into contiguous-codepoint ranges the same way
// the original's generator does, just computed here instead of offline.
func buildStaticTable(entries map[rune][]string) staticTable {
	runes := make([]rune, 0, len(entries))
	for r := range entries {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	pinyinIndex := map[string]uint16{}
	var pinyins []string
	internPinyin := func(s string) uint16 {
		if i, ok := pinyinIndex[s]; ok {
			return i
		}
		i := uint16(len(pinyins))
		pinyins = append(pinyins, s)
		pinyinIndex[s] = i
		return i
	}

	// First pass: intern every reading and record each rune's raw index --
	// either a direct pinyin index, or a combination-row index that still
	// needs the len(pinyins) offset once interning has finished.
	var combinations [][]uint16
	rawIndex := make(map[rune]uint16, len(runes))
	isCombo := make(map[rune]bool, len(runes))
	for _, r := range runes {
		readings := entries[r]
		if len(readings) == 1 {
			rawIndex[r] = internPinyin(readings[0])
			continue
		}
		row := make([]uint16, 0, len(readings)+1)
		for _, s := range readings {
			row = append(row, internPinyin(s))
		}
		row = append(row, noIndex)
		rawIndex[r] = uint16(len(combinations))
		combinations = append(combinations, row)
		isCombo[r] = true
	}

	// Freeze N now that no more pinyins will be interned, then offset every
	// combination-row index by it so encode and decode agree on the split
	// point between direct pinyin indices and combination-row indices.
	n := uint16(len(pinyins))
	for r := range isCombo {
		rawIndex[r] += n
	}

	var ranges []rangeTable
	i := 0
	for i < len(runes) {
		j := i
		for j+1 < len(runes) && runes[j+1] == runes[j]+1 {
			j++
		}
		lo, hi := runes[i], runes[j]
		table := make([]uint16, hi-lo+1)
		for k := range table {
			table[k] = noIndex
		}
		for k := i; k <= j; k++ {
			table[runes[k]-lo] = rawIndex[runes[k]]
		}
		ranges = append(ranges, rangeTable{lo: uint32(lo), hi: uint32(hi), table: table})
		i = j + 1
	}

	return staticTable{pinyins: pinyins, combinations: combinations, ranges: ranges}
}

// lookup resolves a codepoint to a raw table index, or (0, false) if it
// carries no pinyin.
func (t staticTable) lookup(c rune) (uint16, bool) {
	if c < MinCodepoint || c > MaxCodepoint {
		return 0, false
	}
	for _, rt := range t.ranges {
		if idx, ok := rt.get(c); ok {
			return idx, true
		}
	}
	return 0, false
}

// readings returns every unicode pinyin reading for a resolved table
// index, in source (combination-row) order.
func (t staticTable) readings(index uint16) []string {
	if int(index) < len(t.pinyins) {
		return t.pinyins[index:][:1]
	}
	row := t.combinations[int(index)-len(t.pinyins)]
	out := make([]string, 0, len(row))
	for _, i := range row {
		if i == noIndex {
			break
		}
		out = append(out, t.pinyins[i])
	}
	return out
}
