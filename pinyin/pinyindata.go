package pinyin

import "sync"

// Pinyin is a resolved reading of one haystack codepoint: an index into
// Data's static table plus a back-reference so per-notation strings can be
// derived on demand.
type Pinyin struct {
	data  *Data
	index uint16
}

// Notation returns this reading's encoded string under the given single
// notation flag, or "" if that notation was never initialized on the
// owning Data. Passing more than one bit returns "".
func (p Pinyin) Notation(n Notation) (string, bool) {
	return p.data.notationString(n, p.index)
}

// InitialFinal returns the deterministic initial/final split of this
// reading's Ascii form.
func (p Pinyin) InitialFinal() (initial, final string) {
	ascii, ok := p.Notation(Ascii)
	if !ok {
		return "", ""
	}
	return splitInitialFinal(ascii)
}

// Data owns the static unicode table plus lazily materialized per-notation
// string arrays. Grounded on
// `_examples/original_source/ib-matcher/src/pinyin/mod.rs`'s `PinyinData`.
type Data struct {
	table staticTable

	mu              sync.RWMutex
	initedNotations Notation
	ascii           []string
	asciiTone       []string
	diletter        map[Notation][]string

	// immutable records that the Data was created by NewImmutable. No code
	// path reads it: InitNotations and every notation read take mu exactly
	// as in New's mode, so both modes are safe for concurrent InitNotations
	// calls and neither offers lock-free reads or one-shot atomic
	// publication.
	immutable bool
}

// New creates pinyin data with notations already materialized.
func New(notations Notation) *Data {
	d := &Data{table: buildStaticTable(rawUnicodeReadings), diletter: map[Notation][]string{}}
	d.InitNotations(notations)
	return d
}

// NewImmutable is New with the immutable flag set. The flag changes no
// behavior: InitNotations still materializes notations under the same
// write lock, and reads still take the read lock.
func NewImmutable(notations Notation) *Data {
	d := New(notations)
	d.immutable = true
	return d
}

// InitedNotations reports which notations have been materialized so far.
func (d *Data) InitedNotations() Notation {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.initedNotations
}

// InitNotations idempotently materializes any notation in notations that
// has not yet been built. Unicode needs no storage (it is the source table
// itself). AsciiFirstLetter needs none of its own: it is derived on-the-fly
// as the first byte of Ascii, so requesting it materializes the Ascii array
// if that is still absent.
func (d *Data) InitNotations(notations Notation) {
	d.mu.Lock()
	defer d.mu.Unlock()
	missing := notations.Difference(d.initedNotations)
	if missing.IsEmpty() {
		return
	}

	n := len(d.table.pinyins)
	if (missing.Contains(Ascii) || missing.Contains(AsciiFirstLetter)) && d.ascii == nil {
		d.ascii = make([]string, n)
		for i, u := range d.table.pinyins {
			d.ascii[i] = UnicodeToAscii(u)
		}
	}
	if missing.Contains(AsciiTone) && d.asciiTone == nil {
		d.asciiTone = make([]string, n)
		for i, u := range d.table.pinyins {
			d.asciiTone[i] = UnicodeToAsciiTone(u)
		}
	}
	diletterEncoders := map[Notation]func(string) string{
		DiletterAbc:       asciiToDiletterAbc,
		DiletterJiajia:    asciiToDiletterJiajia,
		DiletterMicrosoft: asciiToDiletterMicrosoft,
		DiletterThunisoft: asciiToDiletterThunisoft,
		DiletterXiaohe:    asciiToDiletterXiaohe,
		DiletterZrm:       asciiToDiletterZrm,
	}
	for flag, enc := range diletterEncoders {
		if !missing.Contains(flag) || d.diletter[flag] != nil {
			continue
		}
		if d.ascii == nil {
			d.ascii = make([]string, n)
			for i, u := range d.table.pinyins {
				d.ascii[i] = UnicodeToAscii(u)
			}
		}
		arr := make([]string, n)
		for i, a := range d.ascii {
			arr[i] = enc(a)
		}
		d.diletter[flag] = arr
	}

	d.initedNotations = d.initedNotations.Union(notations)
	logger.Debug().Str("notations", d.initedNotations.String()).Msg("pinyin notations initialized")
}

// notationString resolves a single reading index under a single notation
// flag.
func (d *Data) notationString(n Notation, index uint16) (string, bool) {
	if n == Unicode {
		if int(index) >= len(d.table.pinyins) {
			return "", false
		}
		return d.table.pinyins[index], true
	}
	if n == AsciiFirstLetter {
		a, ok := d.notationString(Ascii, index)
		if !ok || len(a) == 0 {
			return "", false
		}
		return a[:1], true
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	switch n {
	case Ascii:
		if d.ascii == nil {
			return "", false
		}
		return d.ascii[index], true
	case AsciiTone:
		if d.asciiTone == nil {
			return "", false
		}
		return d.asciiTone[index], true
	default:
		arr, ok := d.diletter[n]
		if !ok {
			return "", false
		}
		return arr[index], true
	}
}

// GetPinyinIndex resolves the raw table index for a codepoint, or
// (0, false) if c carries no pinyin.
func (d *Data) GetPinyinIndex(c rune) (uint16, bool) {
	return d.table.lookup(c)
}

// GetPinyinsAndTryForEach invokes f with each reading of c in source order,
// short-circuiting and returning f's result on the first call that reports
// ok=true. It performs no heap allocation beyond what f itself allocates,
// matching the hot-path contract in SPEC_FULL.md §5.1.
func GetPinyinsAndTryForEach[T any](d *Data, c rune, f func(Pinyin) (bool, T)) (bool, T) {
	var zero T
	index, found := d.GetPinyinIndex(c)
	if !found {
		return false, zero
	}
	if int(index) < len(d.table.pinyins) {
		return f(Pinyin{data: d, index: index})
	}
	row := d.table.combinations[int(index)-len(d.table.pinyins)]
	for _, i := range row {
		if i == noIndex {
			break
		}
		if ok, v := f(Pinyin{data: d, index: i}); ok {
			return true, v
		}
	}
	return false, zero
}

// MatchPinyin returns, in deduplicated source order, every distinct string
// under notation that is a prefix of haystack.
func (d *Data) MatchPinyin(notation Notation, haystack string) []string {
	out, _ := d.MatchPinyinPartial(notation, haystack, false)
	result := make([]string, 0, len(out))
	for _, m := range out {
		if !m.Partial {
			result = append(result, m.Reading)
		}
	}
	return result
}

// PinyinMatch is one result of MatchPinyinPartial: a notation string that
// either is a prefix of the haystack tail (Partial=false) or of which the
// haystack tail is a proper prefix (Partial=true).
type PinyinMatch struct {
	Reading string
	Partial bool
}

// MatchPinyinPartial iterates the distinct strings for notation
// (deduplicated in table order) and yields those that are prefixes of
// haystack; when partial is true it also yields strings of which haystack
// is a proper prefix, tagged Partial=true.
func (d *Data) MatchPinyinPartial(notation Notation, haystack string, partial bool) ([]PinyinMatch, bool) {
	var out []PinyinMatch
	seen := map[string]bool{}
	emit := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		switch {
		case len(haystack) >= len(s) && haystack[:len(s)] == s:
			out = append(out, PinyinMatch{Reading: s, Partial: false})
		case partial && len(s) >= len(haystack) && s[:len(haystack)] == haystack:
			out = append(out, PinyinMatch{Reading: s, Partial: true})
		}
	}
	switch notation {
	case Unicode:
		for _, s := range d.table.pinyins {
			emit(s)
		}
	case AsciiFirstLetter:
		if d.ascii != nil {
			for _, s := range d.ascii {
				if len(s) > 0 {
					emit(s[:1])
				}
			}
		}
	case Ascii:
		for _, s := range d.ascii {
			emit(s)
		}
	case AsciiTone:
		for _, s := range d.asciiTone {
			emit(s)
		}
	default:
		for _, s := range d.diletter[notation] {
			emit(s)
		}
	}
	return out, len(out) > 0
}
