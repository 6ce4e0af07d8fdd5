package matcher

import "errors"

// ErrNoLanguageEnabled is returned by Builder.Build when the combination of
// explicit options and a parsed postmodifier leaves no matching strategy
// (plain, pinyin, romaji) enabled.
var ErrNoLanguageEnabled = errors.New("matcher: no language enabled after postmodifier and options")
