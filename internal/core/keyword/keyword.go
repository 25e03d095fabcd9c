// Package keyword cleans user supplied search terms before they reach the search index
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKC normalization
// 3 Remove format and control characters (zero-width joiners, BOM, C0/C1)
// 4 Width fold fullwidth forms to ASCII
// 5 Collapse whitespace runs to single spaces and trim
//
// Case is preserved; the index matches case-insensitively
package keyword

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// MaxRunes bounds how much of a term is kept
const MaxRunes = 100

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)),
			runes.Remove(runes.Predicate(isStrayControl)),
			width.Fold,
		)
	},
}

// keep whitespace controls so collapse can see them
func isStrayControl(r rune) bool {
	return unicode.IsControl(r) && !unicode.IsSpace(r)
}

// Normalize returns the cleaned form of s, "" when nothing searchable is left
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		ns = s
	}

	ns = collapse(ns)
	if r := []rune(ns); len(r) > MaxRunes {
		ns = strings.TrimSpace(string(r[:MaxRunes]))
	}
	return ns
}

// collapse turns every whitespace run, newlines included, into one ASCII space
func collapse(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
