// Package svqcanon canonicalizes free-form security-question answers into
// the deterministic byte form fed to the key-derivation function. Users
// naturally vary casing, spacing, and trailing punctuation between the
// moment they set up an answer and the moment they recall it; this package
// strips that variance while leaving semantic content intact.
package svqcanon

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jpfluger/svaroq/svqerr"
)

// trimmedRunes are stripped after lowercasing. This is the literal code
// point list from the reference implementation; do not extend it and do not
// apply NFC/NFD normalization on top — either change would silently break
// compatibility with already-sealed containers.
var trimmedRunes = []rune{
	' ',      // U+0020 SPACE
	'\t',     // U+0009 TAB
	'\n',     // U+000A LF
	'.',      // U+002E FULL STOP
	'!',      // U+0021 EXCLAMATION MARK
	'?',      // U+003F QUESTION MARK
	'\'',     // U+0027 APOSTROPHE
	'"',      // U+0022 QUOTATION MARK
	'‘', // LEFT SINGLE QUOTATION MARK
	'’', // RIGHT SINGLE QUOTATION MARK
	'＇', // FULLWIDTH APOSTROPHE
}

// lowerCaser performs locale-free Unicode simple lowercasing. language.Und
// (undetermined) keeps the mapping independent of any specific locale's
// special-casing rules, matching the reference's locale-free behavior.
var lowerCaser = cases.Lower(language.Und)

// Trim lowercases s and removes every trimmed rune, without otherwise
// touching the string (no Unicode normalization).
func Trim(s string) string {
	lowered := lowerCaser.String(s)
	return strings.Map(func(r rune) rune {
		for _, t := range trimmedRunes {
			if r == t {
				return -1
			}
		}
		return r
	}, lowered)
}

// Canonicalize reduces a free-form answer to the bytes used as HKDF input
// keying material. An answer that canonicalizes to the empty string is
// rejected: it carries no entropy to derive a key from.
func Canonicalize(answer string) ([]byte, error) {
	trimmed := Trim(answer)
	if trimmed == "" {
		return nil, svqerr.EmptyAnswer()
	}
	return []byte(trimmed), nil
}
