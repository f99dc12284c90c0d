// Package moderation masks configured words in room broadcasts. Matching is
// Aho-Corasick over a normalized view of the text, so spacing, punctuation
// and common leet substitutions do not defeat the word list.
package moderation

import (
	"unicode"

	"github.com/abadojack/whatlanggo"
	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	matcher  *goahocorasick.Machine
	maskChar rune
}

// NewModerator builds the automaton from the word list. An empty list yields
// a disabled moderator that passes text through untouched.
func NewModerator(words []string, maskChar rune) (Moderator, error) {
	if len(words) == 0 {
		return Moderator{maskChar: maskChar}, nil
	}
	patterns := make([][]rune, 0, len(words))
	for _, word := range words {
		normalized, _ := normalize([]rune(word))
		if len(normalized) > 0 {
			patterns = append(patterns, normalized)
		}
	}
	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return Moderator{}, err
	}
	return Moderator{matcher: machine, maskChar: maskChar}, nil
}

func (m Moderator) Enabled() bool {
	return m.matcher != nil
}

// Sanitize masks every listed word in the text, preserving length and
// spacing, and reports whether anything was masked.
func (m Moderator) Sanitize(text string) (string, bool) {
	if !m.Enabled() {
		return text, false
	}
	original := []rune(text)
	normalized, origIdx := normalize(original)
	if len(normalized) == 0 {
		return text, false
	}

	terms := m.matcher.MultiPatternSearch(normalized, false)
	if len(terms) == 0 {
		return text, false
	}

	for _, term := range terms {
		start := term.Pos
		end := start + len(term.Word)
		if start < 0 || end > len(origIdx) {
			continue
		}
		// Mask the original span covered by the normalized match.
		for i := origIdx[start]; i <= origIdx[end-1]; i++ {
			original[i] = m.maskChar
		}
	}
	return string(original), true
}

// Language returns the ISO 639-1 code of the text's detected language, or ""
// when detection finds nothing usable. Used for the broadcast log line only.
func Language(text string) string {
	info := whatlanggo.Detect(text)
	return info.Lang.Iso6391()
}

// normalize lowercases, undoes common leet substitutions and strips spacing,
// punctuation and symbols, keeping a map from each kept rune back to its
// original index.
func normalize(input []rune) ([]rune, []int) {
	kept := make([]rune, 0, len(input))
	origIdx := make([]int, 0, len(input))
	for i, r := range input {
		r = deleet(r)
		if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		kept = append(kept, unicode.ToLower(r))
		origIdx = append(origIdx, i)
	}
	return kept, origIdx
}

func deleet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3':
		return 'e'
	case '1', '!':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}
