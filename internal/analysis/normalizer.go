package analysis

import (
	"strings"
	"unicode"
)

// NormalizedDocument is the cleaned view of one input document: ordered
// canonical tokens, their frequencies and first positions, the surface form
// each token first appeared as, and the trimmed raw lines (kept for the
// formatting heuristics in the recommender).
type NormalizedDocument struct {
	Tokens    []string
	Freq      map[string]int
	Positions map[string]int
	Display   map[string]string
	Lines     []string
}

// Contains reports whether the document mentions the canonical term at all.
func (d *NormalizedDocument) Contains(term string) bool {
	return d.Freq[term] > 0
}

// Normalize lowercases the raw text, splits it on word boundaries while
// preserving technical punctuation (c++, c#, node.js, ci/cd), removes the
// per-language stop words and collapses synonym variants to their canonical
// form. A document with no tokens left afterwards is a scoring error, never
// an empty vector handed downstream.
func Normalize(raw string, lang Language) (*NormalizedDocument, error) {
	doc := &NormalizedDocument{
		Freq:      make(map[string]int),
		Positions: make(map[string]int),
		Display:   make(map[string]string),
		Lines:     splitLines(raw),
	}

	stop := stopWordsFor(lang)

	var word strings.Builder
	flush := func() {
		if word.Len() == 0 {
			return
		}
		surface := word.String()
		word.Reset()

		canonical := canonicalize(surface)
		if canonical == "" {
			return
		}
		if stop[canonical] {
			return
		}

		if _, seen := doc.Freq[canonical]; !seen {
			doc.Positions[canonical] = len(doc.Tokens)
			doc.Display[canonical] = displayForm(surface)
		}
		doc.Freq[canonical]++
		doc.Tokens = append(doc.Tokens, canonical)
	}

	for _, r := range raw {
		if isWordRune(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	if len(doc.Tokens) == 0 {
		return nil, NewScoringError("document contains no analyzable text", nil)
	}

	return doc, nil
}

// canonicalize trims stray punctuation, lowercases and applies the synonym
// table. Returns "" for tokens too short or purely numeric to be meaningful.
func canonicalize(surface string) string {
	w := strings.ToLower(surface)
	w = strings.Trim(w, "./-")

	if syn, ok := synonyms[w]; ok {
		w = syn
	}

	if len([]rune(w)) < 2 {
		return ""
	}
	if isAllDigits(w) {
		return ""
	}
	return w
}

// displayForm keeps the original casing but drops the stray punctuation the
// canonical form was trimmed of.
func displayForm(surface string) string {
	if trimmed := strings.Trim(surface, "./-"); trimmed != "" {
		return trimmed
	}
	return surface
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		r == '+' || r == '#' || r == '.' || r == '/' || r == '-'
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

func splitLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
