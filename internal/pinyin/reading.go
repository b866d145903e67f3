// Package pinyin annotates grid characters with tone-marked readings.
package pinyin

import (
	"strings"
	"unicode"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// Annotator converts Han characters to pinyin.
type Annotator struct {
	args gopinyin.Args
}

// NewAnnotator creates an annotator that returns one tone-marked reading
// per character (e.g., "yī").
func NewAnnotator() *Annotator {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone
	args.Heteronym = false
	return &Annotator{args: args}
}

// Reading returns the first reading of a single character, or "" when the
// character is not Han or has no known reading.
func (a *Annotator) Reading(char string) string {
	r := []rune(char)
	if len(r) != 1 || !unicode.Is(unicode.Han, r[0]) {
		return ""
	}

	result := gopinyin.Pinyin(char, a.args)
	if len(result) == 0 || len(result[0]) == 0 {
		return ""
	}
	return result[0][0]
}

// Readings returns one reading per character of phrase, in order.
func (a *Annotator) Readings(phrase string) []string {
	chars := strings.Split(phrase, "")
	readings := make([]string, len(chars))
	for i, c := range chars {
		readings[i] = a.Reading(c)
	}
	return readings
}

// Phrase returns the readings of phrase joined by spaces. Characters without
// a reading are kept as-is.
func (a *Annotator) Phrase(phrase string) string {
	chars := strings.Split(phrase, "")
	parts := a.Readings(phrase)
	for i, reading := range parts {
		if reading == "" {
			parts[i] = chars[i]
		}
	}
	return strings.Join(parts, " ")
}
