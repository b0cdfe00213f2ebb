package domain

import (
	"regexp"
	"strconv"
	"strings"
)

var digitRunPattern = regexp.MustCompile(`\d+`)

// Mall floors top out well below twenty; anything larger falls back to the
// bare digits.
var cardinalWords = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen", "twenty",
}

var ordinalWords = []string{
	"zeroth", "first", "second", "third", "fourth", "fifth", "sixth",
	"seventh", "eighth", "ninth", "tenth", "eleventh", "twelfth",
	"thirteenth", "fourteenth", "fifteenth", "sixteenth", "seventeenth",
	"eighteenth", "nineteenth", "twentieth",
}

// CardinalWord renders n as a spoken cardinal numeral ("1" → "one").
func CardinalWord(n int) string {
	if n >= 0 && n < len(cardinalWords) {
		return cardinalWords[n]
	}
	return strconv.Itoa(n)
}

// OrdinalWord renders n as a spoken ordinal numeral ("1" → "first").
func OrdinalWord(n int) string {
	if n >= 0 && n < len(ordinalWords) {
		return ordinalWords[n]
	}
	return strconv.Itoa(n)
}

// FloorNumber extracts the first integer from a location description.
// Returns false when the location carries no numeral at all.
func FloorNumber(locationRaw string) (int, bool) {
	digits := digitRunPattern.FindString(locationRaw)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// MatchFloor keeps the candidates whose floor number, spoken either as a
// cardinal ("one") or an ordinal ("first") numeral, appears in the user's
// floor phrase. Candidates without a numeral in their location never match.
// An empty result only means nothing matched; callers decide the fallback,
// typically presenting every candidate.
func MatchFloor(userFloorPhrase string, candidates []Store) []Store {
	phrase := strings.ToLower(userFloorPhrase)
	if strings.TrimSpace(phrase) == "" {
		return nil
	}

	matched := make([]Store, 0, len(candidates))
	for _, store := range candidates {
		floor, ok := FloorNumber(store.Location)
		if !ok {
			continue
		}
		if strings.Contains(phrase, CardinalWord(floor)) || strings.Contains(phrase, OrdinalWord(floor)) {
			matched = append(matched, store)
		}
	}
	return matched
}

// SpeakableLocation rewrites every digit run in a location description as a
// cardinal numeral word so the host platform can pass it straight to
// text-to-speech: "Street Level 1" → "Street Level one".
func SpeakableLocation(locationRaw string) string {
	return digitRunPattern.ReplaceAllStringFunc(locationRaw, func(digits string) string {
		n, err := strconv.Atoi(digits)
		if err != nil {
			return digits
		}
		return CardinalWord(n)
	})
}
