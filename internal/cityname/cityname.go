// Package cityname extracts and normalizes the city context from workbook
// filenames like "roadmap_newyork.xlsx".
package cityname

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultFallback is used when no filename token survives the heuristic and
// no configured fallback applies.
const DefaultFallback = "New York"

// corrections maps letters-only lowercase tokens to their proper city names,
// covering the multi-word and accented cities a filename can't spell.
var corrections = map[string]string{
	"newyork":         "New York",
	"sansebastian":    "San Sebastián",
	"lasvegas":        "Las Vegas",
	"saintpetersburg": "Saint Petersburg",
	"hongkong":        "Hong Kong",
	"losangeles":      "Los Angeles",
	"buenosaires":     "Buenos Aires",
	"rio":             "Rio de Janeiro",
	"capetown":        "Cape Town",
	"hochiminh":       "Ho Chi Minh",
}

// stopwords are itinerary-related filename tokens that can never be a city.
var stopwords = map[string]struct{}{
	"activite":   {},
	"activité":   {},
	"activités":  {},
	"activitée":  {},
	"activitées": {},
	"activities": {},
	"planning":   {},
	"plan":       {},
	"plans":      {},
	"roadmap":    {},
	"city":       {},
	"program":    {},
	"programme":  {},
	"itineraire": {},
	"itinéraire": {},
}

// FromFilename extracts a city name from a workbook filename: the base name
// is split on "_" and "-", and the first token longer than 3 characters that
// is not a stopword is cleaned into a display city name. When nothing
// qualifies the fallback is returned.
func FromFilename(filename, fallback string, extra map[string]string) string {
	if strings.TrimSpace(fallback) == "" {
		fallback = DefaultFallback
	}

	base, _, _ := strings.Cut(filename, ".")
	parts := strings.FieldsFunc(base, func(r rune) bool {
		return r == '_' || r == '-'
	})

	for _, part := range parts {
		if utf8.RuneCountInString(part) <= 3 {
			continue
		}
		if _, stop := stopwords[strings.ToLower(part)]; stop {
			continue
		}
		return Clean(part, extra)
	}

	return fallback
}

// Clean normalizes a raw city token: known tokens resolve through the
// correction tables (configured entries first), everything else is
// capitalized word by word.
func Clean(raw string, extra map[string]string) string {
	if strings.TrimSpace(raw) == "" {
		return DefaultFallback
	}

	normalized := lettersOnly(strings.ToLower(raw))
	if corrected, ok := extra[normalized]; ok {
		return corrected
	}
	if corrected, ok := corrections[normalized]; ok {
		return corrected
	}

	return capitalizeWords(raw)
}

func lettersOnly(value string) string {
	var builder strings.Builder
	for _, r := range value {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

func capitalizeWords(raw string) string {
	cleaned := strings.NewReplacer("_", " ", "-", " ").Replace(raw)
	words := strings.Fields(cleaned)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
