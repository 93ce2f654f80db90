package catalog

import (
	"strings"
)

// seriesKeywords maps era-name fragments in a set name to a series
// label. Checked in order; the first hit wins.
var seriesKeywords = []struct {
	Series   string
	Keywords []string
}{
	{"Scarlet & Violet", []string{
		"scarlet", "violet", "paldea", "obsidian", "151", "paradox",
		"temporal", "twilight", "shrouded", "stellar", "surging",
	}},
	{"Sword & Shield", []string{
		"sword", "shield", "crown zenith", "silver tempest",
		"lost origin", "astral",
	}},
	{"Sun & Moon", []string{"sun", "moon"}},
	{"XY", []string{"xy"}},
}

// InferSeries derives a series label from a set name, defaulting to
// "Other".
func InferSeries(setName string) string {
	lower := strings.ToLower(setName)
	for _, entry := range seriesKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				return entry.Series
			}
		}
	}
	return "Other"
}

// setCodes maps set-name fragments to the image-asset codes used by
// images.pokemontcg.io. Known-lossy: names outside this table fall
// back to sv1 artwork.
var setCodes = []struct {
	Fragment string
	Code     string
}{
	{"surging sparks", "sv8"},
	{"stellar crown", "sv7"},
	{"shrouded fable", "sv6pt5"},
	{"twilight masquerade", "sv6"},
	{"temporal forces", "sv5"},
	{"paldean fates", "sv4pt5"},
	{"paradox rift", "sv4"},
	{"151", "sv3pt5"},
	{"obsidian flames", "sv3"},
	{"paldea evolved", "sv2"},
}

// InferSetCode maps a free-text set name to an image-asset code.
func InferSetCode(setName string) string {
	lower := strings.ToLower(setName)
	for _, entry := range setCodes {
		if strings.Contains(lower, entry.Fragment) {
			return entry.Code
		}
	}
	return "sv1"
}

// logoURL builds the image URL for a set code.
func logoURL(code string) string {
	return "https://images.pokemontcg.io/" + code + "/logo.png"
}

func symbolURL(code string) string {
	return "https://images.pokemontcg.io/" + code + "/symbol.png"
}
