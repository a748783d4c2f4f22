// Package textfilter keeps authored world content family-friendly.
// Location descriptions, activity names, and event messages come from
// the in-app editor, so they pass through here before being persisted.
package textfilter

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// replacements maps words we do not want in a road-trip game aimed at
// families to tamer stand-ins.
var replacements = map[string]string{
	"fuck":         "fudge",
	"shit":         "shoot",
	"damn":         "dang",
	"hell":         "heck",
	"ass":          "butt",
	"bitch":        "jerk",
	"bastard":      "jerk",
	"crap":         "crud",
	"piss":         "ticked",
	"asshole":      "jerk",
	"goddamn":      "gosh-dang",
	"bullshit":     "baloney",
	"dumbass":      "dummy",
	"jackass":      "jerk",
	"prick":        "jerk",
	"motherfucker": "mother-trucker",
}

// Filter rewrites disallowed words while preserving their case pattern.
type Filter struct {
	patterns map[string]*regexp.Regexp
}

// New builds a filter with patterns pre-compiled per word.
func New() *Filter {
	f := &Filter{patterns: make(map[string]*regexp.Regexp, len(replacements))}
	for word := range replacements {
		f.patterns[word] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	}
	return f
}

// Clean returns the text with every disallowed word replaced.
func (f *Filter) Clean(text string) string {
	result := text
	for word, pattern := range f.patterns {
		replacement := replacements[word]
		result = pattern.ReplaceAllStringFunc(result, func(match string) string {
			return matchCase(match, replacement)
		})
	}
	return result
}

var titleCaser = cases.Title(language.English)

// matchCase applies the original word's case shape to the replacement:
// all-caps stays all-caps, title case stays title case, anything else
// goes lowercase.
func matchCase(original, replacement string) string {
	switch {
	case original == strings.ToUpper(original):
		return strings.ToUpper(replacement)
	case original == titleCaser.String(strings.ToLower(original)):
		return titleCaser.String(replacement)
	default:
		return strings.ToLower(replacement)
	}
}
