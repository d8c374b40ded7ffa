package domain

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StyleLabel names one of the occasion categories offered for generation.
type StyleLabel string

const (
	StyleCasual   StyleLabel = "Casual"
	StyleBusiness StyleLabel = "Business"
	StyleNightOut StyleLabel = "Night Out"
)

var styles = [...]StyleLabel{StyleCasual, StyleBusiness, StyleNightOut}

// Styles returns the fixed style set in display order.
func Styles() []StyleLabel {
	out := make([]StyleLabel, len(styles))
	copy(out, styles[:])
	return out
}

// Slug returns the lowercase, hyphenated form used in filenames and URLs.
func (s StyleLabel) Slug() string {
	return Slugify(string(s))
}

func (s StyleLabel) String() string {
	return string(s)
}

// ParseStyle accepts either a label ("Night Out") or its slug ("night-out").
func ParseStyle(v string) (StyleLabel, bool) {
	v = strings.TrimSpace(v)
	for _, s := range styles {
		if v == string(s) || v == s.Slug() {
			return s, true
		}
	}
	return "", false
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify lowercases s and replaces every whitespace run with a hyphen.
func Slugify(s string) string {
	return whitespaceRun.ReplaceAllString(cases.Lower(language.Und).String(s), "-")
}
