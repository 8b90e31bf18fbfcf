package message

import (
	"strconv"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// Pluralizer picks the singular or plural form of a unit for a count.
type Pluralizer struct {
	singular string
	plural   string
}

var (
	Characters = NewPluralizer("character", "characters")
	Elements   = NewPluralizer("element", "elements")
	Entries    = NewPluralizer("entry", "entries")
)

func NewPluralizer(singular, plural string) Pluralizer {
	return Pluralizer{singular: singular, plural: plural}
}

// Noun returns the form of the unit matching count under English cardinal rules.
func (p Pluralizer) Noun(count int) string {
	if count < 0 {
		count = -count
	}
	if plural.Cardinal.MatchPlural(language.English, count, 0, 0, 0, 0) == plural.One {
		return p.singular
	}
	return p.plural
}

// Format renders count followed by the matching noun, e.g. "1 character".
func (p Pluralizer) Format(count int) string {
	return strconv.Itoa(count) + " " + p.Noun(count)
}
