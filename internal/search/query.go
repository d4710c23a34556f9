// Package search implements the monster query language.
//
// A query is a name fragment optionally followed by tag filters:
//
//	gn +Humanoid -Beast -Has a face
//
// The leading unmarked run is matched as a substring of the monster name.
// Every "+tag" must be present on the monster and every "-tag" must be
// absent. All comparisons go through textnorm.Normalize.
package search

import (
	"regexp"
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/textnorm"
)

const (
	markerPositive = '+'
	markerNegative = '-'
)

// tokenPattern yields the unmarked leading run and then each run that
// starts with a marker
var tokenPattern = regexp.MustCompile(`^[^+\-]+|[+\-][^+\-]*`)

// Query is a parsed monster search
type Query struct {
	NameSubstring string
	PositiveTags  []string
	NegativeTags  map[string]struct{}
}

// Parse splits text into a Query. It never fails; empty tokens are dropped.
func Parse(text string) Query {
	q := Query{NegativeTags: make(map[string]struct{})}

	for _, token := range tokenPattern.FindAllString(text, -1) {
		switch token[0] {
		case markerPositive:
			if tag := textnorm.Normalize(token[1:]); tag != "" {
				q.PositiveTags = append(q.PositiveTags, tag)
			}
		case markerNegative:
			if tag := textnorm.Normalize(token[1:]); tag != "" {
				q.NegativeTags[tag] = struct{}{}
			}
		default:
			q.NameSubstring = textnorm.Normalize(token)
		}
	}

	return q
}

// IsEmpty reports whether q matches every monster
func (q Query) IsEmpty() bool {
	return q.NameSubstring == "" && len(q.PositiveTags) == 0 && len(q.NegativeTags) == 0
}

// Matches reports whether m satisfies q
func (q Query) Matches(m *dnd5e.Monster) bool {
	if m == nil {
		return false
	}
	if !textnorm.Contains(m.Name(), q.NameSubstring) {
		return false
	}

	tags := make([]string, 0, len(m.Tags()))
	for _, tag := range m.Tags() {
		normalized := textnorm.Normalize(tag)
		if _, excluded := q.NegativeTags[normalized]; excluded {
			return false
		}
		tags = append(tags, normalized)
	}

	for _, want := range q.PositiveTags {
		if !slices.Contains(tags, want) {
			return false
		}
	}
	return true
}

// Filter returns the monsters matching q in input order
func (q Query) Filter(monsters []*dnd5e.Monster) []*dnd5e.Monster {
	out := make([]*dnd5e.Monster, 0, len(monsters))
	for _, m := range monsters {
		if q.Matches(m) {
			out = append(out, m)
		}
	}
	return out
}

// String renders q back into query syntax, negative tags sorted
func (q Query) String() string {
	var b strings.Builder
	b.WriteString(q.NameSubstring)
	for _, tag := range q.PositiveTags {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(markerPositive)
		b.WriteString(tag)
	}
	negative := make([]string, 0, len(q.NegativeTags))
	for tag := range q.NegativeTags {
		negative = append(negative, tag)
	}
	slices.Sort(negative)
	for _, tag := range negative {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(markerNegative)
		b.WriteString(tag)
	}
	return b.String()
}
