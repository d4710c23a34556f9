package dnd5e_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/dnd5e"
)

func TestNewInformationList(t *testing.T) {
	sep := dnd5e.SeparatorEntry{}
	a := dnd5e.HeaderEntry{Text: "A"}
	b := dnd5e.DescriptionEntry{Text: "B"}
	c := dnd5e.DescriptionEntry{Title: "Pack Tactics", Text: "C"}

	testCases := []struct {
		name  string
		input []dnd5e.InformationEntry
		want  []dnd5e.InformationEntry
	}{
		{
			name:  "collapses and trims separators",
			input: []dnd5e.InformationEntry{sep, a, sep, sep, b, sep},
			want:  []dnd5e.InformationEntry{a, sep, b},
		},
		{
			name:  "only separators",
			input: []dnd5e.InformationEntry{sep, sep, sep},
			want:  []dnd5e.InformationEntry{},
		},
		{
			name:  "empty",
			input: nil,
			want:  []dnd5e.InformationEntry{},
		},
		{
			name:  "no separators untouched",
			input: []dnd5e.InformationEntry{a, b, c},
			want:  []dnd5e.InformationEntry{a, b, c},
		},
		{
			name:  "long runs between entries",
			input: []dnd5e.InformationEntry{a, sep, sep, sep, b, sep, c, sep, sep},
			want:  []dnd5e.InformationEntry{a, sep, b, sep, c},
		},
		{
			name:  "pointer entries stored as values",
			input: []dnd5e.InformationEntry{&a, &sep, &sep, &b},
			want:  []dnd5e.InformationEntry{a, sep, b},
		},
		{
			name:  "nil pointers skipped",
			input: []dnd5e.InformationEntry{(*dnd5e.HeaderEntry)(nil), a, (*dnd5e.SeparatorEntry)(nil), b},
			want:  []dnd5e.InformationEntry{a, b},
		},
		{
			name:  "nil entries skipped",
			input: []dnd5e.InformationEntry{nil, sep, a, nil, sep, b},
			want:  []dnd5e.InformationEntry{a, sep, b},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			list := dnd5e.NewInformationList(tc.input...)
			assert.Equal(t, tc.want, list.Entries())
			assert.Equal(t, len(tc.want), list.Len())

			again := dnd5e.NewInformationList(list.Entries()...)
			assert.Equal(t, list.Entries(), again.Entries())
		})
	}
}

func TestInformationListEntriesIsCopy(t *testing.T) {
	list := dnd5e.NewInformationList(dnd5e.HeaderEntry{Text: "A"})

	entries := list.Entries()
	entries[0] = dnd5e.HeaderEntry{Text: "changed"}

	assert.Equal(t, dnd5e.HeaderEntry{Text: "A"}, list.Entries()[0])
}
