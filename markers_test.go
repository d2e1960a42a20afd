package lictool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlaceholders(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		text string
		want Placeholders
	}{
		{
			name: "mit style",
			text: "Copyright (c) <year> <copyright holders>\n\nPermission is hereby granted...",
			want: Placeholders{Year: true, Owner: true},
		},
		{
			name: "gpl preamble",
			text: "<one line to give the program's name and a brief idea of what it does.>\nCopyright (C) <year> <name of author>",
			want: Placeholders{Year: true, Owner: true, Repo: true},
		},
		{
			name: "email only",
			text: "Contact [EMAIL] with questions.",
			want: Placeholders{Email: true},
		},
		{
			name: "no markers",
			text: "This software is provided as-is, without placeholders of any kind.",
			want: Placeholders{},
		},
		{
			name: "empty text",
			text: "",
			want: Placeholders{},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, DetectPlaceholders(tc.text))
		})
	}
}

func TestDetectPlaceholders_EveryVariantDetected(t *testing.T) {
	t.Parallel()
	for _, m := range YearMarkers {
		assert.True(t, DetectPlaceholders("prefix "+m+" suffix").Year, "marker %q", m)
	}
	for _, m := range OwnerMarkers {
		assert.True(t, DetectPlaceholders("prefix "+m+" suffix").Owner, "marker %q", m)
	}
	for _, m := range RepoMarkers {
		assert.True(t, DetectPlaceholders("prefix "+m+" suffix").Repo, "marker %q", m)
	}
	for _, m := range EmailMarkers {
		assert.True(t, DetectPlaceholders("prefix "+m+" suffix").Email, "marker %q", m)
	}
}

func TestPlaceholders_Any(t *testing.T) {
	t.Parallel()
	assert.False(t, Placeholders{}.Any())
	assert.True(t, Placeholders{Repo: true}.Any())
}
