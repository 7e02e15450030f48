// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naildesignsart/naildesigns-art/pkg/slug"
)

/*
TestFrom checks the slug transformation pipeline against known titles.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_title", "Almond Dream", "almond-dream"},
		{"punctuation_stripped", "French Tip #1!", "french-tip-1"},
		{"already_slug", "french-tip", "french-tip"},
		{"uppercase", "GLITTER NAILS", "glitter-nails"},
		{"accents_folded", "Soirée Élégante", "soiree-elegante"},
		{"multiple_spaces", "Nude  Nails", "nude-nails"},
		{"leading_trailing", " Holiday Look ", "holiday-look"},
		{"empty", "", ""},
		{"only_symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

/*
TestFrom_Idempotent verifies that slugging a slug is a no-op and that the
function is deterministic across repeated calls.
*/
func TestFrom_Idempotent(t *testing.T) {
	titles := []string{"French Tip #1!", "Almond Dream", "Short & Sweet"}

	for _, title := range titles {
		first := slug.From(title)
		assert.Equal(t, first, slug.From(title), "must be deterministic")
		assert.Equal(t, first, slug.From(first), "must be idempotent")
	}
}
