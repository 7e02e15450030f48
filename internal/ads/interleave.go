// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package ads

import (
	"fmt"

	"github.com/naildesignsart/naildesigns-art/internal/settings"
)

// GridConfig is the density configuration driving [Interleave].
type GridConfig struct {
	ShowAds    bool
	StartAfter int
	Interval   int
	MaxPerPage int
}

// GridConfigFrom projects the interleaving fields out of the ad
// configuration document.
func GridConfigFrom(adsSettings settings.AdsSettings) GridConfig {
	return GridConfig{
		ShowAds:    adsSettings.ShowAds,
		StartAfter: adsSettings.GridStartAfter,
		Interval:   adsSettings.GridInterval,
		MaxPerPage: adsSettings.GridMaxPerPage,
	}
}

// Marker is a synthetic sequence element meaning "render an advertisement
// here", distinct from content.
type Marker struct {
	ID string `json:"id"`
}

// Item is one element of an interleaved sequence: either a content value
// or an ad marker, never both.
type Item[T any] struct {
	Content T
	Ad      *Marker
}

// Interleave splices ad markers into a content sequence.
//
// Single pass with a 1-based position counter. After each content item:
// stop once MaxPerPage markers are placed; place the first marker when
// position == StartAfter; past that, place one whenever
// (position - StartAfter) is a whole number of Intervals. Marker ids are
// grid-ad-{n} counting from zero.
//
// Deterministic with no randomization: identical input and config always
// produce identical output. When ShowAds is off the input comes back
// unchanged, marker-free.
func Interleave[T any](items []T, config GridConfig) []Item[T] {
	result := make([]Item[T], 0, len(items))

	if !config.ShowAds {
		for _, item := range items {
			result = append(result, Item[T]{Content: item})
		}
		return result
	}

	adsInserted := 0
	for index, item := range items {
		result = append(result, Item[T]{Content: item})

		if adsInserted >= config.MaxPerPage {
			continue
		}

		position := index + 1
		if shouldInsertAfter(position, config) {
			result = append(result, Item[T]{
				Ad: &Marker{ID: fmt.Sprintf("grid-ad-%d", adsInserted)},
			})
			adsInserted++
		}
	}
	return result
}

func shouldInsertAfter(position int, config GridConfig) bool {
	if position == config.StartAfter {
		return true
	}
	if position > config.StartAfter && config.Interval > 0 {
		return (position-config.StartAfter)%config.Interval == 0
	}
	return false
}
