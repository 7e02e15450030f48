// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package ads

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/naildesignsart/naildesigns-art/internal/settings"
)

// mobileBreakpoint splits viewport classes for grid gating. Widths below
// it count as mobile.
const mobileBreakpoint = 768

// rawCodeMinLen is the threshold above which a raw-markup override is
// considered real content rather than a placeholder comment.
const rawCodeMinLen = 10

// PlacementKind discriminates how a resolved placement renders.
type PlacementKind string

const (
	// PlacementRaw carries operator-supplied markup.
	PlacementRaw PlacementKind = "raw"
	// PlacementNetwork references a standard ad-network tag.
	PlacementNetwork PlacementKind = "network"
)

// Placement is what one slot should render. A nil placement means the slot
// stays empty.
type Placement struct {
	Slot Slot          `json:"slot"`
	Kind PlacementKind `json:"kind"`

	// Markup is set for raw placements.
	Markup string `json:"markup,omitempty"`

	// PublisherID and SlotID reference the network tag for standard
	// placements.
	PublisherID string `json:"publisherId,omitempty"`
	SlotID      string `json:"slotId,omitempty"`
}

// Resolver turns slot configuration into render decisions.
//
// Raw ad markup is operator-supplied HTML. It crosses a trust boundary on
// its way to visitors' browsers, so the resolver sanitizes it unless the
// deployment explicitly opts into trusting it verbatim.
type Resolver struct {
	trustRawMarkup bool
	policy         *bluemonday.Policy
}

// NewResolver builds a Resolver. When trustRawMarkup is false, raw
// overrides pass through a relaxed bluemonday policy that keeps common
// markup but strips scripts and event handlers; ad-network raw snippets
// that need script execution require the explicit trust flag.
func NewResolver(trustRawMarkup bool) *Resolver {
	return &Resolver{
		trustRawMarkup: trustRawMarkup,
		policy:         bluemonday.UGCPolicy(),
	}
}

// Resolve decides what the given slot renders for a viewport of the given
// width.
//
// The chain: global toggle, slot enabled flag, viewport gating (grid slot
// only). Content preference holds for every slot: a raw override longer
// than the placeholder threshold wins; otherwise a network tag is produced
// when a slot id exists; otherwise nothing.
func (resolver *Resolver) Resolve(adsSettings settings.AdsSettings, slot Slot, viewportWidth int) *Placement {
	if !adsSettings.ShowAds {
		return nil
	}

	slotConfig := ConfigFor(adsSettings, slot)
	if !slotConfig.Enabled {
		return nil
	}

	if slot == SlotGrid {
		mobile := viewportWidth < mobileBreakpoint
		if mobile && !adsSettings.GridShowOnMobile {
			return nil
		}
		if !mobile && !adsSettings.GridShowOnDesktop {
			return nil
		}
	}

	if len(slotConfig.RawCode) > rawCodeMinLen {
		markup := slotConfig.RawCode
		if !resolver.trustRawMarkup {
			markup = resolver.policy.Sanitize(markup)
		}
		return &Placement{
			Slot:   slot,
			Kind:   PlacementRaw,
			Markup: markup,
		}
	}

	if slotConfig.SlotID != "" {
		return &Placement{
			Slot:        slot,
			Kind:        PlacementNetwork,
			PublisherID: adsSettings.PublisherID,
			SlotID:      slotConfig.SlotID,
		}
	}
	return nil
}
