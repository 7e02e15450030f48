// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package ads_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naildesignsart/naildesigns-art/internal/ads"
	"github.com/naildesignsart/naildesigns-art/internal/settings"
)

func enabledHeader() settings.AdsSettings {
	adsSettings := settings.DefaultAds()
	adsSettings.ShowAds = true
	adsSettings.HeaderEnabled = true
	adsSettings.HeaderSlotID = "header-123"
	adsSettings.HeaderCode = ""
	return adsSettings
}

/*
TestResolve_GlobalToggleOff verifies that no slot resolves when the global
toggle is off, even with every slot enabled.
*/
func TestResolve_GlobalToggleOff(t *testing.T) {
	resolver := ads.NewResolver(true)
	adsSettings := settings.DefaultAds()
	adsSettings.ShowAds = false

	for _, slot := range ads.Slots() {
		assert.Nil(t, resolver.Resolve(adsSettings, slot, 1024), "slot %s", slot)
	}
}

/*
TestResolve_SlotDisabled verifies the per-slot enabled flag.
*/
func TestResolve_SlotDisabled(t *testing.T) {
	resolver := ads.NewResolver(true)
	adsSettings := enabledHeader()
	adsSettings.HeaderEnabled = false

	assert.Nil(t, resolver.Resolve(adsSettings, ads.SlotHeader, 1024))
}

/*
TestResolve_RawMarkupWins verifies the preference order: a raw override
longer than the placeholder threshold beats a configured slot id.
*/
func TestResolve_RawMarkupWins(t *testing.T) {
	resolver := ads.NewResolver(true)
	adsSettings := enabledHeader()
	adsSettings.HeaderCode = `<div class="house-ad">Visit our store</div>`

	placement := resolver.Resolve(adsSettings, ads.SlotHeader, 1024)

	require.NotNil(t, placement)
	assert.Equal(t, ads.PlacementRaw, placement.Kind)
	assert.Equal(t, adsSettings.HeaderCode, placement.Markup)
}

/*
TestResolve_NetworkTagFallback verifies that absent raw markup the standard
network tag referencing the slot id is produced.
*/
func TestResolve_NetworkTagFallback(t *testing.T) {
	resolver := ads.NewResolver(true)
	adsSettings := enabledHeader()

	placement := resolver.Resolve(adsSettings, ads.SlotHeader, 1024)

	require.NotNil(t, placement)
	assert.Equal(t, ads.PlacementNetwork, placement.Kind)
	assert.Equal(t, "header-123", placement.SlotID)
	assert.Equal(t, adsSettings.PublisherID, placement.PublisherID)
}

/*
TestResolve_ShortRawCodeIgnored verifies that a raw override at or below
the placeholder threshold is treated as absent.
*/
func TestResolve_ShortRawCodeIgnored(t *testing.T) {
	resolver := ads.NewResolver(true)
	adsSettings := enabledHeader()
	adsSettings.HeaderCode = "0123456789" // exactly the threshold

	placement := resolver.Resolve(adsSettings, ads.SlotHeader, 1024)

	require.NotNil(t, placement)
	assert.Equal(t, ads.PlacementNetwork, placement.Kind)
}

/*
TestResolve_GridViewportGating verifies the grid slot's mobile/desktop
gating around the 768px breakpoint.
*/
func TestResolve_GridViewportGating(t *testing.T) {
	resolver := ads.NewResolver(true)

	testCases := []struct {
		name      string
		onMobile  bool
		onDesktop bool
		width     int
		want      bool
	}{
		{"mobile allowed", true, false, 375, true},
		{"mobile blocked", false, true, 375, false},
		{"desktop allowed", false, true, 1440, true},
		{"desktop blocked", true, false, 1440, false},
		{"threshold counts as desktop", true, false, 768, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			adsSettings := settings.DefaultAds()
			adsSettings.GridShowOnMobile = tc.onMobile
			adsSettings.GridShowOnDesktop = tc.onDesktop

			placement := resolver.Resolve(adsSettings, ads.SlotGrid, tc.width)
			if tc.want {
				assert.NotNil(t, placement)
			} else {
				assert.Nil(t, placement)
			}
		})
	}
}

/*
TestResolve_SanitizesUntrustedMarkup verifies that scripts are stripped
from raw overrides unless the deployment trusts them explicitly.
*/
func TestResolve_SanitizesUntrustedMarkup(t *testing.T) {
	adsSettings := enabledHeader()
	adsSettings.HeaderCode = `<div>ok</div><script>alert("x")</script>`

	// 1. Untrusted: script goes, safe markup stays
	placement := ads.NewResolver(false).Resolve(adsSettings, ads.SlotHeader, 1024)
	require.NotNil(t, placement)
	assert.NotContains(t, placement.Markup, "<script>")
	assert.Contains(t, placement.Markup, "<div>ok</div>")

	// 2. Trusted: verbatim passthrough
	placement = ads.NewResolver(true).Resolve(adsSettings, ads.SlotHeader, 1024)
	require.NotNil(t, placement)
	assert.Equal(t, adsSettings.HeaderCode, placement.Markup)
}

/*
TestConfigFor_PostSlots verifies the structured projection of the in-post
slots, which carry no network slot id of their own.
*/
func TestConfigFor_PostSlots(t *testing.T) {
	adsSettings := settings.DefaultAds()
	adsSettings.PostAfterTitleEnabled = false
	adsSettings.PostAfterTitleCode = "custom title ad markup"

	config := ads.ConfigFor(adsSettings, ads.SlotPostTitle)

	assert.False(t, config.Enabled)
	assert.Equal(t, "custom title ad markup", config.RawCode)
	assert.Empty(t, config.SlotID)
}
