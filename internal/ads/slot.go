// Copyright (c) 2026 NailDesigns.art. All rights reserved.

/*
Package ads decides where advertisements appear.

It is pure computation over the ad configuration document: interleaving ad
markers into the feed, and resolving what each fixed placement slot should
render. No I/O happens here.
*/
package ads

import "github.com/naildesignsart/naildesigns-art/internal/settings"

// Slot enumerates the fixed placement positions on the site.
type Slot string

const (
	SlotHeader      Slot = "header"
	SlotFooter      Slot = "footer"
	SlotSidebar     Slot = "sidebar"
	SlotGrid        Slot = "grid"
	SlotPostTitle   Slot = "postTitle"
	SlotPostImage   Slot = "postImage"
	SlotPostBetween Slot = "postBetween"
	SlotPostContent Slot = "postContent"
)

// Slots lists every placement position in render order.
func Slots() []Slot {
	return []Slot{
		SlotHeader, SlotFooter, SlotSidebar, SlotGrid,
		SlotPostTitle, SlotPostImage, SlotPostBetween, SlotPostContent,
	}
}

// SlotConfig is the structured per-slot view over the flat settings
// document. Not every slot carries a network slot id; in-post slots are
// raw-markup-or-nothing plus the shared publisher tag.
type SlotConfig struct {
	Enabled bool
	SlotID  string
	RawCode string
}

// ConfigFor projects one slot's fields out of the ad configuration.
func ConfigFor(adsSettings settings.AdsSettings, slot Slot) SlotConfig {
	switch slot {
	case SlotHeader:
		return SlotConfig{
			Enabled: adsSettings.HeaderEnabled,
			SlotID:  adsSettings.HeaderSlotID,
			RawCode: adsSettings.HeaderCode,
		}
	case SlotFooter:
		return SlotConfig{
			Enabled: adsSettings.FooterEnabled,
			SlotID:  adsSettings.FooterSlotID,
			RawCode: adsSettings.FooterCode,
		}
	case SlotSidebar:
		return SlotConfig{
			Enabled: adsSettings.SidebarEnabled,
			SlotID:  adsSettings.SidebarSlotID,
			RawCode: adsSettings.SidebarCode,
		}
	case SlotGrid:
		// The grid slot has no per-slot enabled flag: interleaving density
		// and viewport gating govern it instead.
		return SlotConfig{
			Enabled: true,
			SlotID:  adsSettings.GridSlotID,
			RawCode: adsSettings.GridCode,
		}
	case SlotPostTitle:
		return SlotConfig{
			Enabled: adsSettings.PostAfterTitleEnabled,
			RawCode: adsSettings.PostAfterTitleCode,
		}
	case SlotPostImage:
		return SlotConfig{
			Enabled: adsSettings.PostAfterFirstImageEnabled,
			RawCode: adsSettings.PostAfterFirstImageCode,
		}
	case SlotPostBetween:
		return SlotConfig{
			Enabled: adsSettings.PostBetweenImagesEnabled,
			RawCode: adsSettings.PostBetweenImagesCode,
		}
	case SlotPostContent:
		return SlotConfig{
			Enabled: adsSettings.PostAfterContentEnabled,
			RawCode: adsSettings.PostAfterContentCode,
		}
	}
	return SlotConfig{}
}
