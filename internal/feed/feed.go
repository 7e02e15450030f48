// Copyright (c) 2026 NailDesigns.art. All rights reserved.

/*
Package feed renders the public gallery feed: a page of published designs
with ad markers spliced in per the configured density.
*/
package feed

import (
	"context"
	"log/slog"

	"github.com/naildesignsart/naildesigns-art/internal/ads"
	"github.com/naildesignsart/naildesigns-art/internal/core/design"
	"github.com/naildesignsart/naildesigns-art/internal/settings"
)

// EntryKind discriminates feed entries on the wire.
type EntryKind string

const (
	EntryDesign EntryKind = "design"
	EntryAd     EntryKind = "ad"
)

// Entry is one element of the rendered feed. Design entries carry the full
// design so the client can reserve aspect-ratio boxes from width/height
// before images load. Ad entries carry the marker id and the resolved grid
// placement.
type Entry struct {
	Kind      EntryKind      `json:"kind"`
	Design    *design.Design `json:"design,omitempty"`
	AdID      string         `json:"adId,omitempty"`
	Placement *ads.Placement `json:"placement,omitempty"`
}

// Service assembles feed pages.
type Service struct {
	designs  *design.Service
	settings *settings.Service
	resolver *ads.Resolver
	logger   *slog.Logger
}

func NewService(designs *design.Service, settingsService *settings.Service, resolver *ads.Resolver, logger *slog.Logger) *Service {
	return &Service{
		designs:  designs,
		settings: settingsService,
		resolver: resolver,
		logger:   logger,
	}
}

// Page renders one feed page: published designs matching the optional
// category, interleaved with ad markers. Ad entries carry the grid
// placement resolved for the given viewport width; when the grid slot
// resolves to nothing (viewport gating, empty slot config) markers are
// dropped entirely so no entry asks the client to render a blank.
//
// The rendered count refers to design entries only; markers do not consume
// page capacity.
func (service *Service) Page(ctx context.Context, category string, limit, offset, viewportWidth int) ([]Entry, int) {
	designs := service.designs.ListDesigns(ctx, design.Filter{
		Category: category,
		Status:   design.StatusPublished,
	}, limit, offset)

	adsSettings := service.settings.Ads(ctx)
	placement := service.resolver.Resolve(adsSettings, ads.SlotGrid, viewportWidth)

	gridConfig := ads.GridConfigFrom(adsSettings)
	if placement == nil {
		gridConfig.ShowAds = false
	}

	interleaved := ads.Interleave(designs, gridConfig)

	entries := make([]Entry, 0, len(interleaved))
	for _, item := range interleaved {
		if item.Ad != nil {
			entries = append(entries, Entry{
				Kind:      EntryAd,
				AdID:      item.Ad.ID,
				Placement: placement,
			})
			continue
		}
		entries = append(entries, Entry{
			Kind:   EntryDesign,
			Design: item.Content,
		})
	}
	return entries, len(designs)
}
