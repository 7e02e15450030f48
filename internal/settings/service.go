// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package settings

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/naildesignsart/naildesigns-art/internal/platform/apperr"
	"github.com/naildesignsart/naildesigns-art/internal/platform/constants"
)

// Service exposes typed access to the settings documents.
type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Ads returns the ad configuration: the persisted document merged field by
// field over compiled-in defaults. An absent document or a backend failure
// yields the defaults unchanged; the site keeps rendering.
func (service *Service) Ads(ctx context.Context) AdsSettings {
	merged := DefaultAds()
	service.loadInto(ctx, constants.SettingsKeyAds, &merged)
	return merged
}

// Site returns the site identity document, merged over defaults the same
// way as [Service.Ads].
func (service *Service) Site(ctx context.Context) SiteSettings {
	merged := DefaultSite()
	service.loadInto(ctx, constants.SettingsKeySite, &merged)
	return merged
}

// SaveAds overwrites the ad configuration wholesale. Fields absent from the
// payload take their zero value in storage; merge-over-defaults happens on
// read, not on write.
func (service *Service) SaveAds(ctx context.Context, ads AdsSettings) error {
	return service.save(ctx, constants.SettingsKeyAds, ads)
}

// SaveSite overwrites the site identity document wholesale.
func (service *Service) SaveSite(ctx context.Context, site SiteSettings) error {
	return service.save(ctx, constants.SettingsKeySite, site)
}

// loadInto unmarshals the persisted document onto target, which arrives
// pre-filled with defaults. Unmarshal only touches fields present in the
// document, so persisted top-level keys win over defaults. Note that this
// merges nested objects field by field rather than replacing them; the
// wholesale save path always writes full documents, so both read the same.
func (service *Service) loadInto(ctx context.Context, key string, target any) {
	raw, err := service.store.Get(ctx, key)
	if err != nil {
		if !apperr.IsNotFound(err) {
			service.logger.Error("settings_load_failed",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
		return
	}

	if err := json.Unmarshal(raw, target); err != nil {
		service.logger.Error("settings_document_corrupt",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

func (service *Service) save(ctx context.Context, key string, document any) error {
	raw, err := json.Marshal(document)
	if err != nil {
		return apperr.Internal(err)
	}

	if err := service.store.Set(ctx, key, raw); err != nil {
		return err
	}

	service.logger.Info("settings_saved", slog.String("key", key))
	return nil
}
