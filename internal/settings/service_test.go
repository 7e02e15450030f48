// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package settings_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naildesignsart/naildesigns-art/internal/platform/apperr"
	"github.com/naildesignsart/naildesigns-art/internal/settings"
)

type fakeStore struct {
	documents map[string]json.RawMessage
	getErr    error
	setErr    error
}

func (f *fakeStore) Get(_ context.Context, key string) (json.RawMessage, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	value, ok := f.documents[key]
	if !ok {
		return nil, apperr.NotFound("setting not found")
	}
	return value, nil
}

func (f *fakeStore) Set(_ context.Context, key string, value json.RawMessage) error {
	if f.setErr != nil {
		return f.setErr
	}
	if f.documents == nil {
		f.documents = make(map[string]json.RawMessage)
	}
	f.documents[key] = value
	return nil
}

func newTestService(store *fakeStore) *settings.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return settings.NewService(store, logger)
}

/*
TestService_Ads_AbsentDocumentYieldsDefaults verifies that a never-written
document reads back as the compiled-in defaults.
*/
func TestService_Ads_AbsentDocumentYieldsDefaults(t *testing.T) {
	service := newTestService(&fakeStore{})

	ads := service.Ads(context.Background())

	assert.Equal(t, settings.DefaultAds(), ads)
	assert.Equal(t, 4, ads.GridStartAfter)
	assert.Equal(t, 6, ads.GridInterval)
	assert.Equal(t, 8, ads.GridMaxPerPage)
}

/*
TestService_Ads_MergeOverDefaults verifies the shallow merge: persisted
fields win, absent fields keep their default.
*/
func TestService_Ads_MergeOverDefaults(t *testing.T) {
	// Document written by a build that only knew about two fields.
	store := &fakeStore{documents: map[string]json.RawMessage{
		"ads": json.RawMessage(`{"publisherId":"ca-pub-1234567890123456","gridStartAfter":2}`),
	}}
	service := newTestService(store)

	ads := service.Ads(context.Background())

	// 1. Persisted fields win
	assert.Equal(t, "ca-pub-1234567890123456", ads.PublisherID)
	assert.Equal(t, 2, ads.GridStartAfter)

	// 2. Absent fields keep their default
	assert.Equal(t, 6, ads.GridInterval)
	assert.Equal(t, 8, ads.GridMaxPerPage)
	assert.True(t, ads.ShowAds)
}

/*
TestService_Ads_BackendFailureYieldsDefaults verifies graceful degradation
when the store is down.
*/
func TestService_Ads_BackendFailureYieldsDefaults(t *testing.T) {
	store := &fakeStore{getErr: errors.New("connection refused")}
	service := newTestService(store)

	ads := service.Ads(context.Background())

	assert.Equal(t, settings.DefaultAds(), ads)
}

/*
TestService_SaveAds_OverwritesWholesale verifies that save persists the full
document and that a partial payload erases unspecified fields in storage
while reads re-fill them from defaults.
*/
func TestService_SaveAds_OverwritesWholesale(t *testing.T) {
	store := &fakeStore{}
	service := newTestService(store)

	ads := settings.DefaultAds()
	ads.ShowAds = false
	ads.GridInterval = 3

	err := service.SaveAds(context.Background(), ads)
	require.NoError(t, err)

	reread := service.Ads(context.Background())
	assert.False(t, reread.ShowAds)
	assert.Equal(t, 3, reread.GridInterval)
	assert.Equal(t, ads.PublisherID, reread.PublisherID)
}

/*
TestService_Site_MergeOverDefaults verifies the same merge behavior for the
site identity document.
*/
func TestService_Site_MergeOverDefaults(t *testing.T) {
	store := &fakeStore{documents: map[string]json.RawMessage{
		"global": json.RawMessage(`{"siteName":"My Gallery"}`),
	}}
	service := newTestService(store)

	site := service.Site(context.Background())

	assert.Equal(t, "My Gallery", site.SiteName)
	assert.Equal(t, "ND.art", site.LogoText)
	assert.Equal(t, "#", site.Socials.Pinterest)
}

/*
TestService_Site_NestedObjectsMergeFieldByField pins the recursion of the
read merge into nested objects: a persisted nested key wins, a sibling the
document omits keeps its default rather than being zeroed.
*/
func TestService_Site_NestedObjectsMergeFieldByField(t *testing.T) {
	store := &fakeStore{documents: map[string]json.RawMessage{
		"global": json.RawMessage(`{"socials":{"instagram":"https://instagram.com/naildesigns"}}`),
	}}
	service := newTestService(store)

	site := service.Site(context.Background())

	// 1. Persisted nested key wins
	assert.Equal(t, "https://instagram.com/naildesigns", site.Socials.Instagram)

	// 2. The omitted sibling keeps its default, not the zero value
	assert.Equal(t, "#", site.Socials.Pinterest)
}

/*
TestService_Ads_CorruptDocumentYieldsDefaults verifies that an unparsable
document degrades to defaults instead of failing the read.
*/
func TestService_Ads_CorruptDocumentYieldsDefaults(t *testing.T) {
	store := &fakeStore{documents: map[string]json.RawMessage{
		"ads": json.RawMessage(`{not json`),
	}}
	service := newTestService(store)

	ads := service.Ads(context.Background())

	assert.Equal(t, settings.DefaultAds(), ads)
}
