// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package settings

import (
	"context"
	"encoding/json"
)

// Store is the persistence contract for settings documents. The service
// treats documents as opaque JSON; the merge-over-defaults logic lives
// above this interface so every backend behaves identically.
type Store interface {
	// Get returns the raw persisted document, or a not-found error when the
	// key has never been written.
	Get(ctx context.Context, key string) (json.RawMessage, error)

	// Set overwrites the document wholesale.
	Set(ctx context.Context, key string, value json.RawMessage) error
}
