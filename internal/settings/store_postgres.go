// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package settings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/naildesignsart/naildesigns-art/internal/platform/database/schema"
	"github.com/naildesignsart/naildesigns-art/internal/platform/dberr"
)

// PostgresStore persists settings documents as single JSONB rows keyed by
// document name.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (store *PostgresStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.SystemSetting.Value, schema.SystemSetting.Table, schema.SystemSetting.Key,
	)

	var value json.RawMessage
	if err := store.db.QueryRow(ctx, query, key).Scan(&value); err != nil {
		return nil, dberr.Wrap(err, "get_setting")
	}
	return value, nil
}

func (store *PostgresStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, NOW())
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = NOW()
	`,
		schema.SystemSetting.Table,
		schema.SystemSetting.Key, schema.SystemSetting.Value, schema.SystemSetting.UpdatedAt,
		schema.SystemSetting.Key,
		schema.SystemSetting.Value, schema.SystemSetting.Value,
		schema.SystemSetting.UpdatedAt,
	)

	if _, err := store.db.Exec(ctx, query, key, value); err != nil {
		return dberr.Wrap(err, "set_setting")
	}
	return nil
}
