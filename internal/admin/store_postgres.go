// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package admin

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/naildesignsart/naildesigns-art/internal/platform/database/schema"
	"github.com/naildesignsart/naildesigns-art/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.AdminAccount.ID, schema.AdminAccount.Email,
		schema.AdminAccount.PasswordHash, schema.AdminAccount.CreatedAt,
		schema.AdminAccount.Table, schema.AdminAccount.Email,
	)

	account := &Account{}
	err := repository.db.QueryRow(ctx, query, email).Scan(
		&account.ID, &account.Email, &account.PasswordHash, &account.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_admin_by_email")
	}
	return account, nil
}

func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Account, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.AdminAccount.ID, schema.AdminAccount.Email,
		schema.AdminAccount.PasswordHash, schema.AdminAccount.CreatedAt,
		schema.AdminAccount.Table, schema.AdminAccount.ID,
	)

	account := &Account{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&account.ID, &account.Email, &account.PasswordHash, &account.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_admin_by_id")
	}
	return account, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, account *Account) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)`,
		schema.AdminAccount.Table,
		schema.AdminAccount.ID, schema.AdminAccount.Email,
		schema.AdminAccount.PasswordHash, schema.AdminAccount.CreatedAt,
	)

	_, err := repository.db.Exec(ctx, query,
		account.ID, account.Email, account.PasswordHash, account.CreatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "create_admin")
	}
	return nil
}
