// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package category

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

func (repository *PostgresRepository) ListCategories(ctx context.Context) ([]*Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.ContentCategory.ID, schema.ContentCategory.Name, schema.ContentCategory.Slug,
		schema.ContentCategory.Description, schema.ContentCategory.IconColor,
		schema.ContentCategory.SEOTitle, schema.ContentCategory.SEODescription,
		schema.ContentCategory.Table, schema.ContentCategory.Name,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		c := &Category{}
		err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IconColor, &c.SEOTitle, &c.SEODescription)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_categories")
	}
	return categories, nil
}

func (repository *PostgresRepository) FindBySlug(ctx context.Context, slug string) ([]*Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.ContentCategory.ID, schema.ContentCategory.Name, schema.ContentCategory.Slug,
		schema.ContentCategory.Description, schema.ContentCategory.IconColor,
		schema.ContentCategory.SEOTitle, schema.ContentCategory.SEODescription,
		schema.ContentCategory.Table, schema.ContentCategory.Slug, schema.ContentCategory.ID,
	)

	rows, err := repository.db.Query(ctx, query, slug)
	if err != nil {
		return nil, dberr.Wrap(err, "find_categories_by_slug")
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		c := &Category{}
		err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IconColor, &c.SEOTitle, &c.SEODescription)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_categories")
	}
	return categories, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, category *Category) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`,
		schema.ContentCategory.Table,
		schema.ContentCategory.Name, schema.ContentCategory.Slug,
		schema.ContentCategory.Description, schema.ContentCategory.IconColor,
		schema.ContentCategory.SEOTitle, schema.ContentCategory.SEODescription,
		schema.ContentCategory.ID,
	)

	err := repository.db.QueryRow(ctx, query,
		category.Name, category.Slug,
		category.Description, category.IconColor,
		category.SEOTitle, category.SEODescription,
	).Scan(&category.ID)
	if err != nil {
		return dberr.Wrap(err, "create_category")
	}
	return nil
}

func (repository *PostgresRepository) UpdateByID(ctx context.Context, category *Category) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7
		WHERE %s = $1
	`,
		schema.ContentCategory.Table,
		schema.ContentCategory.Name, schema.ContentCategory.Slug,
		schema.ContentCategory.Description, schema.ContentCategory.IconColor,
		schema.ContentCategory.SEOTitle, schema.ContentCategory.SEODescription,
		schema.ContentCategory.ID,
	)

	tag, err := repository.db.Exec(ctx, query,
		category.ID,
		category.Name, category.Slug,
		category.Description, category.IconColor,
		category.SEOTitle, category.SEODescription,
	)
	if err != nil {
		return dberr.Wrap(err, "update_category")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteBySlug(ctx context.Context, slug string) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentCategory.Table, schema.ContentCategory.Slug,
	)

	tag, err := repository.db.Exec(ctx, query, slug)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_category")
	}
	return tag.RowsAffected(), nil
}
