// Copyright (c) 2026 NailDesigns.art. All rights reserved.

package design

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/naildesignsart/naildesigns-art/internal/platform/database/schema"
	"github.com/naildesignsart/naildesigns-art/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
//
// List-shaped sub-documents (gallery images, colors, affiliate products,
// SEO) are stored as JSONB columns: they are owned exclusively by their
// parent design and never queried independently, so a join table would add
// round-trips for nothing.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL-backed design store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(ctx context.Context, filter Filter, limit, offset int) ([]*Design, error) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`SELECT %s FROM %s WHERE TRUE`,
		strings.Join(schema.ContentDesign.Columns(), ", "),
		schema.ContentDesign.Table,
	))

	if filter.Status != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", schema.ContentDesign.Status, argID))
		args = append(args, string(filter.Status))
		argID++
	}

	if filter.Category != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", schema.ContentDesign.Category, argID))
		args = append(args, filter.Category)
		argID++
	}

	if filter.Length != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", schema.ContentDesign.Length, argID))
		args = append(args, string(filter.Length))
		argID++
	}

	if filter.Shape != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", schema.ContentDesign.Shape, argID))
		args = append(args, string(filter.Shape))
		argID++
	}

	if filter.StyleType != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", schema.ContentDesign.StyleType, argID))
		args = append(args, string(filter.StyleType))
		argID++
	}

	// Ordering contract: recency ordering applies only to uncategorised
	// listings. A category listing keeps store order.
	if filter.Category == "" {
		queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s DESC", schema.ContentDesign.PublishedAt))
	}

	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_designs")
	}
	defer rows.Close()

	designs := make([]*Design, 0)
	for rows.Next() {
		d, err := scanDesign(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_design")
		}
		designs = append(designs, d)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_designs")
	}
	return designs, nil
}

func (repository *PostgresRepository) FindBySlug(ctx context.Context, slug string) (*Design, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.ContentDesign.Columns(), ", "),
		schema.ContentDesign.Table,
		schema.ContentDesign.Slug,
	)

	rows, err := repository.db.Query(ctx, query, slug)
	if err != nil {
		return nil, dberr.Wrap(err, "get_design_by_slug")
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, dberr.Wrap(pgx.ErrNoRows, "get_design_by_slug")
	}

	d, err := scanDesign(rows)
	if err != nil {
		return nil, dberr.Wrap(err, "scan_design")
	}
	return d, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, design *Design) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	`,
		schema.ContentDesign.Table,
		strings.Join(schema.ContentDesign.Columns(), ", "),
	)

	args, err := designArgs(design)
	if err != nil {
		return err
	}

	if _, err := repository.db.Exec(ctx, query, args...); err != nil {
		return dberr.Wrap(err, "create_design")
	}
	return nil
}

func (repository *PostgresRepository) Update(ctx context.Context, design *Design) error {
	cols := schema.ContentDesign.Columns()

	// Full-document overwrite keyed on the primary key (the logical id).
	setClauses := make([]string, 0, len(cols)-1)
	for i, col := range cols[1:] {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i+2))
	}

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $1`,
		schema.ContentDesign.Table,
		strings.Join(setClauses, ", "),
		schema.ContentDesign.ID,
	)

	args, err := designArgs(design)
	if err != nil {
		return err
	}

	tag, err := repository.db.Exec(ctx, query, args...)
	if err != nil {
		return dberr.Wrap(err, "update_design")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentDesign.Table,
		schema.ContentDesign.ID,
	)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_design")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Row Mapping

// designArgs flattens a design into positional arguments matching
// [schema.ContentDesignTable.Columns] order.
func designArgs(design *Design) ([]any, error) {
	galleryJSON, err := json.Marshal(orEmptySlice(design.GalleryImages))
	if err != nil {
		return nil, fmt.Errorf("design: marshal gallery images: %w", err)
	}
	colorsJSON, err := json.Marshal(orEmptySlice(design.Colors))
	if err != nil {
		return nil, fmt.Errorf("design: marshal colors: %w", err)
	}
	productsJSON, err := json.Marshal(orEmptyProducts(design.AffiliateProducts))
	if err != nil {
		return nil, fmt.Errorf("design: marshal affiliate products: %w", err)
	}
	seoJSON, err := json.Marshal(design.SEO)
	if err != nil {
		return nil, fmt.Errorf("design: marshal seo: %w", err)
	}

	return []any{
		design.ID, design.Title, design.Slug, string(design.Status),
		design.MainImage, design.AltText, design.Width, design.Height, galleryJSON,
		design.ShortDescription, design.LongDescription,
		design.Category, colorsJSON, string(design.Length), string(design.Shape), string(design.StyleType),
		design.AffiliateSectionEnabled, productsJSON,
		seoJSON, design.FocusKeywords, design.PublishedAt,
	}, nil
}

// scanDesign hydrates one row into a [Design].
func scanDesign(rows pgx.Rows) (*Design, error) {
	d := &Design{}
	var status, length, shape, styleType string
	var galleryJSON, colorsJSON, productsJSON, seoJSON []byte

	err := rows.Scan(
		&d.ID, &d.Title, &d.Slug, &status,
		&d.MainImage, &d.AltText, &d.Width, &d.Height, &galleryJSON,
		&d.ShortDescription, &d.LongDescription,
		&d.Category, &colorsJSON, &length, &shape, &styleType,
		&d.AffiliateSectionEnabled, &productsJSON,
		&seoJSON, &d.FocusKeywords, &d.PublishedAt,
	)
	if err != nil {
		return nil, err
	}

	d.Status = Status(status)
	d.Length = NailLength(length)
	d.Shape = NailShape(shape)
	d.StyleType = StyleType(styleType)

	if err := json.Unmarshal(galleryJSON, &d.GalleryImages); err != nil {
		return nil, fmt.Errorf("design: unmarshal gallery images: %w", err)
	}
	if err := json.Unmarshal(colorsJSON, &d.Colors); err != nil {
		return nil, fmt.Errorf("design: unmarshal colors: %w", err)
	}
	if err := json.Unmarshal(productsJSON, &d.AffiliateProducts); err != nil {
		return nil, fmt.Errorf("design: unmarshal affiliate products: %w", err)
	}
	if err := json.Unmarshal(seoJSON, &d.SEO); err != nil {
		return nil, fmt.Errorf("design: unmarshal seo: %w", err)
	}

	return d, nil
}

func orEmptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyProducts(p []AffiliateProduct) []AffiliateProduct {
	if p == nil {
		return []AffiliateProduct{}
	}
	return p
}
