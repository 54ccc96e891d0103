package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"landing-cms-backend/internal/domains/content/model"
	"landing-cms-backend/pkg/database"
)

// postgresStore implements Store over a pgx pool with raw SQL. Section and
// product reads order by (sort_order, id): sort_order is the contract,
// the id tie-break only pins down duplicates to something stable.
type postgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) Store {
	return &postgresStore{pool: pool}
}

// ========================================
// READS
// ========================================

func (r *postgresStore) GetHero(ctx context.Context) (*model.HeroView, error) {
	query := `
		SELECT title, subtitle, updated_at
		FROM hero
		ORDER BY id
		LIMIT 1
	`

	var hero model.HeroView
	err := r.pool.QueryRow(ctx, query).Scan(&hero.Title, &hero.Subtitle, &hero.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hero: %w", err)
	}

	return &hero, nil
}

func (r *postgresStore) ListSections(ctx context.Context) ([]model.SectionRow, error) {
	query := `
		SELECT id, type, sort_order, created_at, updated_at
		FROM sections
		ORDER BY sort_order ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	defer rows.Close()

	var sections []model.SectionRow
	for rows.Next() {
		var s model.SectionRow
		if err := rows.Scan(&s.ID, &s.Type, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan section row: %w", err)
		}
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating section rows: %w", err)
	}

	return sections, nil
}

func (r *postgresStore) GetSpotlight(ctx context.Context, sectionID string) (*model.SpotlightRow, error) {
	query := `
		SELECT section_id, title, subtext, media_type, media, image
		FROM spotlight_data
		WHERE section_id = $1
	`

	var row model.SpotlightRow
	err := r.pool.QueryRow(ctx, query, sectionID).Scan(
		&row.SectionID, &row.Title, &row.Subtext, &row.MediaType, &row.Media, &row.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get spotlight data: %w", err)
	}

	return &row, nil
}

func (r *postgresStore) GetGrid(ctx context.Context, sectionID string) (*model.GridRow, error) {
	query := `
		SELECT id, section_id, title, grid_columns
		FROM grid_data
		WHERE section_id = $1
	`

	var row model.GridRow
	err := r.pool.QueryRow(ctx, query, sectionID).Scan(
		&row.ID, &row.SectionID, &row.Title, &row.GridColumns,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get grid data: %w", err)
	}

	return &row, nil
}

func (r *postgresStore) ListProducts(ctx context.Context, gridID int64) ([]model.ProductRow, error) {
	query := `
		SELECT id, grid_id, name, old_price, new_price, image, link, badge,
		       strike_old_price, show_old_price, sort_order
		FROM products
		WHERE grid_id = $1
		ORDER BY sort_order ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query, gridID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []model.ProductRow
	for rows.Next() {
		var p model.ProductRow
		err := rows.Scan(
			&p.ID, &p.GridID, &p.Name, &p.OldPrice, &p.NewPrice, &p.Image,
			&p.Link, &p.Badge, &p.StrikeOldPrice, &p.ShowOldPrice, &p.SortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}

	return products, nil
}

// ========================================
// SINGLE-ENTITY WRITES
// ========================================

func (r *postgresStore) UpdateHero(ctx context.Context, title, subtitle string) (*model.HeroView, error) {
	query := `
		UPDATE hero
		SET title = $1, subtitle = $2, updated_at = NOW()
		WHERE id = (SELECT id FROM hero ORDER BY id LIMIT 1)
		RETURNING title, subtitle, updated_at
	`

	var hero model.HeroView
	err := r.pool.QueryRow(ctx, query, title, subtitle).Scan(&hero.Title, &hero.Subtitle, &hero.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update hero: %w", err)
	}

	return &hero, nil
}

// MaxSectionOrder returns -1 when no sections exist, so max+1 starts at 0.
func (r *postgresStore) MaxSectionOrder(ctx context.Context) (int, error) {
	query := `SELECT COALESCE(MAX(sort_order), -1) FROM sections`

	var max int
	if err := r.pool.QueryRow(ctx, query).Scan(&max); err != nil {
		return 0, fmt.Errorf("failed to get max section order: %w", err)
	}

	return max, nil
}

func (r *postgresStore) UpdateSectionOrder(ctx context.Context, id string, sortOrder int) error {
	query := `UPDATE sections SET sort_order = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.pool.Exec(ctx, query, sortOrder, id)
	if err != nil {
		return fmt.Errorf("failed to update section order: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrSectionNotFound
	}

	return nil
}

func (r *postgresStore) DeleteSection(ctx context.Context, id string) error {
	// Payload and product rows cascade.
	query := `DELETE FROM sections WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete section: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrSectionNotFound
	}

	return nil
}

func (r *postgresStore) UpdateSpotlight(ctx context.Context, row model.SpotlightRow) (*model.SpotlightRow, error) {
	query := `
		UPDATE spotlight_data
		SET title = $1, subtext = $2, media_type = $3, media = $4, image = $5, updated_at = NOW()
		WHERE section_id = $6
		RETURNING section_id, title, subtext, media_type, media, image
	`

	var updated model.SpotlightRow
	err := r.pool.QueryRow(ctx, query,
		row.Title, row.Subtext, row.MediaType, row.Media, row.Image, row.SectionID,
	).Scan(
		&updated.SectionID, &updated.Title, &updated.Subtext,
		&updated.MediaType, &updated.Media, &updated.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSpotlightNotFound
		}
		return nil, fmt.Errorf("failed to update spotlight: %w", err)
	}

	return &updated, nil
}

func (r *postgresStore) UpdateGrid(ctx context.Context, sectionID, title string, gridColumns int) (*model.GridRow, error) {
	query := `
		UPDATE grid_data
		SET title = $1, grid_columns = $2, updated_at = NOW()
		WHERE section_id = $3
		RETURNING id, section_id, title, grid_columns
	`

	var updated model.GridRow
	err := r.pool.QueryRow(ctx, query, title, gridColumns, sectionID).Scan(
		&updated.ID, &updated.SectionID, &updated.Title, &updated.GridColumns,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGridNotFound
		}
		return nil, fmt.Errorf("failed to update grid: %w", err)
	}

	return &updated, nil
}

// AddProduct reads the grid's max sort_order (-1 when empty, so the first
// product lands at 0) and inserts in the same transaction.
func (r *postgresStore) AddProduct(ctx context.Context, gridID int64, row model.ProductRow) (*model.ProductRow, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.ProductRow, error) {
		orderQuery := `SELECT COALESCE(MAX(sort_order), -1) FROM products WHERE grid_id = $1`

		var max int
		if err := tx.QueryRow(ctx, orderQuery, gridID).Scan(&max); err != nil {
			return nil, fmt.Errorf("failed to get max product order: %w", err)
		}

		insertQuery := `
			INSERT INTO products (grid_id, name, old_price, new_price, image, link, badge,
			                      strike_old_price, show_old_price, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id, grid_id, name, old_price, new_price, image, link, badge,
			          strike_old_price, show_old_price, sort_order
		`

		var created model.ProductRow
		err := tx.QueryRow(ctx, insertQuery,
			gridID, row.Name, row.OldPrice, row.NewPrice, row.Image, row.Link,
			row.Badge, row.StrikeOldPrice, row.ShowOldPrice, max+1,
		).Scan(
			&created.ID, &created.GridID, &created.Name, &created.OldPrice, &created.NewPrice,
			&created.Image, &created.Link, &created.Badge, &created.StrikeOldPrice,
			&created.ShowOldPrice, &created.SortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert product: %w", err)
		}

		return &created, nil
	})
}

func (r *postgresStore) UpdateProduct(ctx context.Context, id int64, row model.ProductRow) (*model.ProductRow, error) {
	query := `
		UPDATE products
		SET name = $1, old_price = $2, new_price = $3, image = $4, link = $5,
		    badge = $6, strike_old_price = $7, show_old_price = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING id, grid_id, name, old_price, new_price, image, link, badge,
		          strike_old_price, show_old_price, sort_order
	`

	var updated model.ProductRow
	err := r.pool.QueryRow(ctx, query,
		row.Name, row.OldPrice, row.NewPrice, row.Image, row.Link,
		row.Badge, row.StrikeOldPrice, row.ShowOldPrice, id,
	).Scan(
		&updated.ID, &updated.GridID, &updated.Name, &updated.OldPrice, &updated.NewPrice,
		&updated.Image, &updated.Link, &updated.Badge, &updated.StrikeOldPrice,
		&updated.ShowOldPrice, &updated.SortOrder,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &updated, nil
}

func (r *postgresStore) DeleteProduct(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

// ========================================
// TRANSACTIONS
// ========================================

func (r *postgresStore) WithinTx(ctx context.Context, fn func(Tx) error) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(&postgresTx{tx: tx})
	})
}

// postgresTx executes the per-step writes against one pgx transaction.
type postgresTx struct {
	tx pgx.Tx
}

func (t *postgresTx) UpdateHero(ctx context.Context, title, subtitle string) error {
	query := `
		UPDATE hero
		SET title = $1, subtitle = $2, updated_at = NOW()
		WHERE id = (SELECT id FROM hero ORDER BY id LIMIT 1)
	`

	if _, err := t.tx.Exec(ctx, query, title, subtitle); err != nil {
		return fmt.Errorf("failed to update hero: %w", err)
	}
	return nil
}

func (t *postgresTx) DeleteAllSections(ctx context.Context) error {
	if _, err := t.tx.Exec(ctx, `DELETE FROM sections`); err != nil {
		return fmt.Errorf("failed to delete sections: %w", err)
	}
	return nil
}

func (t *postgresTx) InsertSection(ctx context.Context, id string, sectionType model.SectionType, sortOrder int) error {
	query := `INSERT INTO sections (id, type, sort_order) VALUES ($1, $2, $3)`

	if _, err := t.tx.Exec(ctx, query, id, sectionType, sortOrder); err != nil {
		return fmt.Errorf("failed to insert section %s: %w", id, err)
	}
	return nil
}

func (t *postgresTx) InsertSpotlight(ctx context.Context, row model.SpotlightRow) error {
	query := `
		INSERT INTO spotlight_data (section_id, title, subtext, media_type, media, image)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := t.tx.Exec(ctx, query,
		row.SectionID, row.Title, row.Subtext, row.MediaType, row.Media, row.Image,
	)
	if err != nil {
		return fmt.Errorf("failed to insert spotlight for section %s: %w", row.SectionID, err)
	}
	return nil
}

func (t *postgresTx) InsertGrid(ctx context.Context, sectionID, title string, gridColumns int) (int64, error) {
	query := `
		INSERT INTO grid_data (section_id, title, grid_columns)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var gridID int64
	if err := t.tx.QueryRow(ctx, query, sectionID, title, gridColumns).Scan(&gridID); err != nil {
		return 0, fmt.Errorf("failed to insert grid for section %s: %w", sectionID, err)
	}
	return gridID, nil
}

func (t *postgresTx) InsertProduct(ctx context.Context, row model.ProductRow) error {
	query := `
		INSERT INTO products (grid_id, name, old_price, new_price, image, link, badge,
		                      strike_old_price, show_old_price, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := t.tx.Exec(ctx, query,
		row.GridID, row.Name, row.OldPrice, row.NewPrice, row.Image, row.Link,
		row.Badge, row.StrikeOldPrice, row.ShowOldPrice, row.SortOrder,
	)
	if err != nil {
		return fmt.Errorf("failed to insert product %q: %w", row.Name, err)
	}
	return nil
}
