package repository

import (
	"context"

	"landing-cms-backend/internal/domains/content/model"
)

// Tx is the write surface available inside one transaction. The full-tree
// reconciler composes these steps; if any returns an error the whole
// transaction rolls back.
type Tx interface {
	UpdateHero(ctx context.Context, title, subtitle string) error

	// DeleteAllSections removes every section row. Payload and product
	// rows go with them via cascading foreign keys.
	DeleteAllSections(ctx context.Context) error

	InsertSection(ctx context.Context, id string, sectionType model.SectionType, sortOrder int) error
	InsertSpotlight(ctx context.Context, row model.SpotlightRow) error

	// InsertGrid returns the generated grid id that product rows reference.
	InsertGrid(ctx context.Context, sectionID, title string, gridColumns int) (int64, error)
	InsertProduct(ctx context.Context, row model.ProductRow) error
}

// Store is the content tree's storage gateway.
type Store interface {
	// Reads. Absence is nil (hero, payloads) or an empty slice, never an
	// error; only storage failures propagate.
	GetHero(ctx context.Context) (*model.HeroView, error)
	ListSections(ctx context.Context) ([]model.SectionRow, error)
	GetSpotlight(ctx context.Context, sectionID string) (*model.SpotlightRow, error)
	GetGrid(ctx context.Context, sectionID string) (*model.GridRow, error)
	ListProducts(ctx context.Context, gridID int64) ([]model.ProductRow, error)

	// Single-entity writes.
	UpdateHero(ctx context.Context, title, subtitle string) (*model.HeroView, error)
	MaxSectionOrder(ctx context.Context) (int, error)
	UpdateSectionOrder(ctx context.Context, id string, sortOrder int) error
	DeleteSection(ctx context.Context, id string) error
	UpdateSpotlight(ctx context.Context, row model.SpotlightRow) (*model.SpotlightRow, error)
	UpdateGrid(ctx context.Context, sectionID, title string, gridColumns int) (*model.GridRow, error)
	// AddProduct appends row to the grid at max sort order + 1 (0 for an
	// empty grid). Order lookup and insert run in one transaction so
	// concurrent appends cannot claim the same slot.
	AddProduct(ctx context.Context, gridID int64, row model.ProductRow) (*model.ProductRow, error)
	UpdateProduct(ctx context.Context, id int64, row model.ProductRow) (*model.ProductRow, error)
	DeleteProduct(ctx context.Context, id int64) error

	// WithinTx runs fn inside a single transaction, committing on nil and
	// rolling back on error or panic.
	WithinTx(ctx context.Context, fn func(Tx) error) error
}
