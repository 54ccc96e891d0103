package service

import (
	"context"

	"landing-cms-backend/internal/domains/content/model"
)

// Service is the content tree's business surface: whole-tree reads, the
// atomic full-tree replace, and the narrower single-entity editors.
type Service interface {
	// Tree reads
	GetHero(ctx context.Context) (*model.HeroView, error)
	GetSections(ctx context.Context) ([]model.SectionView, error)
	GetPageData(ctx context.Context) (*model.PageData, error)

	// Full-tree replace
	ReplaceTree(ctx context.Context, in model.SaveAllInput) error

	// Single-entity editors
	UpdateHero(ctx context.Context, in model.HeroInput) (*model.HeroView, error)
	CreateSection(ctx context.Context, in model.CreateSectionInput) (*model.CreatedSection, error)
	ReorderSections(ctx context.Context, in model.ReorderInput) error
	DeleteSection(ctx context.Context, id string) error
	UpdateSpotlight(ctx context.Context, sectionID string, in model.SpotlightInput) (*model.SpotlightData, error)
	UpdateGrid(ctx context.Context, sectionID string, in model.GridMetaInput) (*model.GridMetaView, error)
	AddProduct(ctx context.Context, sectionID string, in model.ProductInput) (*model.ProductView, error)
	UpdateProduct(ctx context.Context, id int64, in model.ProductInput) (*model.ProductView, error)
	DeleteProduct(ctx context.Context, id int64) error
}
