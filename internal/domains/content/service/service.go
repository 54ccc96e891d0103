package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"landing-cms-backend/internal/domains/content/model"
	"landing-cms-backend/internal/domains/content/repository"
)

// Seed content for freshly created sections, matching what the admin
// console shows before the first edit.
const (
	defaultSpotlightTitle   = "New Spotlight"
	defaultSpotlightSubtext = "Description here"
	defaultSpotlightImage   = "https://images.unsplash.com/photo-1595225476474-87563907a212?w=1600&q=80"
	defaultGridTitle        = "New Collection"
	defaultProductName      = "New Product"
	defaultProductImage     = "https://via.placeholder.com/400"
)

type contentService struct {
	repo repository.Store
}

func NewContentService(repo repository.Store) Service {
	return &contentService{repo: repo}
}

// ========================================
// TREE READER
// ========================================

// GetHero returns the hero singleton, or a zero-value hero when the row is
// missing. Reads never fail on absence, only on storage errors.
func (s *contentService) GetHero(ctx context.Context) (*model.HeroView, error) {
	hero, err := s.repo.GetHero(ctx)
	if err != nil {
		return nil, err
	}
	if hero == nil {
		return &model.HeroView{}, nil
	}
	return hero, nil
}

func (s *contentService) GetSections(ctx context.Context) ([]model.SectionView, error) {
	return s.loadSections(ctx)
}

func (s *contentService) GetPageData(ctx context.Context) (*model.PageData, error) {
	hero, err := s.GetHero(ctx)
	if err != nil {
		return nil, err
	}

	sections, err := s.loadSections(ctx)
	if err != nil {
		return nil, err
	}

	return &model.PageData{Hero: *hero, Sections: sections}, nil
}

// loadSections lists section rows, then fans out the payload fetch for each
// section concurrently. Results are written into a slice indexed by the
// section's original position, so the assembled tree keeps the stored order
// no matter which fetch finishes first.
func (s *contentService) loadSections(ctx context.Context) ([]model.SectionView, error) {
	rows, err := s.repo.ListSections(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]model.SectionView, len(rows))
	errs := make([]error, len(rows))

	var wg sync.WaitGroup
	for i, row := range rows {
		wg.Add(1)
		go func(i int, row model.SectionRow) {
			defer wg.Done()

			data, err := s.loadSectionData(ctx, row)
			if err != nil {
				errs[i] = err
				return
			}
			views[i] = model.SectionView{ID: row.ID, Type: row.Type, Data: data}
		}(i, row)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return views, nil
}

// loadSectionData dispatches on the section variant. A missing payload row
// substitutes the documented zero-value payload instead of failing.
func (s *contentService) loadSectionData(ctx context.Context, row model.SectionRow) (model.SectionData, error) {
	switch row.Type {
	case model.SectionTypeSpotlight:
		spotlight, err := s.repo.GetSpotlight(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		if spotlight == nil {
			return model.EmptySpotlightData(), nil
		}
		return spotlight.Data(), nil

	case model.SectionTypeGrid:
		grid, err := s.repo.GetGrid(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		if grid == nil {
			return model.EmptyGridData(), nil
		}

		products, err := s.repo.ListProducts(ctx, grid.ID)
		if err != nil {
			return nil, err
		}

		views := make([]model.ProductView, 0, len(products))
		for _, p := range products {
			views = append(views, p.View())
		}

		return model.GridData{
			Title:       grid.Title,
			GridColumns: grid.GridColumns,
			Products:    views,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownSectionType, row.Type)
	}
}

// ========================================
// TREE WRITER (full replace)
// ========================================

// ReplaceTree atomically swaps the persisted tree for the supplied one. The
// whole payload is validated and decoded before the transaction opens, so a
// malformed tree never touches storage. Inside the transaction the existing
// sections are bulk-deleted (cascade removes payloads and products) and the
// new sections are reinserted in input order; the input array position
// becomes the section's sort order and any caller-supplied ordering fields
// are ignored.
func (s *contentService) ReplaceTree(ctx context.Context, in model.SaveAllInput) error {
	hero, sections, err := in.Decode()
	if err != nil {
		return err
	}

	return s.repo.WithinTx(ctx, func(tx repository.Tx) error {
		if err := tx.UpdateHero(ctx, hero.Title, hero.Subtitle); err != nil {
			return err
		}

		if err := tx.DeleteAllSections(ctx); err != nil {
			return err
		}

		for i, sec := range sections {
			if err := tx.InsertSection(ctx, sec.ID, sec.Type, i); err != nil {
				return err
			}

			switch sec.Type {
			case model.SectionTypeSpotlight:
				if err := tx.InsertSpotlight(ctx, sec.Spotlight.Row(sec.ID)); err != nil {
					return err
				}

			case model.SectionTypeGrid:
				gridID, err := tx.InsertGrid(ctx, sec.ID, sec.Grid.Title, sec.Grid.GridColumns)
				if err != nil {
					return err
				}
				for j, p := range sec.Grid.Products {
					row := p.Row()
					row.GridID = gridID
					row.SortOrder = j
					if err := tx.InsertProduct(ctx, row); err != nil {
						return err
					}
				}
			}
		}

		return nil
	})
}

// ========================================
// SINGLE-ENTITY EDITORS
// ========================================

func (s *contentService) UpdateHero(ctx context.Context, in model.HeroInput) (*model.HeroView, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdateHero(ctx, in.Title, in.Subtitle)
}

// CreateSection appends a new section after the current maximum sort order.
// Existing sections are never renumbered.
func (s *contentService) CreateSection(ctx context.Context, in model.CreateSectionInput) (*model.CreatedSection, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	maxOrder, err := s.repo.MaxSectionOrder(ctx)
	if err != nil {
		return nil, err
	}

	sectionID := "sec_" + uuid.NewString()
	sortOrder := maxOrder + 1

	err = s.repo.WithinTx(ctx, func(tx repository.Tx) error {
		if err := tx.InsertSection(ctx, sectionID, in.Type, sortOrder); err != nil {
			return err
		}

		switch in.Type {
		case model.SectionTypeSpotlight:
			return tx.InsertSpotlight(ctx, model.SpotlightRow{
				SectionID: sectionID,
				Title:     defaultSpotlightTitle,
				Subtext:   defaultSpotlightSubtext,
				MediaType: model.MediaTypeImage,
				Media:     defaultSpotlightImage,
				Image:     defaultSpotlightImage,
			})

		case model.SectionTypeGrid:
			gridID, err := tx.InsertGrid(ctx, sectionID, defaultGridTitle, 0)
			if err != nil {
				return err
			}
			return tx.InsertProduct(ctx, model.ProductRow{
				GridID:         gridID,
				Name:           defaultProductName,
				OldPrice:       decimal.NewFromInt(100),
				NewPrice:       decimal.NewFromInt(99),
				Image:          defaultProductImage,
				Link:           "#",
				StrikeOldPrice: true,
				ShowOldPrice:   true,
				SortOrder:      0,
			})
		}

		return fmt.Errorf("%w: %q", model.ErrUnknownSectionType, in.Type)
	})
	if err != nil {
		return nil, err
	}

	return &model.CreatedSection{ID: sectionID, Type: in.Type}, nil
}

// ReorderSections applies each (id, sortOrder) pair in turn and reports the
// first failure. Only ordering changes here, never existence, so there is
// no transaction around the batch.
func (s *contentService) ReorderSections(ctx context.Context, in model.ReorderInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	for _, sec := range in.Sections {
		if err := s.repo.UpdateSectionOrder(ctx, sec.ID, sec.SortOrder); err != nil {
			return err
		}
	}

	return nil
}

func (s *contentService) DeleteSection(ctx context.Context, id string) error {
	return s.repo.DeleteSection(ctx, id)
}

func (s *contentService) UpdateSpotlight(ctx context.Context, sectionID string, in model.SpotlightInput) (*model.SpotlightData, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateSpotlight(ctx, in.Row(sectionID))
	if err != nil {
		return nil, err
	}

	data := updated.Data()
	return &data, nil
}

func (s *contentService) UpdateGrid(ctx context.Context, sectionID string, in model.GridMetaInput) (*model.GridMetaView, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateGrid(ctx, sectionID, in.Title, in.GridColumns)
	if err != nil {
		return nil, err
	}

	return &model.GridMetaView{Title: updated.Title, GridColumns: updated.GridColumns}, nil
}

// AddProduct appends a product to a grid section. The repository assigns
// max sort order + 1 (0 for an empty grid) atomically with the insert.
func (s *contentService) AddProduct(ctx context.Context, sectionID string, in model.ProductInput) (*model.ProductView, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	grid, err := s.repo.GetGrid(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	if grid == nil {
		return nil, model.ErrGridNotFound
	}

	created, err := s.repo.AddProduct(ctx, grid.ID, in.Row())
	if err != nil {
		return nil, err
	}

	view := created.View()
	return &view, nil
}

func (s *contentService) UpdateProduct(ctx context.Context, id int64, in model.ProductInput) (*model.ProductView, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateProduct(ctx, id, in.Row())
	if err != nil {
		return nil, err
	}

	view := updated.View()
	return &view, nil
}

func (s *contentService) DeleteProduct(ctx context.Context, id int64) error {
	return s.repo.DeleteProduct(ctx, id)
}
