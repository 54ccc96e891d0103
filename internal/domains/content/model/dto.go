package model

import (
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// ========================================
// REQUEST DTOs
// ========================================

type HeroInput struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

func (h HeroInput) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Title, validation.Length(0, 1000)),
		validation.Field(&h.Subtitle, validation.Length(0, 1000)),
	)
}

type SpotlightInput struct {
	Title     string    `json:"title"`
	Subtext   string    `json:"subtext"`
	MediaType MediaType `json:"mediaType"`
	Media     string    `json:"media"`
	Image     string    `json:"image"`
}

func (s SpotlightInput) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.MediaType,
			validation.In(MediaTypeImage, MediaTypeVideo).Error("mediaType must be image or video"),
		),
	)
}

// Row resolves the media/image duplication and produces the storage shape.
func (s SpotlightInput) Row(sectionID string) SpotlightRow {
	media, image := MirrorMedia(s.Media, s.Image)
	return SpotlightRow{
		SectionID: sectionID,
		Title:     s.Title,
		Subtext:   s.Subtext,
		MediaType: NormalizeMediaType(s.MediaType),
		Media:     media,
		Image:     image,
	}
}

type ProductInput struct {
	Name     string  `json:"name"`
	OldPrice float64 `json:"oldPrice"`
	NewPrice float64 `json:"newPrice"`
	Image    string  `json:"image"`
	Link     string  `json:"link"`
	Badge    string  `json:"badge"`
	// Pointers distinguish "omitted" from explicit false; both flags
	// default to true.
	StrikeOldPrice *bool `json:"strikeOldPrice"`
	ShowOldPrice   *bool `json:"showOldPrice"`
}

func (p ProductInput) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name,
			validation.Required.Error("product name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&p.OldPrice, validation.Min(0.0).Error("oldPrice must be non-negative")),
		validation.Field(&p.NewPrice, validation.Min(0.0).Error("newPrice must be non-negative")),
	)
}

// Row applies the documented defaults and converts prices to 2-digit
// decimals. SortOrder is assigned by the caller.
func (p ProductInput) Row() ProductRow {
	link := p.Link
	if link == "" {
		link = "#"
	}
	return ProductRow{
		Name:           p.Name,
		OldPrice:       decimal.NewFromFloat(p.OldPrice).Round(2),
		NewPrice:       decimal.NewFromFloat(p.NewPrice).Round(2),
		Image:          p.Image,
		Link:           link,
		Badge:          p.Badge,
		StrikeOldPrice: boolOr(p.StrikeOldPrice, true),
		ShowOldPrice:   boolOr(p.ShowOldPrice, true),
	}
}

type GridInput struct {
	Title       string         `json:"title"`
	GridColumns int            `json:"gridColumns"`
	Products    []ProductInput `json:"products"`
}

func (g GridInput) Validate() error {
	if err := validation.ValidateStruct(&g,
		validation.Field(&g.GridColumns, validation.Min(0).Error("gridColumns must be non-negative")),
	); err != nil {
		return err
	}
	for i, p := range g.Products {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("product %d: %w", i, err)
		}
	}
	return nil
}

// GridMetaInput updates a grid's display metadata without touching products.
type GridMetaInput struct {
	Title       string `json:"title"`
	GridColumns int    `json:"gridColumns"`
}

func (g GridMetaInput) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.GridColumns, validation.Min(0).Error("gridColumns must be non-negative")),
	)
}

type CreateSectionInput struct {
	Type SectionType `json:"type"`
}

func (c CreateSectionInput) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Type,
			validation.Required.Error("type is required"),
			validation.In(SectionTypeSpotlight, SectionTypeGrid).Error("type must be spotlight or grid"),
		),
	)
}

type SectionOrder struct {
	ID        string `json:"id"`
	SortOrder int    `json:"sort_order"`
}

type ReorderInput struct {
	Sections []SectionOrder `json:"sections"`
}

func (r ReorderInput) Validate() error {
	if len(r.Sections) == 0 {
		return fmt.Errorf("%w: sections are required", ErrValidation)
	}
	for i, s := range r.Sections {
		if s.ID == "" {
			return fmt.Errorf("%w: section %d is missing an id", ErrValidation, i)
		}
	}
	return nil
}

// ========================================
// FULL-TREE REPLACE INPUT
// ========================================

// SectionInput carries one section of a save-all payload. Data stays raw
// until the type is known; Decode dispatches it into the variant input.
type SectionInput struct {
	ID   string          `json:"id"`
	Type SectionType     `json:"type"`
	Data json.RawMessage `json:"data"`
}

// DecodedSection is the validated, variant-dispatched form of a SectionInput.
// Exactly one of Spotlight/Grid is set, matching Type.
type DecodedSection struct {
	ID        string
	Type      SectionType
	Spotlight *SpotlightInput
	Grid      *GridInput
}

// Decode validates the section and unpacks its variant payload.
func (s SectionInput) Decode() (*DecodedSection, error) {
	if s.ID == "" {
		return nil, fmt.Errorf("%w: section is missing an id", ErrValidation)
	}

	switch s.Type {
	case SectionTypeSpotlight:
		var in SpotlightInput
		if len(s.Data) > 0 {
			if err := json.Unmarshal(s.Data, &in); err != nil {
				return nil, fmt.Errorf("%w: malformed spotlight data for section %s", ErrValidation, s.ID)
			}
		}
		if err := in.Validate(); err != nil {
			return nil, fmt.Errorf("section %s: %w", s.ID, err)
		}
		return &DecodedSection{ID: s.ID, Type: s.Type, Spotlight: &in}, nil

	case SectionTypeGrid:
		var in GridInput
		if len(s.Data) > 0 {
			if err := json.Unmarshal(s.Data, &in); err != nil {
				return nil, fmt.Errorf("%w: malformed grid data for section %s", ErrValidation, s.ID)
			}
		}
		if err := in.Validate(); err != nil {
			return nil, fmt.Errorf("section %s: %w", s.ID, err)
		}
		return &DecodedSection{ID: s.ID, Type: s.Type, Grid: &in}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSectionType, s.Type)
	}
}

// SaveAllInput is the complete target tree for a full replace.
type SaveAllInput struct {
	Hero     *HeroInput     `json:"hero"`
	Sections []SectionInput `json:"sections"`
}

// Decode validates the whole payload before any write happens. It fails on
// the first malformed section; a partially decodable tree is never applied.
func (s SaveAllInput) Decode() (*HeroInput, []DecodedSection, error) {
	if s.Hero == nil {
		return nil, nil, fmt.Errorf("%w: hero is required", ErrValidation)
	}
	// A missing or null sections field binds to a nil slice. Treating that
	// as an empty replace would commit a tree wipe the caller never asked
	// for, so only an explicit [] clears the page.
	if s.Sections == nil {
		return nil, nil, fmt.Errorf("%w: sections must be an array", ErrValidation)
	}
	if err := s.Hero.Validate(); err != nil {
		return nil, nil, err
	}

	decoded := make([]DecodedSection, 0, len(s.Sections))
	for _, sec := range s.Sections {
		d, err := sec.Decode()
		if err != nil {
			return nil, nil, err
		}
		decoded = append(decoded, *d)
	}

	return s.Hero, decoded, nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
