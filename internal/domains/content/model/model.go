package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SectionType discriminates the section variants on the landing page.
type SectionType string

const (
	SectionTypeSpotlight SectionType = "spotlight"
	SectionTypeGrid      SectionType = "grid"
)

func (t SectionType) Valid() bool {
	switch t {
	case SectionTypeSpotlight, SectionTypeGrid:
		return true
	}
	return false
}

// MediaType is the kind of asset a spotlight banner shows.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

func (m MediaType) Valid() bool {
	switch m {
	case MediaTypeImage, MediaTypeVideo:
		return true
	}
	return false
}

// ========================================
// VIEW TYPES (JSON served to clients)
// ========================================

type HeroView struct {
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SectionData is the payload side of the section tagged union. It is sealed:
// only SpotlightData and GridData implement it, and every consumer switches
// over the concrete types, so a new variant fails to compile until each
// switch handles it.
type SectionData interface {
	sectionData() SectionType
}

type SpotlightData struct {
	Title     string    `json:"title"`
	Subtext   string    `json:"subtext"`
	MediaType MediaType `json:"mediaType"`
	Media     string    `json:"media"`
	// Image mirrors Media so pages built against the legacy field keep
	// rendering.
	Image string `json:"image"`
}

func (SpotlightData) sectionData() SectionType { return SectionTypeSpotlight }

type GridData struct {
	Title       string        `json:"title"`
	GridColumns int           `json:"gridColumns"`
	Products    []ProductView `json:"products"`
}

func (GridData) sectionData() SectionType { return SectionTypeGrid }

type SectionView struct {
	ID   string      `json:"id"`
	Type SectionType `json:"type"`
	Data SectionData `json:"data"`
}

type ProductView struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	OldPrice       float64 `json:"oldPrice"`
	NewPrice       float64 `json:"newPrice"`
	Image          string  `json:"image"`
	Link           string  `json:"link"`
	Badge          string  `json:"badge"`
	StrikeOldPrice bool    `json:"strikeOldPrice"`
	ShowOldPrice   bool    `json:"showOldPrice"`
}

// PageData is the full public content tree: hero plus ordered sections.
type PageData struct {
	Hero     HeroView      `json:"hero"`
	Sections []SectionView `json:"sections"`
}

// GridMetaView is the response to a grid metadata update.
type GridMetaView struct {
	Title       string `json:"title"`
	GridColumns int    `json:"gridColumns"`
}

// CreatedSection is returned by the create-section operation.
type CreatedSection struct {
	ID   string      `json:"id"`
	Type SectionType `json:"type"`
}

// ========================================
// STORAGE ROWS
// ========================================

type SectionRow struct {
	ID        string
	Type      SectionType
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SpotlightRow struct {
	SectionID string
	Title     string
	Subtext   string
	MediaType MediaType
	Media     string
	Image     string
}

type GridRow struct {
	ID          int64
	SectionID   string
	Title       string
	GridColumns int
}

type ProductRow struct {
	ID             int64
	GridID         int64
	Name           string
	OldPrice       decimal.Decimal
	NewPrice       decimal.Decimal
	Image          string
	Link           string
	Badge          string
	StrikeOldPrice bool
	ShowOldPrice   bool
	SortOrder      int
}

// View maps a stored product to its public shape, applying the read-side
// defaults: empty link becomes "#", prices become floats.
func (p ProductRow) View() ProductView {
	link := p.Link
	if link == "" {
		link = "#"
	}
	return ProductView{
		ID:             p.ID,
		Name:           p.Name,
		OldPrice:       p.OldPrice.InexactFloat64(),
		NewPrice:       p.NewPrice.InexactFloat64(),
		Image:          p.Image,
		Link:           link,
		Badge:          p.Badge,
		StrikeOldPrice: p.StrikeOldPrice,
		ShowOldPrice:   p.ShowOldPrice,
	}
}

// Data maps a stored spotlight payload to its public shape through the
// media adapter.
func (s SpotlightRow) Data() SpotlightData {
	media := ResolveMedia(s.Media, s.Image)
	return SpotlightData{
		Title:     s.Title,
		Subtext:   s.Subtext,
		MediaType: NormalizeMediaType(s.MediaType),
		Media:     media,
		Image:     media,
	}
}

// EmptySpotlightData is the documented zero-value payload substituted when a
// spotlight section has no stored row.
func EmptySpotlightData() SpotlightData {
	return SpotlightData{MediaType: MediaTypeImage}
}

// EmptyGridData is the zero-value payload for a grid section with no stored
// row.
func EmptyGridData() GridData {
	return GridData{Products: []ProductView{}}
}
