package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"landing-cms-backend/internal/domains/content/model"
	"landing-cms-backend/internal/domains/content/service"
	"landing-cms-backend/internal/shared/response"
	"landing-cms-backend/pkg/logger"
)

// ContentHandler exposes the content tree over HTTP. Public reads return
// the flat JSON shapes the frontend consumes; mutations sit behind the auth
// middleware wired in the router.
type ContentHandler struct {
	service service.Service
}

func NewContentHandler(service service.Service) *ContentHandler {
	return &ContentHandler{service: service}
}

// ========================================
// READS (public)
// ========================================

// GetHero handles GET /api/hero
func (h *ContentHandler) GetHero(c *gin.Context) {
	hero, err := h.service.GetHero(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "Failed to fetch hero data")
		return
	}

	c.JSON(http.StatusOK, hero)
}

// GetSections handles GET /api/sections
func (h *ContentHandler) GetSections(c *gin.Context) {
	sections, err := h.service.GetSections(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "Failed to fetch sections")
		return
	}

	c.JSON(http.StatusOK, sections)
}

// GetPageData handles GET /api/page-data
func (h *ContentHandler) GetPageData(c *gin.Context) {
	page, err := h.service.GetPageData(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "Failed to fetch page data")
		return
	}

	c.JSON(http.StatusOK, page)
}

// ========================================
// MUTATIONS (protected)
// ========================================

// UpdateHero handles PUT /api/hero
func (h *ContentHandler) UpdateHero(c *gin.Context) {
	var req model.HeroInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	hero, err := h.service.UpdateHero(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err, "Failed to update hero data")
		return
	}

	c.JSON(http.StatusOK, hero)
}

// CreateSection handles POST /api/sections
func (h *ContentHandler) CreateSection(c *gin.Context) {
	var req model.CreateSectionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.CreateSection(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err, "Failed to create section")
		return
	}

	c.JSON(http.StatusOK, created)
}

// ReorderSections handles PUT /api/sections/reorder
func (h *ContentHandler) ReorderSections(c *gin.Context) {
	var req model.ReorderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.ReorderSections(c.Request.Context(), req); err != nil {
		h.handleError(c, err, "Failed to reorder sections")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sections reordered successfully"})
}

// DeleteSection handles DELETE /api/sections/:id
func (h *ContentHandler) DeleteSection(c *gin.Context) {
	if err := h.service.DeleteSection(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err, "Failed to delete section")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Section deleted successfully"})
}

// UpdateSpotlight handles PUT /api/spotlight/:sectionId
func (h *ContentHandler) UpdateSpotlight(c *gin.Context) {
	var req model.SpotlightInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	data, err := h.service.UpdateSpotlight(c.Request.Context(), c.Param("sectionId"), req)
	if err != nil {
		h.handleError(c, err, "Failed to update spotlight")
		return
	}

	c.JSON(http.StatusOK, data)
}

// UpdateGrid handles PUT /api/grid/:sectionId
func (h *ContentHandler) UpdateGrid(c *gin.Context) {
	var req model.GridMetaInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	meta, err := h.service.UpdateGrid(c.Request.Context(), c.Param("sectionId"), req)
	if err != nil {
		h.handleError(c, err, "Failed to update grid")
		return
	}

	c.JSON(http.StatusOK, meta)
}

// AddProduct handles POST /api/grid/:sectionId/products
func (h *ContentHandler) AddProduct(c *gin.Context) {
	var req model.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.service.AddProduct(c.Request.Context(), c.Param("sectionId"), req)
	if err != nil {
		h.handleError(c, err, "Failed to add product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct handles PUT /api/products/:id
func (h *ContentHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid product id")
		return
	}

	var req model.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.service.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/products/:id
func (h *ContentHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid product id")
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		h.handleError(c, err, "Failed to delete product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// SaveAll handles POST /api/save-all
func (h *ContentHandler) SaveAll(c *gin.Context) {
	var req model.SaveAllInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.ReplaceTree(c.Request.Context(), req); err != nil {
		h.handleError(c, err, "Failed to save data")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All data saved successfully"})
}

// handleError maps domain errors onto HTTP outcomes: validation problems
// are 400, missing entities 404, everything else is a storage failure.
func (h *ContentHandler) handleError(c *gin.Context, err error, fallback string) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs),
		errors.Is(err, model.ErrValidation),
		errors.Is(err, model.ErrUnknownSectionType):
		response.BadRequest(c, err.Error())

	case errors.Is(err, model.ErrSectionNotFound),
		errors.Is(err, model.ErrSpotlightNotFound),
		errors.Is(err, model.ErrGridNotFound),
		errors.Is(err, model.ErrProductNotFound):
		response.NotFound(c, err.Error())

	default:
		logger.Error(fallback, err)
		response.InternalServerError(c, fallback)
	}
}
