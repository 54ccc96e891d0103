package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing-cms-backend/internal/domains/content/model"
	"landing-cms-backend/internal/shared/middleware"
	"landing-cms-backend/pkg/jwt"
)

// fakeService returns canned values so the tests exercise only HTTP
// concerns: routing, status codes, auth and error mapping.
type fakeService struct {
	page *model.PageData
	err  error

	replaced *model.SaveAllInput
}

func (f *fakeService) GetHero(ctx context.Context) (*model.HeroView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &f.page.Hero, nil
}

func (f *fakeService) GetSections(ctx context.Context) ([]model.SectionView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.page.Sections, nil
}

func (f *fakeService) GetPageData(ctx context.Context) (*model.PageData, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func (f *fakeService) ReplaceTree(ctx context.Context, in model.SaveAllInput) error {
	if f.err != nil {
		return f.err
	}
	f.replaced = &in
	return nil
}

func (f *fakeService) UpdateHero(ctx context.Context, in model.HeroInput) (*model.HeroView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.HeroView{Title: in.Title, Subtitle: in.Subtitle}, nil
}

func (f *fakeService) CreateSection(ctx context.Context, in model.CreateSectionInput) (*model.CreatedSection, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.CreatedSection{ID: "sec_new", Type: in.Type}, nil
}

func (f *fakeService) ReorderSections(ctx context.Context, in model.ReorderInput) error {
	return f.err
}

func (f *fakeService) DeleteSection(ctx context.Context, id string) error {
	return f.err
}

func (f *fakeService) UpdateSpotlight(ctx context.Context, sectionID string, in model.SpotlightInput) (*model.SpotlightData, error) {
	if f.err != nil {
		return nil, f.err
	}
	data := in.Row(sectionID).Data()
	return &data, nil
}

func (f *fakeService) UpdateGrid(ctx context.Context, sectionID string, in model.GridMetaInput) (*model.GridMetaView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.GridMetaView{Title: in.Title, GridColumns: in.GridColumns}, nil
}

func (f *fakeService) AddProduct(ctx context.Context, sectionID string, in model.ProductInput) (*model.ProductView, error) {
	if f.err != nil {
		return nil, f.err
	}
	view := in.Row().View()
	return &view, nil
}

func (f *fakeService) UpdateProduct(ctx context.Context, id int64, in model.ProductInput) (*model.ProductView, error) {
	if f.err != nil {
		return nil, f.err
	}
	view := in.Row().View()
	view.ID = id
	return &view, nil
}

func (f *fakeService) DeleteProduct(ctx context.Context, id int64) error {
	return f.err
}

func setupRouter(t *testing.T, svc *fakeService) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := jwt.NewManager("test-secret", 1)
	token, err := manager.GenerateToken(1, "admin", "admin")
	require.NoError(t, err)

	h := NewContentHandler(svc)

	router := gin.New()
	api := router.Group("/api")

	api.GET("/hero", h.GetHero)
	api.GET("/sections", h.GetSections)
	api.GET("/page-data", h.GetPageData)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(manager))
	{
		protected.PUT("/hero", h.UpdateHero)
		protected.POST("/sections", h.CreateSection)
		protected.PUT("/sections/reorder", h.ReorderSections)
		protected.DELETE("/sections/:id", h.DeleteSection)
		protected.PUT("/spotlight/:sectionId", h.UpdateSpotlight)
		protected.PUT("/grid/:sectionId", h.UpdateGrid)
		protected.POST("/grid/:sectionId/products", h.AddProduct)
		protected.PUT("/products/:id", h.UpdateProduct)
		protected.DELETE("/products/:id", h.DeleteProduct)
		protected.POST("/save-all", h.SaveAll)
	}

	return router, token
}

func doRequest(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func samplePage() *model.PageData {
	return &model.PageData{
		Hero: model.HeroView{Title: "Precision meets \nPerfection.", Subtitle: "Sub"},
		Sections: []model.SectionView{
			{
				ID:   "sec_spot",
				Type: model.SectionTypeSpotlight,
				Data: model.SpotlightData{
					Title:     "Summer",
					MediaType: model.MediaTypeImage,
					Media:     "banner.jpg",
					Image:     "banner.jpg",
				},
			},
			{
				ID:   "sec_grid",
				Type: model.SectionTypeGrid,
				Data: model.GridData{
					Title:       "Deals",
					GridColumns: 3,
					Products: []model.ProductView{
						{ID: 1, Name: "Watch", OldPrice: 100, NewPrice: 80, Link: "#", StrikeOldPrice: true, ShowOldPrice: true},
					},
				},
			},
		},
	}
}

func TestGetPageData_Shape(t *testing.T) {
	router, _ := setupRouter(t, &fakeService{page: samplePage()})

	w := doRequest(router, http.MethodGet, "/api/page-data", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Hero struct {
			Title string `json:"title"`
		} `json:"hero"`
		Sections []struct {
			ID   string          `json:"id"`
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "Precision meets \nPerfection.", body.Hero.Title)
	require.Len(t, body.Sections, 2)
	assert.Equal(t, "spotlight", body.Sections[0].Type)
	assert.Equal(t, "grid", body.Sections[1].Type)

	var grid struct {
		Products []struct {
			Link string `json:"link"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(body.Sections[1].Data, &grid))
	require.Len(t, grid.Products, 1)
	assert.Equal(t, "#", grid.Products[0].Link)
}

func TestPublicReadsNeedNoToken(t *testing.T) {
	router, _ := setupRouter(t, &fakeService{page: samplePage()})

	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/api/hero", "", "").Code)
	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/api/sections", "", "").Code)
}

func TestMutationsRequireToken(t *testing.T) {
	router, token := setupRouter(t, &fakeService{page: samplePage()})

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPut, "/api/hero", `{"title":"T"}`},
		{http.MethodPost, "/api/sections", `{"type":"grid"}`},
		{http.MethodDelete, "/api/sections/sec_1", ""},
		{http.MethodPost, "/api/save-all", `{"hero":{"title":"T"},"sections":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := doRequest(router, tt.method, tt.path, "", tt.body)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"Access token required"}`, w.Body.String())

			w = doRequest(router, tt.method, tt.path, "garbage-token", tt.body)
			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.JSONEq(t, `{"error":"Invalid or expired token"}`, w.Body.String())

			w = doRequest(router, tt.method, tt.path, token, tt.body)
			assert.NotEqual(t, http.StatusUnauthorized, w.Code)
			assert.NotEqual(t, http.StatusForbidden, w.Code)
		})
	}
}

func TestSaveAll_Success(t *testing.T) {
	svc := &fakeService{page: samplePage()}
	router, token := setupRouter(t, svc)

	payload := `{"hero":{"title":"T","subtitle":"S"},"sections":[{"id":"sec_1","type":"spotlight","data":{"title":"Hi"}}]}`
	w := doRequest(router, http.MethodPost, "/api/save-all", token, payload)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"All data saved successfully"}`, w.Body.String())
	require.NotNil(t, svc.replaced)
	assert.Equal(t, "T", svc.replaced.Hero.Title)
	require.Len(t, svc.replaced.Sections, 1)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", model.ErrValidation, http.StatusBadRequest},
		{"unknown section type", model.ErrUnknownSectionType, http.StatusBadRequest},
		{"section not found", model.ErrSectionNotFound, http.StatusNotFound},
		{"grid not found", model.ErrGridNotFound, http.StatusNotFound},
		{"product not found", model.ErrProductNotFound, http.StatusNotFound},
		{"storage failure", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, token := setupRouter(t, &fakeService{err: tt.err})

			w := doRequest(router, http.MethodDelete, "/api/sections/sec_1", token, "")
			assert.Equal(t, tt.wantStatus, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Contains(t, body, "error")
		})
	}
}

func TestErrorMapping_HidesStorageDetails(t *testing.T) {
	router, token := setupRouter(t, &fakeService{err: errors.New("pq: secret dsn leaked")})

	w := doRequest(router, http.MethodDelete, "/api/sections/sec_1", token, "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "dsn")
}

func TestUpdateProduct_BadIDParam(t *testing.T) {
	router, token := setupRouter(t, &fakeService{page: samplePage()})

	w := doRequest(router, http.MethodPut, "/api/products/abc", token, `{"name":"Watch"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSection_Response(t *testing.T) {
	router, token := setupRouter(t, &fakeService{page: samplePage()})

	w := doRequest(router, http.MethodPost, "/api/sections", token, `{"type":"grid"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"sec_new","type":"grid"}`, w.Body.String())
}

func TestInvalidJSONBody(t *testing.T) {
	router, token := setupRouter(t, &fakeService{page: samplePage()})

	w := doRequest(router, http.MethodPut, "/api/hero", token, `{"title":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
}
