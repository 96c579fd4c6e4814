package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/stwalsh4118/cadastre/internal/errors"
	"github.com/stwalsh4118/cadastre/internal/middleware"
	"github.com/stwalsh4118/cadastre/internal/models"
	"github.com/stwalsh4118/cadastre/internal/registry"
	"github.com/stwalsh4118/cadastre/internal/services"
	"github.com/stwalsh4118/cadastre/internal/tree"
)

// Response views.
const (
	ViewJSON = "json"
	ViewTree = "tree"
)

// MaxRegionDepth bounds region tree expansion per request.
const MaxRegionDepth = 3

// CadastreHandler handles object, search and region requests.
type CadastreHandler struct {
	service     services.CadastreService
	parallelism int
}

// NewCadastreHandler creates a new CadastreHandler instance. parallelism
// bounds concurrent upstream calls when a region tree is expanded.
func NewCadastreHandler(service services.CadastreService, parallelism int) *CadastreHandler {
	return &CadastreHandler{
		service:     service,
		parallelism: parallelism,
	}
}

// ViewRequest selects the response view.
type ViewRequest struct {
	View string `form:"view" binding:"omitempty,oneof=json tree"`
}

// ObjectByNumberRequest represents the query parameters for the cadastral number lookup.
type ObjectByNumberRequest struct {
	CadNum string `form:"cadnum" binding:"required,cadnum"`
	View   string `form:"view" binding:"omitempty,oneof=json tree"`
}

// NumberSearchRequest represents the query parameters for the number search.
type NumberSearchRequest struct {
	Number string `form:"number" binding:"required"`
	View   string `form:"view" binding:"omitempty,oneof=json tree"`
}

// AddressSearchRequest represents the query parameters for the address search.
type AddressSearchRequest struct {
	MacroRegionID string `form:"macroRegionId" binding:"required"`
	RegionID      string `form:"regionId"`
	SettlementID  string `form:"settlementId"`
	Street        string `form:"street"`
	House         string `form:"house"`
	View          string `form:"view" binding:"omitempty,oneof=json tree"`
}

// RegionsRequest represents the query parameters for region listings.
type RegionsRequest struct {
	Depth int    `form:"depth" binding:"omitempty,min=0,max=3"`
	View  string `form:"view" binding:"omitempty,oneof=json tree"`
}

// ObjectResponse wraps a single cadastral object.
type ObjectResponse struct {
	Object *models.CadastralObject `json:"object"`
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []models.SearchResult `json:"results"`
	Count   int                   `json:"count"`
}

// RegionsResponse wraps a flat region listing.
type RegionsResponse struct {
	Regions []models.Region `json:"regions"`
	Count   int             `json:"count"`
}

// RegionTreeResponse wraps an expanded region tree.
type RegionTreeResponse struct {
	Regions []*services.RegionBranch `json:"regions"`
	Depth   int                      `json:"depth"`
}

// TreeResponse wraps any result rendered as a labelled tree.
type TreeResponse struct {
	Tree []*tree.Node `json:"tree"`
}

// ObjectByID handles GET /api/v1/objects/:id endpoint.
func (h *CadastreHandler) ObjectByID(c *gin.Context) {
	var req ViewRequest
	if !bindQuery(c, &req) {
		return
	}

	id := c.Param("id")
	obj, err := h.service.LookupByID(c.Request.Context(), id)
	h.respondObject(c, id, req.View, obj, err)
}

// ObjectByNumber handles GET /api/v1/objects?cadnum= endpoint.
func (h *CadastreHandler) ObjectByNumber(c *gin.Context) {
	var req ObjectByNumberRequest
	if !bindQuery(c, &req) {
		return
	}

	obj, err := h.service.LookupByCadastralNumber(c.Request.Context(), req.CadNum)
	h.respondObject(c, req.CadNum, req.View, obj, err)
}

// ResolveSearchResult handles GET /api/v1/search/results/:id/object endpoint.
func (h *CadastreHandler) ResolveSearchResult(c *gin.Context) {
	var req ViewRequest
	if !bindQuery(c, &req) {
		return
	}

	result := models.SearchResult{ObjectID: c.Param("id")}
	obj, err := h.service.ResolveSearchResult(c.Request.Context(), result)
	h.respondObject(c, result.ID(), req.View, obj, err)
}

// SearchByNumber handles GET /api/v1/search/number endpoint.
func (h *CadastreHandler) SearchByNumber(c *gin.Context) {
	var req NumberSearchRequest
	if !bindQuery(c, &req) {
		return
	}

	results, err := h.service.SearchByNumber(c.Request.Context(), req.Number)
	h.respondSearch(c, req.Number, req.View, results, err)
}

// SearchByAddress handles GET /api/v1/search/address endpoint.
func (h *CadastreHandler) SearchByAddress(c *gin.Context) {
	var req AddressSearchRequest
	if !bindQuery(c, &req) {
		return
	}

	query := registry.AddressQuery{
		MacroRegionID: req.MacroRegionID,
		RegionID:      req.RegionID,
		SettlementID:  req.SettlementID,
		Street:        req.Street,
		House:         req.House,
	}
	results, err := h.service.SearchByAddress(c.Request.Context(), query)
	h.respondSearch(c, query.Encode(), req.View, results, err)
}

// MacroRegions handles GET /api/v1/regions endpoint.
func (h *CadastreHandler) MacroRegions(c *gin.Context) {
	var req RegionsRequest
	if !bindQuery(c, &req) {
		return
	}

	regions, err := h.service.ListMacroRegions(c.Request.Context())
	h.respondRegions(c, "regions", req, regions, err)
}

// ChildRegions handles GET /api/v1/regions/:id/children endpoint.
func (h *CadastreHandler) ChildRegions(c *gin.Context) {
	var req RegionsRequest
	if !bindQuery(c, &req) {
		return
	}

	id := c.Param("id")
	regions, err := h.service.RegionChildren(c.Request.Context(), models.Region{ID: id})
	h.respondRegions(c, id, req, regions, err)
}

func (h *CadastreHandler) respondObject(c *gin.Context, key, view string, obj *models.CadastralObject, err error) {
	if err != nil {
		respondLookupError(c, err)
		return
	}
	if obj == nil {
		apierrors.NotFound(c, "No cadastral object found for "+key)
		return
	}

	if view == ViewTree {
		c.JSON(http.StatusOK, TreeResponse{Tree: tree.Build(key, obj)})
		return
	}
	c.JSON(http.StatusOK, ObjectResponse{Object: obj})
}

func (h *CadastreHandler) respondSearch(c *gin.Context, key, view string, results []models.SearchResult, err error) {
	if err != nil {
		respondLookupError(c, err)
		return
	}

	if log := middleware.GetLogger(c); log != nil {
		log.Info("Search completed", map[string]interface{}{
			"key":   key,
			"count": len(results),
		})
	}

	if view == ViewTree {
		c.JSON(http.StatusOK, TreeResponse{Tree: tree.Build(key, results)})
		return
	}
	c.JSON(http.StatusOK, SearchResponse{Results: results, Count: len(results)})
}

func (h *CadastreHandler) respondRegions(c *gin.Context, header string, req RegionsRequest, regions []models.Region, err error) {
	if err != nil {
		respondLookupError(c, err)
		return
	}

	if req.Depth == 0 {
		if req.View == ViewTree {
			c.JSON(http.StatusOK, TreeResponse{Tree: tree.Build(header, regions)})
			return
		}
		c.JSON(http.StatusOK, RegionsResponse{Regions: regions, Count: len(regions)})
		return
	}

	branches, err := services.ExpandRegions(c.Request.Context(), h.service, regions, req.Depth, h.parallelism)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	if req.View == ViewTree {
		c.JSON(http.StatusOK, TreeResponse{Tree: tree.Build(header, branches)})
		return
	}
	c.JSON(http.StatusOK, RegionTreeResponse{Regions: branches, Depth: req.Depth})
}

// bindQuery binds query parameters and writes the error response on failure.
func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		// Check if it's a validation error
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			apierrors.ValidationError(c, validationErrors)
			return false
		}
		// Generic bad request for other binding errors
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return false
	}
	return true
}

// respondLookupError maps a facade error onto an HTTP response.
func respondLookupError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrInvalidInput) {
		apierrors.BadRequest(c, err.Error(), nil)
		return
	}
	if errors.Is(err, services.ErrMalformedResponse) {
		apierrors.BadGateway(c, apierrors.ErrUpstreamMalformed, "Registry returned a malformed response", err, nil)
		return
	}

	switch category := registry.CategoryOf(err); category {
	case "":
		apierrors.InternalServerError(c, "Failed to query the cadastral registry", err)
	case registry.CategoryNotFound:
		apierrors.NotFound(c, "Registry has no such record")
	case registry.CategoryTimeout:
		apierrors.GatewayTimeout(c, "Registry did not respond in time", err)
	default:
		apierrors.BadGateway(c, apierrors.ErrUpstreamUnavailable, "Registry request failed", err,
			map[string]interface{}{"category": string(category)})
	}
}
