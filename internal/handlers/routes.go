package handlers

import "github.com/gin-gonic/gin"

// RegisterCadastreRoutes mounts the lookup routes on an /api/v1 group.
func RegisterCadastreRoutes(v1 *gin.RouterGroup, h *CadastreHandler) {
	objects := v1.Group("/objects")
	{
		objects.GET("", h.ObjectByNumber)
		objects.GET("/:id", h.ObjectByID)
	}

	search := v1.Group("/search")
	{
		search.GET("/number", h.SearchByNumber)
		search.GET("/address", h.SearchByAddress)
		search.GET("/results/:id/object", h.ResolveSearchResult)
	}

	regions := v1.Group("/regions")
	{
		regions.GET("", h.MacroRegions)
		regions.GET("/:id/children", h.ChildRegions)
	}
}

// RegisterJournalRoutes mounts the lookup journal listing on an /api/v1 group.
func RegisterJournalRoutes(v1 *gin.RouterGroup, h *JournalHandler) {
	v1.GET("/journal", h.Recent)
}
