package handler

import (
	"github.com/estoque/backend/internal/domain/catalog"
	"github.com/gin-gonic/gin"
)

// MaterialHandler serves the fixed material catalog
type MaterialHandler struct {
	BaseHandler
	catalog *catalog.Catalog
}

// NewMaterialHandler creates a new material handler
func NewMaterialHandler(cat *catalog.Catalog) *MaterialHandler {
	return &MaterialHandler{catalog: cat}
}

// MaterialResponse is the API representation of a catalog material
type MaterialResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// List returns the catalog in its fixed display order
func (h *MaterialHandler) List(c *gin.Context) {
	materials := h.catalog.Materials()
	out := make([]MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, MaterialResponse{ID: m.ID, Name: m.Name})
	}
	h.Success(c, out)
}

// RegisterRoutes registers the material routes
func (h *MaterialHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/materials", h.List)
}
