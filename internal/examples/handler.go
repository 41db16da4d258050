package examples

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"researchspark-backend/internal/shared/server/respond"
)

// Handler serves the curated example catalog.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches example routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/examples", h.list)
	rg.GET("/examples/:id", h.get)
}

func (h *Handler) list(c *gin.Context) {
	respond.OK(c, gin.H{"examples": All()})
}

func (h *Handler) get(c *gin.Context) {
	ex, ok := ByID(c.Param("id"))
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", "example not found", nil)
		return
	}
	respond.OK(c, ex)
}
