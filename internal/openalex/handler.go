package openalex

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"researchspark-backend/internal/shared/metrics"
	"researchspark-backend/internal/shared/server/respond"
)

// Handler exposes read-only literature search endpoints.
type Handler struct {
	Client *Client
}

// NewHandler constructs a Handler.
func NewHandler(client *Client) *Handler {
	return &Handler{Client: client}
}

// RegisterRoutes attaches literature routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/literature", h.list)
	rg.GET("/literature/search", h.search)
	rg.GET("/literature/fulltext", h.fullText)
}

func (h *Handler) list(c *gin.Context) {
	page := intQuery(c, "page", 1)
	perPage := intQuery(c, "perPage", defaultPerPage)
	sortBy := c.Query("sort")

	works, err := h.Client.InstitutionWorks(c.Request.Context(), page, perPage, sortBy)
	if err != nil {
		metrics.IncLiteratureRequest("list", false)
		respond.Error(c, http.StatusBadGateway, "literature_unavailable", "failed to fetch literature index", nil)
		return
	}
	metrics.IncLiteratureRequest("list", true)
	respond.OK(c, works)
}

func (h *Handler) search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "q is required", nil)
		return
	}
	page := intQuery(c, "page", 1)
	perPage := intQuery(c, "perPage", defaultPerPage)

	works, err := h.Client.Search(c.Request.Context(), query, page, perPage)
	if err != nil {
		metrics.IncLiteratureRequest("search", false)
		respond.Error(c, http.StatusBadGateway, "literature_unavailable", "failed to search literature index", nil)
		return
	}
	metrics.IncLiteratureRequest("search", true)
	respond.OK(c, works)
}

func (h *Handler) fullText(c *gin.Context) {
	doi := c.Query("doi")
	if doi == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "doi is required", nil)
		return
	}
	respond.OK(c, gin.H{"url": h.Client.FullTextURL(c.Request.Context(), doi)})
}

func intQuery(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 1 {
		return def
	}
	return parsed
}
