package handlers

import (
	"net/http"
	"strings"

	"bookclub/internal/db"
	"bookclub/internal/models"
	"bookclub/internal/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog *services.CatalogService
}

func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type catalogResult struct {
	services.BookCandidate
	SuggestedTopicIDs []uint `json:"suggested_topic_ids"`
}

// Search proxies the external catalog and annotates each hit with topic
// suggestions derived from its categories.
func (h *CatalogHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		jsonError(c, http.StatusBadRequest, "q is required")
		return
	}

	candidates, err := h.catalog.Search(c.Request.Context(), q, 5)
	if err != nil {
		jsonError(c, http.StatusBadGateway, "Catalog search failed")
		return
	}

	var topics []models.Topic
	if err := db.DB.Order("id ASC").Find(&topics).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "Database error")
		return
	}

	results := make([]catalogResult, len(candidates))
	for i, candidate := range candidates {
		results[i] = catalogResult{
			BookCandidate:     candidate,
			SuggestedTopicIDs: services.SuggestTopics(candidate.Categories, topics),
		}
	}
	c.JSON(http.StatusOK, results)
}
