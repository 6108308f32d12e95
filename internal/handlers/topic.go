package handlers

import (
	"net/http"
	"strings"

	"bookclub/internal/db"
	"bookclub/internal/models"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct{}

func NewTopicHandler() *TopicHandler {
	return &TopicHandler{}
}

// List returns all topics ordered by name.
func (h *TopicHandler) List(c *gin.Context) {
	var topics []models.Topic
	if err := db.DB.Order("name ASC").Find(&topics).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, topics)
}

// Search matches topics by case-insensitive substring.
func (h *TopicHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusOK, []models.Topic{})
		return
	}

	var topics []models.Topic
	// LOWER + LIKE instead of ILIKE so sqlite behaves the same as postgres
	pattern := "%" + strings.ToLower(q) + "%"
	if err := db.DB.Where("LOWER(name) LIKE ?", pattern).
		Order("name ASC").
		Find(&topics).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, topics)
}

// Create adds a member-submitted topic.
func (h *TopicHandler) Create(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Name is required")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		jsonError(c, http.StatusBadRequest, "Name is required")
		return
	}

	topic := models.Topic{Name: req.Name}
	if err := db.DB.Create(&topic).Error; err != nil {
		jsonError(c, http.StatusConflict, "Topic already exists")
		return
	}

	c.JSON(http.StatusCreated, topic)
}
