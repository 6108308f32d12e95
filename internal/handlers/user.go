package handlers

import (
	"errors"
	"net/http"
	"strings"

	"bookclub/internal/db"
	"bookclub/internal/models"
	"bookclub/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

type nameRequest struct {
	Name string `json:"name"`
}

// Register creates a member from a display name. No password, no email:
// knowing a name is enough inside the club.
func (h *UserHandler) Register(c *gin.Context) {
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

	user := models.User{Name: req.Name}
	if err := db.DB.Create(&user).Error; err != nil {
		// Unique index on name, a duplicate is the only expected failure
		jsonError(c, http.StatusConflict, "Name already taken")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "name": user.Name})
}

// Login resolves a name back to an id. Lookup only, nothing is issued.
func (h *UserHandler) Login(c *gin.Context) {
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

	var user models.User
	if err := db.DB.Where("name = ?", req.Name).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			jsonError(c, http.StatusNotFound, "User not found")
			return
		}
		jsonError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID, "name": user.Name})
}

// List returns every member, for the voter picker on the client.
func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := db.DB.Select("id, name").Order("name ASC").Find(&users).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, users)
}

// Books returns the books a member submitted.
func (h *UserHandler) Books(c *gin.Context) {
	books, err := services.ListBooksByOwner(paramID(c, "id"))
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, books)
}

// Votes returns the books a member voted for.
func (h *UserHandler) Votes(c *gin.Context) {
	books, err := services.ListBooksVotedBy(paramID(c, "id"))
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, books)
}

// Statuses returns a member's raw reading status pairs.
func (h *UserHandler) Statuses(c *gin.Context) {
	entries, err := services.ListStatusesForUser(paramID(c, "id"))
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, entries)
}
