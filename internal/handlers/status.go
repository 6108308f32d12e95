package handlers

import (
	"errors"
	"net/http"

	"bookclub/internal/models"
	"bookclub/internal/services"

	"github.com/gin-gonic/gin"
)

type StatusHandler struct{}

func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

type statusRequest struct {
	UserID uint              `json:"user_id"`
	Status models.StatusKind `json:"status"`
}

// Add asserts one reading status for a book. A member may hold several
// kinds on the same book at once.
func (h *StatusHandler) Add(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 || !req.Status.Valid() {
		jsonError(c, http.StatusBadRequest, "user_id and valid status are required")
		return
	}

	if err := services.AddStatus(paramID(c, "id"), req.UserID, req.Status); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			jsonError(c, http.StatusNotFound, "Book not found")
			return
		}
		jsonError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// Remove withdraws one reading status, a no-op if it was never set.
func (h *StatusHandler) Remove(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 || !req.Status.Valid() {
		jsonError(c, http.StatusBadRequest, "user_id and valid status are required")
		return
	}

	if err := services.RemoveStatus(paramID(c, "id"), req.UserID, req.Status); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			jsonError(c, http.StatusNotFound, "Book not found")
			return
		}
		jsonError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
