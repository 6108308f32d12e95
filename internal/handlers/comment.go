package handlers

import (
	"errors"
	"net/http"
	"strings"

	"bookclub/internal/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

// List returns a book's comments, newest first, with render-ready HTML.
func (h *CommentHandler) List(c *gin.Context) {
	views, err := services.ListComments(paramID(c, "id"))
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, views)
}

// Count returns the number of comments under a book, for badges.
func (h *CommentHandler) Count(c *gin.Context) {
	count, err := services.CountComments(paramID(c, "id"))
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

type createCommentRequest struct {
	UserID  uint   `json:"user_id"`
	Content string `json:"content"`
}

// Create stores a comment and echoes it back with the author attached.
func (h *CommentHandler) Create(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "user_id and content are required")
		return
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.UserID == 0 || req.Content == "" {
		jsonError(c, http.StatusBadRequest, "user_id and content are required")
		return
	}

	comment, err := services.CreateComment(paramID(c, "id"), req.UserID, req.Content)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			jsonError(c, http.StatusNotFound, "Book not found")
			return
		}
		jsonError(c, http.StatusInternalServerError, "Database error")
		return
	}

	view, err := services.GetCommentView(comment.ID)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusCreated, view)
}

// Delete removes a comment; only its author may do so.
func (h *CommentHandler) Delete(c *gin.Context) {
	var req actorRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 {
		jsonError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	err := services.DeleteComment(paramID(c, "id"), paramID(c, "commentId"), req.UserID)
	switch {
	case errors.Is(err, services.ErrNotFound):
		jsonError(c, http.StatusNotFound, "Comment not found")
	case errors.Is(err, services.ErrForbidden):
		jsonError(c, http.StatusForbidden, "You can only delete your own comments")
	case err != nil:
		jsonError(c, http.StatusInternalServerError, "Database error")
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Comment deleted"})
	}
}
