package handlers

import (
	"errors"
	"net/http"
	"strings"

	"bookclub/internal/feed"
	"bookclub/internal/models"
	"bookclub/internal/services"

	"github.com/gin-gonic/gin"
)

type BookHandler struct{}

func NewBookHandler() *BookHandler {
	return &BookHandler{}
}

// List returns the book feed with aggregates. ?topic= filters by topic name,
// ?sort=featured applies the homepage ordering with the promoted second slot.
func (h *BookHandler) List(c *gin.Context) {
	books, err := services.ListBooks()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Database error")
		return
	}

	topic := strings.TrimSpace(c.Query("topic"))
	if c.Query("sort") == "featured" {
		books = feed.DisplayOrder(books, topic)
	} else if topic != "" {
		filtered := make([]services.BookSummary, 0, len(books))
		for _, b := range books {
			for _, name := range b.Topics {
				if name == topic {
					filtered = append(filtered, b)
					break
				}
			}
		}
		books = filtered
	}

	c.JSON(http.StatusOK, books)
}

type createBookRequest struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	Description   string `json:"description"`
	Link          string `json:"link"`
	Cover         string `json:"cover"`
	RecommendedBy string `json:"recommended_by"`
	UserID        uint   `json:"user_id"`
	Topics        []uint `json:"topics"`
}

// Create stores a recommendation. Title, author, submitter and at least one
// topic are mandatory, everything else is prefill sugar.
func (h *BookHandler) Create(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Title, author, user_id, and at least one topic are required")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Author = strings.TrimSpace(req.Author)
	if req.Title == "" || req.Author == "" || req.UserID == 0 || len(req.Topics) == 0 {
		jsonError(c, http.StatusBadRequest, "Title, author, user_id, and at least one topic are required")
		return
	}

	book := models.Book{
		UserID:        req.UserID,
		Title:         req.Title,
		Author:        req.Author,
		Description:   req.Description,
		Link:          req.Link,
		Cover:         req.Cover,
		RecommendedBy: req.RecommendedBy,
	}
	if err := services.CreateBook(&book, req.Topics); err != nil {
		if errors.Is(err, services.ErrNoTopics) {
			jsonError(c, http.StatusBadRequest, "Title, author, user_id, and at least one topic are required")
			return
		}
		jsonError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":             book.ID,
		"title":          book.Title,
		"author":         book.Author,
		"description":    book.Description,
		"link":           book.Link,
		"cover":          book.Cover,
		"recommended_by": book.RecommendedBy,
		"user_id":        book.UserID,
		"topics":         req.Topics,
	})
}

// Detail returns one book with its topics and counts.
func (h *BookHandler) Detail(c *gin.Context) {
	book, err := services.GetBook(paramID(c, "id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			jsonError(c, http.StatusNotFound, "Book not found")
			return
		}
		jsonError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, book)
}

type actorRequest struct {
	UserID uint `json:"user_id"`
}

// Delete removes a book. Only the member who submitted it may delete it.
func (h *BookHandler) Delete(c *gin.Context) {
	var req actorRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 {
		jsonError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	err := services.DeleteBook(paramID(c, "id"), req.UserID)
	switch {
	case errors.Is(err, services.ErrNotFound):
		jsonError(c, http.StatusNotFound, "Book not found")
	case errors.Is(err, services.ErrForbidden):
		jsonError(c, http.StatusForbidden, "You can only delete your own recommendations.")
	case err != nil:
		jsonError(c, http.StatusInternalServerError, "Database error")
	default:
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
