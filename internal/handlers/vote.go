package handlers

import (
	"errors"
	"net/http"

	"bookclub/internal/services"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct{}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{}
}

type voteRequest struct {
	VoterID uint `json:"voter_id"`
}

// Cast records a vote. Repeating the request is harmless, the unique index
// keeps one row per (book, voter).
func (h *VoteHandler) Cast(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.VoterID == 0 {
		jsonError(c, http.StatusBadRequest, "voter_id is required")
		return
	}

	created, err := services.CastVote(paramID(c, "id"), req.VoterID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			jsonError(c, http.StatusNotFound, "Book not found")
			return
		}
		jsonError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "Vote recorded"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Already voted"})
	}
}

// Retract withdraws a vote. Removing a vote that was never cast succeeds.
func (h *VoteHandler) Retract(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.VoterID == 0 {
		jsonError(c, http.StatusBadRequest, "voter_id is required")
		return
	}

	if err := services.RetractVote(paramID(c, "id"), req.VoterID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			jsonError(c, http.StatusNotFound, "Book not found")
			return
		}
		jsonError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
