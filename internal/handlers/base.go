package handlers

import (
	"bookclub/internal/utils"

	"github.com/gin-gonic/gin"
)

// Error helper, all endpoints share the same envelope
func jsonError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// paramID parses a numeric path parameter, returning 0 for garbage input.
func paramID(c *gin.Context, name string) uint {
	id := utils.StringToInt(c.Param(name))
	if id < 0 {
		return 0
	}
	return uint(id)
}
