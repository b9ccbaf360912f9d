package ginutil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BadRequest writes a 400 with a stable error code.
func BadRequest(c *gin.Context, code string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": code})
}

// NotFound writes a 404 with a stable error code.
func NotFound(c *gin.Context, code string) {
	c.JSON(http.StatusNotFound, gin.H{"error": code})
}

// Conflict writes a 409 with a stable error code.
func Conflict(c *gin.Context, code string) {
	c.JSON(http.StatusConflict, gin.H{"error": code})
}

// ServerErr writes a 500 with a stable error code.
func ServerErr(c *gin.Context, code string) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": code})
}
