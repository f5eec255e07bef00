package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ValidateUUIDParam rejects requests whose named path parameter is not
// a well-formed UUID, before any handler or lookup runs
func ValidateUUIDParam(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := uuid.Parse(c.Param(param)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
			c.Abort()
			return
		}
		c.Next()
	}
}
