// utils/response.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError sends a JSON error reply and aborts the request
func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
