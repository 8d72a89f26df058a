package middleware

import (
	"fmt"
	"net/http"

	"cricauction-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into the 500 response envelope
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.WithContext(c.Request.Context()).
			WithField("panic", fmt.Sprint(recovered)).
			Error("Recovered from panic")

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal Server Error",
		})
	})
}
