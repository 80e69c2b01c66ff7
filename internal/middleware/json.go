package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/httperr"
)

// RequireJSON rejects requests whose body is not declared as JSON.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() != binding.MIMEJSON {
			httperr.BadRequest(c, "Content-Type debe ser application/json")
			c.Abort()
			return
		}
		c.Next()
	}
}
