package utils

import (
	"hotel-cancellation/middleware"

	"github.com/gin-gonic/gin"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

// JSONError echoes the request id, when the logger middleware set one, so a
// client report can be matched to the server log line.
func JSONError(c *gin.Context, code int, message string) {
	body := gin.H{"success": false, "error": message}
	if rid := c.GetString(middleware.RequestIDKey); rid != "" {
		body["request_id"] = rid
	}
	c.JSON(code, body)
}
