package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger logs every request at debug level once it has been served.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	h.log.Debugw("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration", time.Since(start),
	)
}
