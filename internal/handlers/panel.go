package handlers

import (
	"net/http"
	"strings"

	"wifi_io_panel/internal/web"

	"github.com/gin-gonic/gin"
)

const (
	appPath      = "/app/"
	staticPrefix = "/static"
)

func (h *Handler) redirectToApp(c *gin.Context) {
	c.Redirect(http.StatusMovedPermanently, appPath)
}

// app serves embedded assets under /app/static and the panel page for any
// other /app path.
func (h *Handler) app(c *gin.Context) {
	p := c.Param("path")
	if strings.HasPrefix(p, staticPrefix+"/") {
		c.FileFromFS(strings.TrimPrefix(p, staticPrefix), h.static)
		return
	}

	c.HTML(http.StatusOK, web.IndexTemplate, gin.H{
		"Version":  PanelVersion,
		"AppInfo":  h.services.Panel.AppInfo(),
		"GpioList": h.services.Panel.GpioList(),
		"Messages": h.services.Messages,
	})
}
