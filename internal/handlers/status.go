package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Current device status
// @Description  Last AppInfo received from the device; placeholders ("?") until the first successful fetch.
// @Tags         status
// @Produce      json
// @Success      200  {object}  models.AppInfo
// @Router       /api/v1/status [get]
func (h *Handler) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Panel.AppInfo())
}

// @Summary      Refresh device status
// @Description  Fetches GET /status/ from the device. Failures are ignored and the previous AppInfo is returned.
// @Tags         status
// @Produce      json
// @Success      200  {object}  models.AppInfo
// @Router       /api/v1/status/refresh [post]
func (h *Handler) refreshStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Panel.RefreshStatus(deviceContext(c)))
}
