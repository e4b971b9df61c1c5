package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const errInvalidPin = "invalid pin: must be a decimal integer"

// @Summary      GPIO list
// @Tags         gpio
// @Produce      json
// @Success      200  {object}  map[string][]int  "gpio"
// @Router       /api/v1/gpio [get]
func (h *Handler) getGpioList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"gpio": h.services.Panel.GpioList()})
}

// @Summary      Push a GPIO pin
// @Description  Sends GET /api/gpio/push/{pin} to the device and returns the toast. Device failures still answer 200 with an ERROR toast.
// @Tags         gpio
// @Produce      json
// @Param        pin  path      int  true  "GPIO number"
// @Success      200  {object}  models.Notification
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/gpio/{pin}/push [post]
func (h *Handler) pushGPIO(c *gin.Context) {
	pin, err := strconv.Atoi(c.Param("pin"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidPin})
		return
	}
	c.JSON(http.StatusOK, h.services.Control.TriggerPin(deviceContext(c), pin))
}

// deviceContext keeps request values but not cancellation: once sent, a
// device call runs to completion even if the browser goes away.
func deviceContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}
