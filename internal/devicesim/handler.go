package devicesim

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"wifi_io_panel/internal/models"

	"github.com/gin-gonic/gin"
)

// The board answers with this content type, not application/json.
const contentTypeJSON = "text/json"

const statusNG = "NG"

const (
	statusPrefix = "/status"
	apiPrefix    = "/api"
)

// Routes mirrors the board's URI table: /status* and /api* are prefix
// matches, so /status, /status/ and /status.json all answer.
func (b *Board) Routes() *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery())
	router.GET(statusPrefix+"/*any", b.handleStatus)
	router.GET(apiPrefix+"/*path", b.handleAPI)
	router.NoRoute(b.handlePrefix)
	return router
}

// handlePrefix catches paths the router's segment matching misses.
func (b *Board) handlePrefix(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		c.Status(http.StatusNotFound)
		return
	}
	switch p := c.Request.URL.Path; {
	case strings.HasPrefix(p, statusPrefix):
		b.handleStatus(c)
	case strings.HasPrefix(p, apiPrefix):
		b.handleAPI(c)
	default:
		c.Status(http.StatusNotFound)
	}
}

func (b *Board) handleStatus(c *gin.Context) {
	writeJSON(c, b.Status())
}

// handleAPI treats the last path segment as the GPIO number, like the
// firmware does for /api/gpio/push/{pin}.
func (b *Board) handleAPI(c *gin.Context) {
	path := c.Request.URL.Path
	res := models.ControlResult{Status: models.ControlStatusOK}

	i := strings.LastIndex(path, "/")
	pin, err := strconv.Atoi(path[i+1:])
	if err == nil {
		err = b.Push(pin)
	}
	if err != nil {
		b.log.Warnw("gpio_push_rejected", "path", path, "err", err)
		res.Status = statusNG
	}
	writeJSON(c, res)
}

func writeJSON(c *gin.Context, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, contentTypeJSON, body)
}
