package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"wifi_io_panel/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"
	errListFailed  = "failed to load notifications"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// @Summary      List notifications
// @Description  Recent toasts kept in memory. A date-only 'to' is treated as end of day inclusive.
// @Tags         notifications
// @Produce      json
// @Param        from   query   string  false  "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"
// @Param        to     query   string  false  "End of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"
// @Param        level  query   string  false  "Toast level"  Enums(SUCCESS,ERROR)
// @Success      200    {object}  map[string]interface{}  "count, notifications"
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/v1/notifications [get]
func (h *Handler) getNotifications(c *gin.Context) {
	var (
		from  time.Time
		to    time.Time
		level = strings.ToUpper(strings.TrimSpace(c.Query("level")))
		err   error
	)
	if qs := c.Query("from"); qs != "" {
		from, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return
		}
	}
	if qs := c.Query("to"); qs != "" {
		to, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return
		}
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}

	items, err := h.services.Notifications.List(c.Request.Context(), service.NotificationFilter{
		From:  from,
		To:    to,
		Level: level,
	})
	if err != nil {
		if service.IsFilterError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errListFailed, "notifications_list_failed", err, "level", level)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":         len(items),
		"notifications": items,
	})
}

// logAndJSONError logs err under logKey and replies with userMsg.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time format %q", s)
}
