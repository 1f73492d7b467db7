// internal/handlers/logrecord/logs_handler.go
package logrecord

import (
	"net/http"

	"hotel-admin-service/internal/domain/logrecord"
	"hotel-admin-service/internal/middleware"
	"hotel-admin-service/internal/pkg/response"
	service "hotel-admin-service/internal/service/logrecord"

	"github.com/gin-gonic/gin"
)

type LogHandler struct {
	logService *service.LogService
}

func NewLogHandler(logService *service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// ListLogs returns one page of automation logs, optionally filtered by
// agent, result and platform.
func (h *LogHandler) ListLogs(c *gin.Context) {
	sess := middleware.MustGetSession(c)

	var filters logrecord.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters")
		return
	}
	filters.Clamp()

	list, err := h.logService.List(c.Request.Context(), sess, filters)
	if err != nil {
		response.ProxyError(c, err, "could not fetch logs")
		return
	}

	response.JSON(c, http.StatusOK, list)
}

// GetLog returns one log record unchanged.
func (h *LogHandler) GetLog(c *gin.Context) {
	sess := middleware.MustGetSession(c)

	raw, err := h.logService.Get(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		response.ProxyError(c, err, "could not fetch logs")
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}
