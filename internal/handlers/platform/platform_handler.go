// internal/handlers/platform/platform_handler.go
package platform

import (
	"io"
	"net/http"

	"hotel-admin-service/internal/domain/pagination"
	"hotel-admin-service/internal/domain/platform"
	"hotel-admin-service/internal/middleware"
	"hotel-admin-service/internal/pkg/response"
	service "hotel-admin-service/internal/service/platform"

	"github.com/gin-gonic/gin"
)

type PlatformHandler struct {
	platformService *service.PlatformService
}

func NewPlatformHandler(platformService *service.PlatformService) *PlatformHandler {
	return &PlatformHandler{platformService: platformService}
}

// ListPlatforms returns one page of credential records.
func (h *PlatformHandler) ListPlatforms(c *gin.Context) {
	sess := middleware.MustGetSession(c)

	var q pagination.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters")
		return
	}
	q.Clamp()

	list, err := h.platformService.List(c.Request.Context(), sess, q)
	if err != nil {
		response.ProxyError(c, err, "could not fetch platform info")
		return
	}

	response.JSON(c, http.StatusOK, list)
}

// GetPlatform returns one credential record including the revealed
// login password. The backend body passes through unchanged.
func (h *PlatformHandler) GetPlatform(c *gin.Context) {
	sess := middleware.MustGetSession(c)

	raw, err := h.platformService.Get(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		response.ProxyError(c, err, "could not fetch platform info")
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}

// CreatePlatform stores a new credential record. A missing status defaults
// to active before the request is forwarded.
func (h *PlatformHandler) CreatePlatform(c *gin.Context) {
	sess := middleware.MustGetSession(c)

	var req platform.CreatePlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid input")
		return
	}

	raw, err := h.platformService.Create(c.Request.Context(), sess, &req)
	if err != nil {
		response.ProxyError(c, err, "could not save platform info")
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}

// UpdatePlatform forwards the JSON body verbatim.
func (h *PlatformHandler) UpdatePlatform(c *gin.Context) {
	sess := middleware.MustGetSession(c)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid input")
		return
	}

	raw, err := h.platformService.Update(c.Request.Context(), sess, c.Param("id"), body)
	if err != nil {
		response.ProxyError(c, err, "could not update platform info")
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}

// DeletePlatform removes a credential record and answers with a fixed
// acknowledgment once the backend confirms.
func (h *PlatformHandler) DeletePlatform(c *gin.Context) {
	sess := middleware.MustGetSession(c)

	if err := h.platformService.Delete(c.Request.Context(), sess, c.Param("id")); err != nil {
		response.ProxyError(c, err, "could not delete platform info")
		return
	}

	response.JSON(c, http.StatusOK, platform.DeleteResponse{Message: "deleted"})
}
