package orgunit

import (
	"net/http"

	"leavedesk/internal/shared/apperror"
	"leavedesk/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("orgunit.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("orgunit.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("org unit request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// List, Create, Update and Delete are bound per kind at route registration,
// so the kind is fixed at startup rather than read from the path.

func (h *Handler) List(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := h.service.List(c.Request.Context(), kind)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp)
	}
}

func (h *Handler) Create(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUnitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
			return
		}

		resp, err := h.service.Create(c.Request.Context(), kind, req)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusCreated, resp)
	}
}

func (h *Handler) Update(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateUnitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
			return
		}

		resp, err := h.service.Update(c.Request.Context(), kind, c.Param("id"), req)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp)
	}
}

func (h *Handler) Delete(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.service.Delete(c.Request.Context(), kind, c.Param("id")); err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"deleted": true})
	}
}
