package approval

import (
	"net/http"

	"leavedesk/internal/policy"
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
	l := zap.L().Named("approval.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("approval request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) ListQueue(c *gin.Context) {
	role, _ := policy.ParseRole(c.GetString("role"))
	resp, err := h.service.ListQueue(c.Request.Context(), role)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) ListPending(c *gin.Context) {
	role, _ := policy.ParseRole(c.GetString("role"))
	resp, err := h.service.ListPending(c.Request.Context(), role)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Decide(c *gin.Context) {
	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	h.decide(c, req)
}

// DecideByStatus serves the legacy PUT route. Its body names the field
// "status" instead of "decision", but the vocabulary is the same, so it
// feeds the shared decision path directly.
func (h *Handler) DecideByStatus(c *gin.Context) {
	var legacy StatusDecisionRequest
	if err := c.ShouldBindJSON(&legacy); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	h.decide(c, DecisionRequest{Decision: legacy.Status, Note: legacy.Note})
}

func (h *Handler) decide(c *gin.Context, req DecisionRequest) {
	role, _ := policy.ParseRole(c.GetString("role"))
	resp, err := h.service.Decide(c.Request.Context(), c.GetString("user_id"), role, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
