package approval

import (
	"leavedesk/internal/middleware"
	"leavedesk/internal/policy"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	approvals := r.Group("/approvals")
	approvals.Use(authMW, middleware.RequireRoles(policy.RoleManager, policy.RoleAdmin))
	{
		approvals.GET("", handler.ListQueue)
		approvals.GET("/pending", handler.ListPending)
		approvals.POST("/:id/decision", handler.Decide)
		approvals.PUT("/:id", handler.DecideByStatus)
	}
}
