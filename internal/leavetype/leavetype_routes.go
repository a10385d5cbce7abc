package leavetype

import (
	"leavedesk/internal/middleware"
	"leavedesk/internal/policy"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	admin := r.Group("/admin")
	admin.Use(authMW, middleware.RequireRoles(policy.RoleAdmin))
	{
		admin.GET("/leave-types", handler.GetAll)
		admin.POST("/leave-types", handler.Create)
		admin.PATCH("/leave-types/:id", handler.Update)
		admin.DELETE("/leave-types/:id", handler.Delete)

		admin.GET("/user-leave-types", handler.GetAssignments)
		admin.POST("/user-leave-types", handler.Assign)
		admin.DELETE("/user-leave-types", handler.Unassign)
		admin.GET("/user-leave-assignments", handler.GetAssignmentDetails)
	}
}
