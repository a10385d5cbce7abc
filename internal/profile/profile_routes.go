package profile

import (
	"leavedesk/internal/middleware"
	"leavedesk/internal/policy"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	auth := r.Group("/auth")
	auth.Use(authMW)
	{
		auth.POST("/profiles/upsert", handler.Upsert)
		auth.GET("/profiles", middleware.RequireRoles(policy.RoleManager, policy.RoleAdmin), handler.GetAll)
	}

	admin := r.Group("/admin")
	admin.Use(authMW, middleware.RequireRoles(policy.RoleAdmin))
	{
		admin.GET("/users", handler.GetAll)
		admin.PATCH("/users/:id/role", handler.UpdateRole)
	}
}
