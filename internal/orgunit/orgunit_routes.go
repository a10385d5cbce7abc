package orgunit

import (
	"leavedesk/internal/middleware"
	"leavedesk/internal/policy"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts one explicit route set per kind. A single :kind
// wildcard would collide with the other /admin routes in gin's router, so
// each collection gets its own literal path segment.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	admin := r.Group("/admin")
	admin.Use(authMW, middleware.RequireRoles(policy.RoleAdmin))

	for kind := range Kinds {
		admin.GET("/"+kind, handler.List(kind))
		admin.POST("/"+kind, handler.Create(kind))
		admin.PATCH("/"+kind+"/:id", handler.Update(kind))
		admin.DELETE("/"+kind+"/:id", handler.Delete(kind))
	}
}
