package calendar

import (
	"leavedesk/internal/middleware"
	"leavedesk/internal/policy"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	google := r.Group("/admin/google")

	// Google redirects the browser here without our auth header.
	google.GET("/oauth/callback", handler.OAuthCallback)

	protected := google.Group("")
	protected.Use(authMW, middleware.RequireRoles(policy.RoleAdmin))
	{
		protected.GET("/oauth/url", handler.OAuthURL)
		protected.GET("/settings", handler.GetSettings)
		protected.POST("/settings", handler.UpdateSettings)
	}
}
