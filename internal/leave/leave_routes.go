package leave

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, idempotencyMW gin.HandlerFunc) {
	leaves := r.Group("/leaves")
	leaves.Use(authMW)
	{
		leaves.POST("", idempotencyMW, handler.Submit)
		leaves.GET("", handler.GetOwn)
		leaves.GET("/types", handler.AssignedTypes)
		leaves.DELETE("/:id", handler.Cancel)
	}
}
