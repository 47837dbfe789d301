package dashboard

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("", middleware.RateLimitByIP(10, 30), h.Get)
		dashboard.GET("/search", h.Search)
	}
}
