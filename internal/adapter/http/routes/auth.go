package routes

import (
	"insurance_xpto/internal/adapter/http/handlers"
	"insurance_xpto/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func addPublicAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler, limiter *middleware.IPRateLimiter) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", h.Register)
		if limiter != nil {
			auth.POST("/login", limiter.Middleware(), h.Login)
		} else {
			auth.POST("/login", h.Login)
		}
	}
}

func addSessionRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	rg.POST(PathAuth+"/logout", h.Logout)
	rg.POST(PathAgents, h.CreateAgent)
}
