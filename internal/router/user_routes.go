package router

import (
	"github.com/gin-gonic/gin"

	"crusade_campaign_server/internal/infrastructure/middleware"
)

// RegisterUserRoutes registers the account routes. Login and
// registration are public; logout needs the session it ends.
func (rt *Router) RegisterUserRoutes(r *gin.Engine) {
	r.POST("/login", rt.handlers.User.Login)
	r.POST("/register", rt.handlers.User.Register)

	userGroup := r.Group("/user")
	userGroup.Use(middleware.JWTAuth())
	{
		userGroup.POST("/logout", rt.handlers.User.Logout)
	}
}
