package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the token refresh route. Public: the
// refresh token itself is the credential.
func (rt *Router) RegisterAuthRoutes(r *gin.Engine) {
	r.POST("/auth/refresh", rt.handlers.Auth.RefreshToken)
}
