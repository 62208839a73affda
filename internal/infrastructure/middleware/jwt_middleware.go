package middleware

import (
	"net/http"
	"strings"

	"crusade_campaign_server/pkg/errorx"
	"crusade_campaign_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is the Gin context key under which the authenticated
// user's uuid is stored.
const ContextUserKey = "user_id"

// JWTAuth validates the Bearer access token and stores the caller's
// identity in the request context.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "please log in first",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "malformed token, expected a Bearer token",
			})
			return
		}

		claims, err := jwt.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "token expired or invalid, please log in again",
			})
			return
		}

		// Refresh tokens must not be used against regular endpoints.
		if claims.Subject != "access_token" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "an access token is required for this endpoint",
			})
			return
		}

		c.Set(ContextUserKey, claims.UserID)
		c.Next()
	}
}
