package handler

import (
	"crusade_campaign_server/internal/dto/request"
	"crusade_campaign_server/internal/service"
	"crusade_campaign_server/pkg/errorx"
	"crusade_campaign_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves token refresh.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// RefreshToken exchanges a refresh token for a new access token.
// POST /auth/refresh
// Only the refresh token from the most recent login refreshes; a token
// id that no longer matches the stored one means a newer login exists.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	claims, err := jwt.ParseToken(req.RefreshToken)
	if err != nil {
		HandleError(c, errorx.New(errorx.CodeUnauthorized, "refresh token expired or invalid, please log in again"))
		return
	}
	if claims.Subject != "refresh_token" {
		HandleError(c, errorx.New(errorx.CodeUnauthorized, "a refresh token is required"))
		return
	}

	valid, err := h.authSvc.ValidateTokenID(claims.UserID, claims.TokenID)
	if err != nil {
		HandleError(c, err)
		return
	}
	if !valid {
		HandleError(c, errorx.New(errorx.CodeUnauthorized, "session superseded or expired, please log in again"))
		return
	}

	newAccessToken, err := jwt.GenerateAccessToken(claims.UserID)
	if err != nil {
		HandleError(c, errorx.ErrServerBusy)
		return
	}
	HandleSuccess(c, gin.H{
		"access_token": newAccessToken,
	})
}
