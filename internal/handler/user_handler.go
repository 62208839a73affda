package handler

import (
	"crusade_campaign_server/internal/dto/request"
	"crusade_campaign_server/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler serves account endpoints.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates the user handler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Register creates an account.
// POST /user/register
func (h *UserHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.Register(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Login verifies credentials and returns the profile with a token pair.
// POST /user/login
func (h *UserHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.Login(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Logout ends the caller's session.
// POST /user/logout
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.userSvc.Logout(currentUserID(c)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
