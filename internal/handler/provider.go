// Package handler provides the HTTP request handlers. Each handler
// binds and validates the request, delegates to its service and writes
// the shared response envelope.
package handler

import (
	"github.com/gin-gonic/gin"

	"crusade_campaign_server/internal/infrastructure/middleware"
	"crusade_campaign_server/internal/notify"
	"crusade_campaign_server/internal/service"
)

// Handlers aggregates every handler; the router layer reaches the
// endpoints through this struct.
type Handlers struct {
	User     *UserHandler
	Auth     *AuthHandler
	Campaign *CampaignHandler
	Force    *ForceHandler
	Unit     *UnitHandler
	Snapshot *SnapshotHandler
	View     *ViewHandler
	Ws       *WsHandler
}

// NewHandlers builds the handlers over the service aggregate and the
// change notification hub.
func NewHandlers(svc *service.Services, hub *notify.Hub) *Handlers {
	return &Handlers{
		User:     NewUserHandler(svc.User),
		Auth:     NewAuthHandler(svc.Auth),
		Campaign: NewCampaignHandler(svc.Campaign),
		Force:    NewForceHandler(svc.Force),
		Unit:     NewUnitHandler(svc.Unit),
		Snapshot: NewSnapshotHandler(svc.Snapshot),
		View:     NewViewHandler(svc.View),
		Ws:       NewWsHandler(hub),
	}
}

// currentUserID returns the authenticated user's uuid set by the JWT
// middleware.
func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserKey)
}
