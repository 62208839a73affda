package handler

import (
	"crusade_campaign_server/internal/notify"

	"github.com/gin-gonic/gin"
)

// WsHandler upgrades change-event subscriptions.
type WsHandler struct {
	hub *notify.Hub
}

// NewWsHandler creates the websocket handler.
func NewWsHandler(hub *notify.Hub) *WsHandler {
	return &WsHandler{hub: hub}
}

// Subscribe registers the caller for changed-table events.
// GET /ws/subscribe
func (h *WsHandler) Subscribe(c *gin.Context) {
	h.hub.Subscribe(c)
}
