package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterWebSocketRoutes registers the change-event subscription
// route. Kept outside the JWT group: browsers cannot set headers on a
// websocket upgrade, and the feed carries table names only.
func (rt *Router) RegisterWebSocketRoutes(r *gin.Engine) {
	r.GET("/ws/subscribe", rt.handlers.Ws.Subscribe)
}
