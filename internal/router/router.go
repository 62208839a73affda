// Package router registers the HTTP routes. This file is the entry
// point; each module's routes live in their own file.
package router

import (
	"github.com/gin-gonic/gin"

	"crusade_campaign_server/internal/handler"
	"crusade_campaign_server/internal/infrastructure/middleware"
)

// Router holds the handler aggregate and registers routes off it.
type Router struct {
	handlers *handler.Handlers
}

// NewRouter creates the route manager.
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes wires every module's routes onto the engine. Login,
// registration and token refresh stay public; everything else sits
// behind the JWT middleware.
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	rt.RegisterAuthRoutes(r)
	rt.RegisterUserRoutes(r)

	authed := r.Group("")
	authed.Use(middleware.JWTAuth())
	{
		rt.RegisterCampaignRoutes(authed)
		rt.RegisterForceRoutes(authed)
		rt.RegisterUnitRoutes(authed)
		rt.RegisterSnapshotRoutes(authed)
		rt.RegisterViewRoutes(authed)
	}

	rt.RegisterWebSocketRoutes(r)
}
