package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterSnapshotRoutes registers the bulk load route.
func (rt *Router) RegisterSnapshotRoutes(rg *gin.RouterGroup) {
	rg.GET("/snapshot/load", rt.handlers.Snapshot.Load)
}
