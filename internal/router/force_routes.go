package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterForceRoutes registers crusade force routes.
func (rt *Router) RegisterForceRoutes(rg *gin.RouterGroup) {
	forceGroup := rg.Group("/force")
	{
		forceGroup.POST("/saveForce", rt.handlers.Force.SaveForce)
		forceGroup.POST("/deleteForce", rt.handlers.Force.DeleteForce)
		forceGroup.GET("/getForceList", rt.handlers.Force.GetForceList)
	}
}
