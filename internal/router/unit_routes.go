package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterUnitRoutes registers roster unit routes.
func (rt *Router) RegisterUnitRoutes(rg *gin.RouterGroup) {
	unitGroup := rg.Group("/unit")
	{
		unitGroup.POST("/saveUnit", rt.handlers.Unit.SaveUnit)
		unitGroup.POST("/deleteUnit", rt.handlers.Unit.DeleteUnit)
		unitGroup.GET("/getUnitList", rt.handlers.Unit.GetUnitList)
	}
}
