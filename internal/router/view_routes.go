package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterViewRoutes registers the view state routes.
func (rt *Router) RegisterViewRoutes(rg *gin.RouterGroup) {
	viewGroup := rg.Group("/view")
	{
		viewGroup.GET("/getViewState", rt.handlers.View.GetViewState)
		viewGroup.POST("/selectView", rt.handlers.View.SelectView)
		viewGroup.POST("/enterCampaign", rt.handlers.View.EnterCampaign)
		viewGroup.POST("/openModal", rt.handlers.View.OpenModal)
		viewGroup.POST("/closeModal", rt.handlers.View.CloseModal)
	}
}
