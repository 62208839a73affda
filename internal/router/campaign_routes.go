package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterCampaignRoutes registers campaign and membership routes.
func (rt *Router) RegisterCampaignRoutes(rg *gin.RouterGroup) {
	campaignGroup := rg.Group("/campaign")
	{
		campaignGroup.POST("/createCampaign", rt.handlers.Campaign.CreateCampaign)
		campaignGroup.POST("/joinCampaign", rt.handlers.Campaign.JoinCampaign)
		campaignGroup.POST("/deleteCampaign", rt.handlers.Campaign.DeleteCampaign)
		campaignGroup.GET("/getCampaignList", rt.handlers.Campaign.GetCampaignList)
		campaignGroup.GET("/getFactionList", rt.handlers.Campaign.GetFactionList)
	}
}
