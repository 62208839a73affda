// Package http_server builds the Gin engine: middleware, CORS and
// route registration.
package http_server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"crusade_campaign_server/internal/config"
	"crusade_campaign_server/internal/handler"
	"crusade_campaign_server/internal/infrastructure/logger"
	"crusade_campaign_server/internal/infrastructure/middleware"
	"crusade_campaign_server/internal/router"
)

// Init returns a configured engine over the injected handlers.
func Init(handlers *handler.Handlers) *gin.Engine {
	conf := config.GetConfig()
	if conf.MainConfig.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	// redirect plain HTTP when TLS termination happens here rather than
	// at a fronting proxy
	if conf.MainConfig.UseTLS {
		engine.Use(middleware.TlsHandler(conf.MainConfig.Host, conf.MainConfig.Port))
	}

	rt := router.NewRouter(handlers)
	rt.RegisterRoutes(engine)

	return engine
}
