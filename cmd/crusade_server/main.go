package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"crusade_campaign_server/internal/config"
	dao "crusade_campaign_server/internal/dao/mysql"
	myredis "crusade_campaign_server/internal/dao/redis"
	"crusade_campaign_server/internal/handler"
	"crusade_campaign_server/internal/http_server"
	"crusade_campaign_server/internal/infrastructure/logger"
	"crusade_campaign_server/internal/notify"
	"crusade_campaign_server/internal/policy"
	"crusade_campaign_server/internal/service"
	"crusade_campaign_server/pkg/util/jwt"
)

func main() {
	conf := config.GetConfig()

	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("logger initialised")

	repos := dao.Init()
	zap.L().Info("database initialised")

	myredis.Init()
	zap.L().Info("redis initialised")

	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)

	if err := handler.InitTrans("en"); err != nil {
		zap.L().Fatal("init validator translator failed", zap.Error(err))
	}

	hub := notify.NewHub()
	allow := policy.AllowList(conf.AdminConfig.Emails)
	services := service.NewServices(repos, myredis.GetCacheService(), allow, hub)
	handlers := handler.NewHandlers(services, hub)
	engine := http_server.Init(handlers)
	zap.L().Info("http server initialised")

	go func() {
		addr := fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port)
		if err := engine.Run(addr); err != nil {
			zap.L().Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	hub.Close()
	zap.L().Info("server shut down")
}
