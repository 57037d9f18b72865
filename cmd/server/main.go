package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jadwalku/internal/config"
	"github.com/jadwalku/internal/db"
	"github.com/jadwalku/internal/handler"
	"github.com/jadwalku/internal/router"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// 设置并运行 Gin 服务器
	api := handler.NewAPI(db.DB)
	r := router.SetupRouter(api, cfg.SessionSecret)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
