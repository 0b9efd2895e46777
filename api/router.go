package api

import (
	"github.com/Shinkhal/QuickEats/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter 创建并配置Gin引擎：运行模式、CORS和静态资源。
func NewRouter(cfg config.ServerConfig) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(cfg.Cors.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Cors.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// 菜品图片通过 /images 提供
	router.Static("/images", "./uploads")

	return router
}
