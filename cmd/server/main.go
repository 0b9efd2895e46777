package main

import (
	"fmt"
	"net/http"

	"github.com/Shinkhal/QuickEats/api"
	"github.com/Shinkhal/QuickEats/internal/lead"
	"github.com/Shinkhal/QuickEats/internal/notify"
	"github.com/Shinkhal/QuickEats/internal/order"
	"github.com/Shinkhal/QuickEats/internal/platform/config"
	"github.com/Shinkhal/QuickEats/internal/platform/database"
	"github.com/Shinkhal/QuickEats/internal/platform/health"
	"github.com/Shinkhal/QuickEats/internal/platform/shutdown"
	"github.com/Shinkhal/QuickEats/internal/platform/startup"
	"github.com/Shinkhal/QuickEats/pkg/lifecycle"
	"github.com/Shinkhal/QuickEats/pkg/token"
	"github.com/joho/godotenv"
)

func main() {
	// .env不存在不是错误，配置可以完全来自config.yaml和环境变量
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("无法加载配置: %v", err))
	}

	// 1. 装配各模块的外部依赖
	token.Configure(cfg.Auth.SecretKey, cfg.Auth.TokenTTL)
	notify.Configure(cfg.Email)
	order.Configure(cfg.Payment)

	// 2. 初始化数据库和会话存储
	database.InitDB(cfg.Database)
	database.InitRedis(cfg.Database.Redis)
	health.InitializeRunID()

	// 3. 执行应用初始化流程（迁移 + 服务装配）
	if err := startup.InitializeApplication(); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	// 4. 创建生命周期管理器并启动后台服务
	gracefulMgr := lifecycle.NewManager()
	forcefulMgr := lifecycle.NewManager()

	healthHandle, err := forcefulMgr.NewServiceHandle("redis-health-checker")
	if err != nil {
		panic(err)
	}
	health.StartRedisHealthCheck(healthHandle)

	refreshHandle, err := gracefulMgr.NewServiceHandle("lead-refresh-worker")
	if err != nil {
		panic(err)
	}
	lead.StartRefreshWorker(refreshHandle, cfg.Lead.RefreshInterval)

	// 5. 创建路由并启动HTTP服务器
	router := api.NewRouter(cfg.Server)
	api.SetupRoutes(router)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("服务器启动失败: " + err.Error())
		}
	}()

	// 6. 阻塞等待停机信号
	coordinator := shutdown.NewCoordinator(gracefulMgr, forcefulMgr)
	coordinator.ListenForSignalsAndShutdown(server)
}
