package database

import (
	"context"
	"fmt"

	"github.com/Shinkhal/QuickEats/internal/platform/config"
	"github.com/redis/go-redis/v9"
)

// RDB 是一个全局的Redis客户端实例，用于存储用户会话活动数据
var RDB *redis.Client

// Ctx 是一个全局的上下文，用于Redis操作
var Ctx = context.Background()

// InitRedis 初始化与Redis数据库的连接
func InitRedis(cfg config.RedisConfig) {
	// 创建一个新的Redis客户端
	// 使用从配置文件加载的参数
	RDB = redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 使用Ping命令来测试连接是否成功
	// 会话存储不可用不应阻止服务启动：线索评分会退化为合成会话时长
	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		fmt.Printf("警告: 无法连接到Redis (%v)，会话时长测量已禁用。\n", err)
		UpdateStatus(false, "")
		return
	}

	UpdateStatus(true, "")
	fmt.Println("Redis 连接成功！")
}
