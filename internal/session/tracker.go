package session

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Shinkhal/QuickEats/internal/platform/database"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// --- Redis 键名常量 ---

const (
	// FirstSeenKey 是一个 Redis Hash 的键，记录每个用户本会话窗口内的首次活动时间。
	// Field: 用户ID, Value: Unix秒
	FirstSeenKey = "session:first_seen"

	// LastSeenKey 是一个 Redis Hash 的键，记录每个用户最近一次活动时间。
	// Field: 用户ID, Value: Unix秒
	LastSeenKey = "session:last_seen"
)

// Touch 记录一次用户活动。
// 首次活动时间只写一次(HSetNX)，最近活动时间每次覆盖。
// Redis不可用时静默跳过：会话测量是尽力而为的，绝不阻塞请求。
func Touch(userID string) {
	if userID == "" || database.RDB == nil || !database.IsRedisHealthy() {
		return
	}

	now := strconv.FormatInt(time.Now().Unix(), 10)
	pipe := database.RDB.Pipeline()
	pipe.HSetNX(database.Ctx, FirstSeenKey, userID, now)
	pipe.HSet(database.Ctx, LastSeenKey, userID, now)
	if _, err := pipe.Exec(database.Ctx); err != nil {
		fmt.Printf("记录用户 %s 的会话活动失败: %v\n", userID, err)
	}
}

// MeasuredDuration 返回一个用户的实测会话时长（秒）。
// 第二个返回值表示是否存在可用的测量数据。
func MeasuredDuration(userID string) (float64, bool) {
	if userID == "" || database.RDB == nil || !database.IsRedisHealthy() {
		return 0, false
	}

	pipe := database.RDB.Pipeline()
	firstCmd := pipe.HGet(database.Ctx, FirstSeenKey, userID)
	lastCmd := pipe.HGet(database.Ctx, LastSeenKey, userID)
	if _, err := pipe.Exec(database.Ctx); err != nil && err != redis.Nil {
		return 0, false
	}

	first, err1 := strconv.ParseInt(firstCmd.Val(), 10, 64)
	last, err2 := strconv.ParseInt(lastCmd.Val(), 10, 64)
	if err1 != nil || err2 != nil || last < first {
		return 0, false
	}
	return float64(last - first), true
}

// TrackMiddleware 在已鉴权的路由上记录用户活动。
// 它必须挂在 RequireAuth 之后，依赖上下文中已验证的用户ID。
func TrackMiddleware(userIDKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		Touch(c.GetString(userIDKey))
		c.Next()
	}
}
