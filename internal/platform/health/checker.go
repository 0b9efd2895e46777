package health

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/Shinkhal/QuickEats/internal/platform/database"
	"github.com/Shinkhal/QuickEats/pkg/lifecycle"
)

const (
	checkInterval = 5 * time.Second
	pingTimeout   = 2 * time.Second
)

var runIDPattern = regexp.MustCompile(`run_id:([a-f0-9]+)`)

// getRedisRunID 从Redis服务器信息中提取run_id
func getRedisRunID() (string, error) {
	ctx, cancel := context.WithTimeout(database.Ctx, pingTimeout)
	defer cancel()
	info, err := database.RDB.Info(ctx, "server").Result()
	if err != nil {
		return "", err
	}
	matches := runIDPattern.FindStringSubmatch(info)
	if len(matches) < 2 {
		return "", fmt.Errorf("无法在Redis INFO中找到run_id")
	}
	return matches[1], nil
}

// InitializeRunID 在应用启动时执行一次，获取并记录初始的run_id。
// 会话存储不可用不阻止启动，评分会退回合成估算。
func InitializeRunID() {
	runID, err := getRedisRunID()
	if err != nil {
		fmt.Printf("警告: 无法获取Redis Run ID: %v\n", err)
		database.UpdateStatus(false, "")
		return
	}
	database.SetInitialRunID(runID)
	fmt.Printf("获取初始Redis Run ID成功: %s\n", runID)
}

// PerformCheck 执行一次健康检查。
// run_id变化意味着Redis重启过，之前测量的会话活动已经丢失；
// 这里只记录并接受新实例，估算器对缺失数据本身就有回退路径。
func PerformCheck() {
	currentRunID, err := getRedisRunID()
	if err != nil {
		database.UpdateStatus(false, "")
		return
	}

	lastKnownRunID := database.GetLastKnownRunID()
	if lastKnownRunID != "" && currentRunID != lastKnownRunID {
		fmt.Printf("健康检查: 检测到Redis重启 (run_id: %s -> %s)，已测量的会话数据已丢失。\n",
			lastKnownRunID, currentRunID)
	}
	database.UpdateStatus(true, currentRunID)
}

// StartRedisHealthCheck 启动后台Goroutine定期执行健康检查
func StartRedisHealthCheck(handle *lifecycle.Handle) {
	go func() {
		defer handle.Close()
		fmt.Println("Redis健康检查器已启动。")
		for {
			if err := handle.Sleep(checkInterval); err != nil {
				fmt.Println("Redis健康检查器已停止。")
				return
			}
			PerformCheck()
		}
	}()
}
