package lead

import (
	"fmt"
	"time"

	"github.com/Shinkhal/QuickEats/pkg/lifecycle"
)

// StartRefreshWorker 启动后台的周期性全量刷新。
// interval小于等于零时不启动，接口触发仍然可用。
func StartRefreshWorker(handle *lifecycle.Handle, interval time.Duration) {
	if interval <= 0 {
		fmt.Println("线索后台刷新未启用。")
		handle.Close()
		return
	}

	go func() {
		defer handle.Close()
		fmt.Printf("线索后台刷新已启动，间隔 %v。\n", interval)
		for {
			if err := handle.Sleep(interval); err != nil {
				// 收到停机信号
				return
			}
			result, err := defaultService.RefreshAll()
			if err != nil {
				fmt.Printf("线索后台刷新失败: %v\n", err)
				continue
			}
			fmt.Printf("线索后台刷新完成: 处理 %d 个用户, %d 个失败。\n",
				result.Processed, len(result.Errors))
		}
	}()
}
