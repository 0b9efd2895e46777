package session

import "testing"

// 会话存储从未初始化时，测量和记录都必须安静地退化，绝不能panic。
func TestMeasuredDurationWithoutRedis(t *testing.T) {
	duration, ok := MeasuredDuration("user-1")
	if ok {
		t.Error("Redis未初始化时不应报告有测量数据")
	}
	if duration != 0 {
		t.Errorf("时长应为0，得到 %v", duration)
	}
}

func TestTouchWithoutRedis(t *testing.T) {
	// 不应panic
	Touch("user-1")
	Touch("")
}
