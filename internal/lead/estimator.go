package lead

import (
	"math/rand"

	"github.com/Shinkhal/QuickEats/internal/session"
)

// SessionDurationEstimator 为单个用户估算会话时长（秒）。
// 评分服务只依赖这个接口，测试时可以注入确定性的实现。
type SessionDurationEstimator interface {
	EstimateSessionDuration(userID string, orderFrequency int) float64
}

// 合成估算的基线：有订单历史的用户按活跃用户基线处理
const (
	activeSessionBase = 200.0
	idleSessionBase   = 100.0
	sessionJitterSpan = 200.0
)

// MeasuredEstimator 优先使用Redis中记录的真实会话跨度，
// 没有活动记录（或Redis不可用）时退回到合成估算。
type MeasuredEstimator struct {
	// rand 返回[0,1)的随机数，留作注入点
	rand func() float64
}

// NewMeasuredEstimator 创建生产环境使用的估算器
func NewMeasuredEstimator() *MeasuredEstimator {
	return &MeasuredEstimator{rand: rand.Float64}
}

// EstimateSessionDuration 实现 SessionDurationEstimator
func (e *MeasuredEstimator) EstimateSessionDuration(userID string, orderFrequency int) float64 {
	if measured, ok := session.MeasuredDuration(userID); ok {
		return measured
	}
	base := idleSessionBase
	if orderFrequency > 0 {
		base = activeSessionBase
	}
	return base + e.rand()*sessionJitterSpan
}
