package lead

import "math"

// 评分线性模型的权重。订单频率是最强的购买意向信号，
// 购物车放弃率起负向作用，会话时长以8秒为一个计分单位。
const (
	orderFrequencyWeight   = 15.0
	abandonmentWeight      = 2.0
	sessionDurationScale   = 8.0
	highQualityThreshold   = 80
	mediumQualityThreshold = 50
)

// 质量分层标签
const (
	QualityHigh   = "High"
	QualityMedium = "Medium"
	QualityLow    = "Low"
)

// Score 根据三个行为指标计算线索分数，四舍五入到整数。
// 相同输入永远产生相同输出。
func Score(orderFrequency int, cartAbandonmentRate float64, sessionDuration float64) int {
	raw := orderFrequencyWeight*float64(orderFrequency) -
		abandonmentWeight*cartAbandonmentRate +
		sessionDuration/sessionDurationScale
	return int(math.Round(raw))
}

// QualityForScore 把分数映射到质量分层：
// 大于80为High，51~80为Medium，50及以下为Low。
func QualityForScore(score int) string {
	switch {
	case score > highQualityThreshold:
		return QualityHigh
	case score > mediumQualityThreshold:
		return QualityMedium
	default:
		return QualityLow
	}
}

// AbandonmentRate 计算购物车放弃率（百分比，保留两位小数）。
// 购物车为空时按0处理，避免除零；结果被约束在[0,100]内，
// 防止历史订单数量超过当前购物车时出现负值。
func AbandonmentRate(totalCartItems, totalOrderedItems int) float64 {
	if totalCartItems == 0 {
		return 0
	}
	rate := float64(totalCartItems-totalOrderedItems) / float64(totalCartItems) * 100
	if rate < 0 {
		rate = 0
	}
	if rate > 100 {
		rate = 100
	}
	return math.Round(rate*100) / 100
}
