package lead

import (
	"math"
	"testing"
)

func TestScoreClosedForm(t *testing.T) {
	// 15*freq - 2*abandonment + session/8，四舍五入到整数
	cases := []struct {
		freq      int
		abandon   float64
		session   float64
		wantScore int
	}{
		{0, 0, 0, 0},
		{1, 0, 0, 15},
		{0, 100, 0, -200},
		{5, 20, 240, 65},
		{10, 0, 800, 250},
		{2, 33.33, 100, round(15*2 - 2*33.33 + 100.0/8)},
	}
	for _, tc := range cases {
		got := Score(tc.freq, tc.abandon, tc.session)
		if got != tc.wantScore {
			t.Errorf("Score(%d, %v, %v) = %d, 期望 %d", tc.freq, tc.abandon, tc.session, got, tc.wantScore)
		}
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func TestScoreDeterminism(t *testing.T) {
	first := Score(7, 12.5, 300)
	for i := 0; i < 10; i++ {
		if got := Score(7, 12.5, 300); got != first {
			t.Fatalf("相同输入产生了不同分数: %d != %d", got, first)
		}
	}
}

func TestQualityBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{-10, QualityLow},
		{0, QualityLow},
		{50, QualityLow},
		{51, QualityMedium},
		{80, QualityMedium},
		{81, QualityHigh},
		{200, QualityHigh},
	}
	for _, tc := range cases {
		if got := QualityForScore(tc.score); got != tc.want {
			t.Errorf("QualityForScore(%d) = %q, 期望 %q", tc.score, got, tc.want)
		}
	}
}

func TestAbandonmentRateEmptyCart(t *testing.T) {
	if got := AbandonmentRate(0, 0); got != 0 {
		t.Errorf("空购物车应返回0，得到 %v", got)
	}
	if got := AbandonmentRate(0, 42); got != 0 {
		t.Errorf("空购物车（有历史订单）应返回0，得到 %v", got)
	}
}

func TestAbandonmentRateClamp(t *testing.T) {
	// 历史订单数量超过购物车时不允许出现负值
	if got := AbandonmentRate(5, 50); got != 0 {
		t.Errorf("下界约束失败: 得到 %v", got)
	}
	// 负的订单数量也不允许超过100
	if got := AbandonmentRate(5, -50); got != 100 {
		t.Errorf("上界约束失败: 得到 %v", got)
	}
	if got := AbandonmentRate(10, 0); got != 100 {
		t.Errorf("全部放弃应为100，得到 %v", got)
	}
}

func TestAbandonmentRateRounding(t *testing.T) {
	// (3-1)/3*100 = 66.666... -> 66.67
	if got := AbandonmentRate(3, 1); got != 66.67 {
		t.Errorf("保留两位小数失败: 得到 %v", got)
	}
}

// 两个画像对比：高频下单的用户分数必须高于高放弃率的用户。
func TestScoreScenarioComparison(t *testing.T) {
	// 15*8 - 2*5 + 400/8 = 160
	loyal := Score(8, 5, 400)
	// 15*1 - 2*90 + 600/8 = -90
	windowShopper := Score(1, 90, 600)

	if loyal != 160 {
		t.Errorf("高频用户分数 = %d, 期望 160", loyal)
	}
	if windowShopper != -90 {
		t.Errorf("高放弃率用户分数 = %d, 期望 -90", windowShopper)
	}
	if loyal <= windowShopper {
		t.Errorf("高频用户(%d)应高于高放弃率用户(%d)", loyal, windowShopper)
	}
	if QualityForScore(loyal) != QualityHigh {
		t.Errorf("高频用户应为High，得到 %s", QualityForScore(loyal))
	}
	if QualityForScore(windowShopper) != QualityLow {
		t.Errorf("高放弃率用户应为Low，得到 %s", QualityForScore(windowShopper))
	}
}

func TestMeasuredEstimatorFallback(t *testing.T) {
	// Redis没有活动记录时使用合成估算，基线由订单频率决定
	e := &MeasuredEstimator{rand: func() float64 { return 0.5 }}

	active := e.EstimateSessionDuration("user-a", 3)
	if active != activeSessionBase+0.5*sessionJitterSpan {
		t.Errorf("活跃用户合成估算 = %v", active)
	}
	idle := e.EstimateSessionDuration("user-b", 0)
	if idle != idleSessionBase+0.5*sessionJitterSpan {
		t.Errorf("静默用户合成估算 = %v", idle)
	}
	if active <= idle {
		t.Errorf("活跃基线(%v)应高于静默基线(%v)", active, idle)
	}
}
