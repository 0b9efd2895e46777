package query

import (
	"sort"
	"time"
)

// SeriesPoint 是折线图的一个数据点。
type SeriesPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// CategoryCount 是柱状图的一个数据点。
type CategoryCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// dailySeries 统计最近7天（含今天）每天的咨询数量。
// 返回的序列按日期从旧到新排列，点的名称是星期缩写。
func dailySeries(queries []Query, now time.Time) []SeriesPoint {
	points := make([]SeriesPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		y, m, d := day.Date()

		count := 0
		for _, q := range queries {
			qy, qm, qd := q.CreatedAt.Date()
			if qy == y && qm == m && qd == d {
				count++
			}
		}
		points = append(points, SeriesPoint{Name: day.Format("Mon"), Value: count})
	}
	return points
}

// expertiseCounts 按分类标签统计咨询数量，按数量降序排列。
func expertiseCounts(queries []Query) []CategoryCount {
	counts := make(map[string]int)
	orderSeen := make([]string, 0)
	for _, q := range queries {
		if _, seen := counts[q.Expertise]; !seen {
			orderSeen = append(orderSeen, q.Expertise)
		}
		counts[q.Expertise]++
	}

	result := make([]CategoryCount, 0, len(counts))
	for _, name := range orderSeen {
		result = append(result, CategoryCount{Name: name, Value: counts[name]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Value > result[j].Value
	})
	return result
}
