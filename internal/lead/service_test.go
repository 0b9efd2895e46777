package lead

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

// stubDirectory 同时实现用户名册和订单统计
type stubDirectory struct {
	members []Member
	stats   map[string]OrderStats
}

func (d *stubDirectory) ValidateID(id string) error {
	if len(id) != 36 {
		return ErrInvalidUserID
	}
	return nil
}

func (d *stubDirectory) FindMember(id string) (*Member, error) {
	for i := range d.members {
		if d.members[i].ID == id {
			return &d.members[i], nil
		}
	}
	return nil, ErrUserNotFound
}

func (d *stubDirectory) ListMembers() ([]Member, error) {
	return d.members, nil
}

func (d *stubDirectory) StatsFor(userID string) (OrderStats, error) {
	return d.stats[userID], nil
}

func (d *stubDirectory) StatsAll() (map[string]OrderStats, error) {
	return d.stats, nil
}

// memoryStore 是以user_id为键的内存版线索存储
type memoryStore struct {
	rows map[string]Lead
	// failFor 中的用户ID写入时报错，用于验证故障隔离
	failFor map[string]bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{rows: make(map[string]Lead), failFor: make(map[string]bool)}
}

func (s *memoryStore) Upsert(l *Lead) error {
	if s.failFor[l.UserID] {
		return errors.New("写入失败")
	}
	s.rows[l.UserID] = *l
	return nil
}

func (s *memoryStore) FindAll() ([]Lead, error) {
	all := make([]Lead, 0, len(s.rows))
	for _, l := range s.rows {
		all = append(all, l)
	}
	return all, nil
}

// fixedEstimator 返回固定时长，让分数可以被精确断言
type fixedEstimator struct{ duration float64 }

func (e *fixedEstimator) EstimateSessionDuration(string, int) float64 {
	return e.duration
}

func testUserID(n int) string {
	return fmt.Sprintf("00000000-0000-7000-8000-%012d", n)
}

func newTestService(members []Member, stats map[string]OrderStats, store *memoryStore) *Service {
	dir := &stubDirectory{members: members, stats: stats}
	return NewService(dir, dir, store, &fixedEstimator{duration: 240})
}

func TestGenerateLeadComputesAndPersists(t *testing.T) {
	id := testUserID(1)
	members := []Member{{ID: id, Name: "张伟", Email: "zhang@example.com", Cart: map[string]int{"f1": 2, "f2": 3}}}
	stats := map[string]OrderStats{id: {Count: 4, ItemCount: 5}}
	store := newMemoryStore()
	svc := newTestService(members, stats, store)

	enriched, err := svc.GenerateLead(id)
	if err != nil {
		t.Fatalf("GenerateLead失败: %v", err)
	}

	// 购物车5件，历史下单5件 -> 放弃率0；15*4 - 0 + 240/8 = 90
	if enriched.CartAbandonmentRate != 0 {
		t.Errorf("放弃率 = %v, 期望 0", enriched.CartAbandonmentRate)
	}
	if enriched.LeadScore != 90 {
		t.Errorf("分数 = %d, 期望 90", enriched.LeadScore)
	}
	if enriched.LeadQuality != QualityHigh {
		t.Errorf("质量 = %s, 期望 High", enriched.LeadQuality)
	}
	if enriched.Name != "张伟" || enriched.Email != "zhang@example.com" {
		t.Errorf("身份信息未正确合并: %+v", enriched)
	}

	stored, ok := store.rows[id]
	if !ok {
		t.Fatal("线索未持久化")
	}
	if stored.LeadScore != 90 || stored.OrderFrequency != 4 {
		t.Errorf("持久化记录不一致: %+v", stored)
	}
}

func TestGenerateLeadIdempotentUpsert(t *testing.T) {
	id := testUserID(2)
	members := []Member{{ID: id, Name: "李娜", Email: "li@example.com"}}
	store := newMemoryStore()
	svc := newTestService(members, map[string]OrderStats{}, store)

	for i := 0; i < 3; i++ {
		if _, err := svc.GenerateLead(id); err != nil {
			t.Fatalf("第%d次GenerateLead失败: %v", i+1, err)
		}
	}
	if len(store.rows) != 1 {
		t.Errorf("重复生成后应只有一条记录，得到 %d", len(store.rows))
	}
}

func TestGenerateLeadRejectsMalformedID(t *testing.T) {
	svc := newTestService(nil, nil, newMemoryStore())
	if _, err := svc.GenerateLead("abc"); !errors.Is(err, ErrInvalidUserID) {
		t.Errorf("期望 ErrInvalidUserID，得到 %v", err)
	}
}

func TestGenerateLeadUnknownUser(t *testing.T) {
	svc := newTestService(nil, nil, newMemoryStore())
	if _, err := svc.GenerateLead(testUserID(99)); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，得到 %v", err)
	}
}

func TestRefreshAllCoversEveryUser(t *testing.T) {
	members := make([]Member, 0, 5)
	stats := make(map[string]OrderStats)
	for i := 0; i < 5; i++ {
		id := testUserID(i)
		members = append(members, Member{ID: id, Name: fmt.Sprintf("用户%d", i)})
		stats[id] = OrderStats{Count: i}
	}
	store := newMemoryStore()
	svc := newTestService(members, stats, store)

	result, err := svc.RefreshAll()
	if err != nil {
		t.Fatalf("RefreshAll失败: %v", err)
	}
	if result.Processed != 5 {
		t.Errorf("处理数量 = %d, 期望 5", result.Processed)
	}
	if len(result.Errors) != 0 {
		t.Errorf("不应有错误: %+v", result.Errors)
	}
	if len(store.rows) != 5 {
		t.Errorf("持久化记录数 = %d, 期望 5", len(store.rows))
	}
	if len(result.Leads) != 5 {
		t.Errorf("返回线索数 = %d, 期望 5", len(result.Leads))
	}
}

func TestRefreshAllIsolatesFailures(t *testing.T) {
	var members []Member
	stats := make(map[string]OrderStats)
	for i := 0; i < 4; i++ {
		id := testUserID(i)
		members = append(members, Member{ID: id})
		stats[id] = OrderStats{Count: 1}
	}
	store := newMemoryStore()
	badID := testUserID(2)
	store.failFor[badID] = true
	svc := newTestService(members, stats, store)

	result, err := svc.RefreshAll()
	if err != nil {
		t.Fatalf("单个用户失败不应中断批次: %v", err)
	}
	if result.Processed != 3 {
		t.Errorf("处理数量 = %d, 期望 3", result.Processed)
	}
	if len(result.Errors) != 1 || result.Errors[0].UserID != badID {
		t.Errorf("错误列表不正确: %+v", result.Errors)
	}
	if len(store.rows) != 3 {
		t.Errorf("成功写入数 = %d, 期望 3", len(store.rows))
	}
}

func TestRefreshAllRecordsCheckpoint(t *testing.T) {
	id := testUserID(7)
	store := newMemoryStore()
	svc := newTestService([]Member{{ID: id}}, map[string]OrderStats{}, store)

	var gotAt time.Time
	gotProcessed := -1
	svc.WithCheckpoint(func(at time.Time, processed int) {
		gotAt = at
		gotProcessed = processed
	})

	if _, err := svc.RefreshAll(); err != nil {
		t.Fatalf("RefreshAll失败: %v", err)
	}
	if gotProcessed != 1 {
		t.Errorf("回调处理数量 = %d, 期望 1", gotProcessed)
	}
	if gotAt.IsZero() {
		t.Error("回调时间戳不应为零值")
	}
}

func TestSnapshotSortsAndSynthesizesPlaceholders(t *testing.T) {
	ids := []string{testUserID(1), testUserID(2), testUserID(3)}
	members := []Member{
		{ID: ids[0], Name: "低分"},
		{ID: ids[1], Name: "高分"},
		{ID: ids[2], Name: "无记录"},
	}
	store := newMemoryStore()
	store.rows[ids[0]] = Lead{UserID: ids[0], LeadScore: 20, LeadQuality: QualityLow}
	store.rows[ids[1]] = Lead{UserID: ids[1], LeadScore: 95, LeadQuality: QualityHigh}
	svc := newTestService(members, map[string]OrderStats{}, store)

	leads, err := svc.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot失败: %v", err)
	}
	if len(leads) != 3 {
		t.Fatalf("线索数 = %d, 期望 3（包含占位行）", len(leads))
	}
	for i := 1; i < len(leads); i++ {
		if leads[i-1].LeadScore < leads[i].LeadScore {
			t.Errorf("排序错误: 位置%d分数%d < 位置%d分数%d", i-1, leads[i-1].LeadScore, i, leads[i].LeadScore)
		}
	}
	if leads[0].UserID != ids[1] {
		t.Errorf("最高分应排第一，得到 %s", leads[0].Name)
	}

	// 没有记录的用户得到零值占位行，且不会被写入存储
	last := leads[len(leads)-1]
	if last.UserID != ids[2] || last.LeadScore != 0 || last.LeadQuality != QualityLow {
		t.Errorf("占位行不正确: %+v", last)
	}
	if !last.UpdatedAt.IsZero() {
		t.Errorf("占位行的更新时间应为零值: %v", last.UpdatedAt)
	}
	if len(store.rows) != 2 {
		t.Errorf("Snapshot不应写库，记录数 = %d", len(store.rows))
	}
}
