package lead

import (
	"fmt"
	"sort"
	"time"
)

// Member 是评分服务眼中的用户：身份信息加上当前购物车的数量分布。
type Member struct {
	ID    string
	Name  string
	Email string
	// Cart 的键是菜品ID，值是数量
	Cart map[string]int
}

// OrderStats 汇总一个用户的历史订单
type OrderStats struct {
	// Count 是订单总数，即订单频率指标
	Count int
	// ItemCount 是所有订单中菜品数量之和
	ItemCount int
}

// UserDirectory 提供评分所需的用户读取能力
type UserDirectory interface {
	// ValidateID 校验ID格式，非法时返回 ErrInvalidUserID
	ValidateID(id string) error
	// FindMember 按ID读取用户，不存在时返回 ErrUserNotFound
	FindMember(id string) (*Member, error)
	// ListMembers 返回全部用户
	ListMembers() ([]Member, error)
}

// Store 提供线索记录的持久化能力，生产实现是 Repository
type Store interface {
	Upsert(l *Lead) error
	FindAll() ([]Lead, error)
}

// OrderDirectory 提供评分所需的订单统计能力
type OrderDirectory interface {
	// StatsFor 返回单个用户的订单统计
	StatsFor(userID string) (OrderStats, error)
	// StatsAll 一次性返回所有用户的订单统计，键是用户ID
	StatsAll() (map[string]OrderStats, error)
}

// EnrichedLead 是对外暴露的线索视图：评分指标加上用户身份信息
type EnrichedLead struct {
	UserID              string    `json:"userId"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	LeadScore           int       `json:"leadScore"`
	LeadQuality         string    `json:"leadQuality"`
	SessionDuration     float64   `json:"sessionDuration"`
	CartAbandonmentRate float64   `json:"cartAbandonmentRate"`
	OrderFrequency      int       `json:"orderFrequency"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// RefreshError 记录批量刷新中单个用户的失败原因
type RefreshError struct {
	UserID string `json:"userId"`
	Error  string `json:"error"`
}

// RefreshResult 是一次批量刷新的完整结果
type RefreshResult struct {
	Leads     []EnrichedLead `json:"leads"`
	Processed int            `json:"processed"`
	Errors    []RefreshError `json:"errors"`
}

// Service 实现线索评分的三个操作：单用户生成、全量快照、批量刷新。
// 所有依赖通过构造函数注入。
type Service struct {
	users     UserDirectory
	orders    OrderDirectory
	store     Store
	estimator SessionDurationEstimator
	// checkpoint 在批量刷新完成后记录时间戳与处理数量，可以为nil
	checkpoint func(at time.Time, processed int)
}

// NewService 创建评分服务
func NewService(users UserDirectory, orders OrderDirectory, store Store, estimator SessionDurationEstimator) *Service {
	return &Service{users: users, orders: orders, store: store, estimator: estimator}
}

// WithCheckpoint 注册批量刷新完成后的回调
func (s *Service) WithCheckpoint(fn func(at time.Time, processed int)) *Service {
	s.checkpoint = fn
	return s
}

// score 为一个用户计算完整指标并组装持久化记录
func (s *Service) score(m *Member, stats OrderStats, now time.Time) *Lead {
	totalCartItems := 0
	for _, qty := range m.Cart {
		totalCartItems += qty
	}

	abandonment := AbandonmentRate(totalCartItems, stats.ItemCount)
	duration := s.estimator.EstimateSessionDuration(m.ID, stats.Count)
	scoreValue := Score(stats.Count, abandonment, duration)

	return &Lead{
		UserID:              m.ID,
		SessionDuration:     duration,
		OrderFrequency:      stats.Count,
		CartAbandonmentRate: abandonment,
		LeadScore:           scoreValue,
		LeadQuality:         QualityForScore(scoreValue),
		UpdatedAt:           now,
	}
}

func enrich(m *Member, l *Lead) EnrichedLead {
	return EnrichedLead{
		UserID:              m.ID,
		Name:                m.Name,
		Email:               m.Email,
		LeadScore:           l.LeadScore,
		LeadQuality:         l.LeadQuality,
		SessionDuration:     l.SessionDuration,
		CartAbandonmentRate: l.CartAbandonmentRate,
		OrderFrequency:      l.OrderFrequency,
		UpdatedAt:           l.UpdatedAt,
	}
}

// GenerateLead 为单个用户重新计算并持久化线索。
// ID非法返回 ErrInvalidUserID，用户不存在返回 ErrUserNotFound；
// 成功时数据库里恰好留下该用户的一条线索记录。
func (s *Service) GenerateLead(userID string) (*EnrichedLead, error) {
	if err := s.users.ValidateID(userID); err != nil {
		return nil, err
	}
	member, err := s.users.FindMember(userID)
	if err != nil {
		return nil, err
	}
	stats, err := s.orders.StatsFor(userID)
	if err != nil {
		return nil, fmt.Errorf("无法统计用户订单: %w", err)
	}

	l := s.score(member, stats, time.Now())
	if err := s.store.Upsert(l); err != nil {
		return nil, err
	}

	result := enrich(member, l)
	return &result, nil
}

// Snapshot 返回全部用户的线索视图，按分数从高到低排序。
// 这是纯读取操作：对还没有线索记录的用户合成零值占位行，不写库。
func (s *Service) Snapshot() ([]EnrichedLead, error) {
	members, err := s.users.ListMembers()
	if err != nil {
		return nil, err
	}
	stored, err := s.store.FindAll()
	if err != nil {
		return nil, err
	}

	byUser := make(map[string]*Lead, len(stored))
	for i := range stored {
		byUser[stored[i].UserID] = &stored[i]
	}

	leads := make([]EnrichedLead, 0, len(members))
	for i := range members {
		m := &members[i]
		l, ok := byUser[m.ID]
		if !ok {
			// 占位行：全部指标为零，质量按零分归类
			l = &Lead{UserID: m.ID, LeadQuality: QualityForScore(0)}
		}
		leads = append(leads, enrich(m, l))
	}

	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].LeadScore > leads[j].LeadScore
	})
	return leads, nil
}

// RefreshAll 对每个用户重新计算并持久化线索。
// 单个用户的失败只记录到错误列表，不会中断整个批次；
// 返回值中的线索列表来自刷新后的全量快照。
func (s *Service) RefreshAll() (*RefreshResult, error) {
	members, err := s.users.ListMembers()
	if err != nil {
		return nil, err
	}
	statsByUser, err := s.orders.StatsAll()
	if err != nil {
		return nil, fmt.Errorf("无法统计订单: %w", err)
	}

	now := time.Now()
	result := &RefreshResult{Errors: make([]RefreshError, 0)}
	for i := range members {
		m := &members[i]
		l := s.score(m, statsByUser[m.ID], now)
		if err := s.store.Upsert(l); err != nil {
			result.Errors = append(result.Errors, RefreshError{UserID: m.ID, Error: err.Error()})
			continue
		}
		result.Processed++
	}

	if s.checkpoint != nil {
		s.checkpoint(now, result.Processed)
	}

	leads, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	result.Leads = leads
	return result, nil
}
