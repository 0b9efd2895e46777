package lead

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository 封装线索记录的数据库访问
type Repository struct {
	db *gorm.DB
}

// NewRepository 创建线索仓库
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert 以user_id为冲突键写入线索：已存在则整体覆盖指标列，
// 不存在则插入新行。重复调用产生相同的单条记录。
func (r *Repository) Upsert(l *Lead) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"session_duration",
			"order_frequency",
			"cart_abandonment_rate",
			"lead_score",
			"lead_quality",
			"updated_at",
		}),
	}).Create(l).Error
	if err != nil {
		return fmt.Errorf("无法写入线索记录: %w", err)
	}
	return nil
}

// FindAll 返回全部线索记录
func (r *Repository) FindAll() ([]Lead, error) {
	var leads []Lead
	if err := r.db.Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("无法读取线索记录: %w", err)
	}
	return leads, nil
}

// FindByUserID 按用户ID查找线索，不存在时返回 (nil, nil)
func (r *Repository) FindByUserID(userID string) (*Lead, error) {
	var l Lead
	err := r.db.Where("user_id = ?", userID).First(&l).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("无法查询线索记录: %w", err)
	}
	return &l, nil
}
