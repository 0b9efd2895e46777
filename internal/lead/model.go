package lead

import "time"

// Lead 是线索评分的持久化记录，每个用户至多一条。
type Lead struct {
	ID uint `gorm:"primaryKey" json:"-"`

	// UserID 对应用户表的主键，唯一约束保证幂等写入
	UserID string `gorm:"type:varchar(36);uniqueIndex;not null" json:"userId"`

	SessionDuration     float64 `json:"sessionDuration"`
	OrderFrequency      int     `json:"orderFrequency"`
	CartAbandonmentRate float64 `json:"cartAbandonmentRate"`
	LeadScore           int     `json:"leadScore"`
	LeadQuality         string  `json:"leadQuality"`

	UpdatedAt time.Time `json:"updatedAt"`
}
