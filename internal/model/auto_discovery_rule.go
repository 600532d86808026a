package model

import "time"

type AutoDiscoveryRule struct {
	ID           uint64     `gorm:"primaryKey"`
	Name         string     `gorm:"type:varchar(100);not null"`
	Queries      []string   `gorm:"serializer:json;type:text;not null"`
	Niches       []string   `gorm:"serializer:json;type:text"`
	MinFollowers int        `gorm:"type:int;not null;default:0"`
	MaxFollowers int        `gorm:"type:int;not null;default:0"`
	IsActive     bool       `gorm:"type:tinyint(1);not null;default:1"`
	LastRunAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AutoDiscoveryRule) TableName() string {
	return "auto_discovery_rules"
}

// Matches 粉丝量是否落在规则区间内，两端闭区间
func (r *AutoDiscoveryRule) Matches(followers int) bool {
	return followers >= r.MinFollowers && followers <= r.MaxFollowers
}
