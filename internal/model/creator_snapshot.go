package model

import "time"

// CreatorSnapshot 每个达人每天至多一条，作为增长率计算的时间序列
type CreatorSnapshot struct {
	ID           uint64    `gorm:"primaryKey"`
	CreatorID    uint64    `gorm:"not null;uniqueIndex:idx_creator_date"`
	SnapshotDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_creator_date"`
	Followers    int       `gorm:"type:int;not null;default:0"`
	TotalPosts   int       `gorm:"type:int;not null;default:0"`
	CreatedAt    time.Time

	Creator *DiscoveredCreator `gorm:"foreignKey:CreatorID;references:ID;constraint:OnDelete:CASCADE"`
}

func (CreatorSnapshot) TableName() string {
	return "creator_snapshots"
}
