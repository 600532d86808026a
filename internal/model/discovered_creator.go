package model

import "time"

type DiscoveredCreator struct {
	ID             uint64     `gorm:"primaryKey"`
	Platform       string     `gorm:"type:varchar(20);not null;uniqueIndex:idx_platform_user"`
	PlatformUserID string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_platform_user"`
	DisplayName    string     `gorm:"type:varchar(100)"`
	Handle         string     `gorm:"type:varchar(100)"`
	AvatarURL      string     `gorm:"type:varchar(512)"`
	Bio            string     `gorm:"type:varchar(500)"`
	Followers      int        `gorm:"type:int;not null;default:0"`
	TotalPosts     int        `gorm:"type:int;not null;default:0"`
	AvgViews       int        `gorm:"type:int;not null;default:0"`
	Niches         []string   `gorm:"serializer:json;type:text"`
	Status         string     `gorm:"type:varchar(20);not null;default:active"`
	GrowthRate     float64    `gorm:"type:double;not null;default:0"`
	LastScrapedAt  *time.Time `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (DiscoveredCreator) TableName() string {
	return "discovered_creators"
}
