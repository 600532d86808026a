package repository

import (
	"context"
	"errors"
	"time"

	"risingcreators/internal/model"
	"risingcreators/internal/pkg/consts"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreatorQuery 达人列表的筛选条件
type CreatorQuery struct {
	Status       string
	Niche        string
	MinFollowers int
	MaxFollowers int
	Offset       int
	Limit        int
}

type DiscoveredCreatorRepo interface {
	Upsert(ctx context.Context, creator *model.DiscoveredCreator) (uint64, error)
	UpdateStats(ctx context.Context, creator *model.DiscoveredCreator) error
	UpdateGrowthRate(ctx context.Context, creatorID uint64, rate float64) error
	GetByID(ctx context.Context, creatorID uint64) (*model.DiscoveredCreator, error)
	List(ctx context.Context, query CreatorQuery) ([]*model.DiscoveredCreator, int64, error)
	ListActive(ctx context.Context) ([]*model.DiscoveredCreator, error)
	ListOldestScraped(ctx context.Context, limit int) ([]*model.DiscoveredCreator, error)
	ListTopGrowth(ctx context.Context, limit int, minFollowers int) ([]*model.DiscoveredCreator, error)
}

type discoveredCreatorRepoImpl struct {
	db *gorm.DB
}

func NewDiscoveredCreatorRepo(db *gorm.DB) DiscoveredCreatorRepo {
	return &discoveredCreatorRepoImpl{db: db}
}

// Upsert 按 (platform, platform_user_id) 插入或更新。
// 重复导入只覆盖可变字段，身份字段与生命周期状态保持不变；
// last_scraped_at 无条件刷新为当前时间。
func (r *discoveredCreatorRepoImpl) Upsert(ctx context.Context, creator *model.DiscoveredCreator) (uint64, error) {
	now := time.Now()
	creator.LastScrapedAt = &now

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "platform"}, {Name: "platform_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"display_name",
			"handle",
			"avatar_url",
			"bio",
			"followers",
			"total_posts",
			"avg_views",
			"niches",
			"last_scraped_at",
			"updated_at",
		}),
	}).Create(creator).Error
	if err != nil {
		return 0, err
	}

	// 冲突更新路径下自增 id 不可靠，按唯一键回查
	var stored model.DiscoveredCreator
	err = r.db.WithContext(ctx).
		Select("id").
		Where("platform = ? AND platform_user_id = ?", creator.Platform, creator.PlatformUserID).
		First(&stored).Error
	if err != nil {
		return 0, err
	}
	creator.ID = stored.ID
	return stored.ID, nil
}

// UpdateStats 刷新既有达人的统计字段并推进 last_scraped_at
func (r *discoveredCreatorRepoImpl) UpdateStats(ctx context.Context, creator *model.DiscoveredCreator) error {
	return r.db.WithContext(ctx).
		Model(&model.DiscoveredCreator{}).
		Where("id = ?", creator.ID).
		Updates(map[string]interface{}{
			"display_name":    creator.DisplayName,
			"handle":          creator.Handle,
			"avatar_url":      creator.AvatarURL,
			"bio":             creator.Bio,
			"followers":       creator.Followers,
			"total_posts":     creator.TotalPosts,
			"avg_views":       creator.AvgViews,
			"last_scraped_at": creator.LastScrapedAt,
		}).Error
}

func (r *discoveredCreatorRepoImpl) UpdateGrowthRate(ctx context.Context, creatorID uint64, rate float64) error {
	return r.db.WithContext(ctx).
		Model(&model.DiscoveredCreator{}).
		Where("id = ?", creatorID).
		Update("growth_rate", rate).Error
}

func (r *discoveredCreatorRepoImpl) GetByID(ctx context.Context, creatorID uint64) (*model.DiscoveredCreator, error) {
	var creator model.DiscoveredCreator
	err := r.db.WithContext(ctx).
		Where("id = ?", creatorID).
		First(&creator).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &creator, nil
}

func (r *discoveredCreatorRepoImpl) List(ctx context.Context, query CreatorQuery) ([]*model.DiscoveredCreator, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.DiscoveredCreator{})

	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}
	if query.Niche != "" {
		tx = tx.Where("niches LIKE ?", "%\""+query.Niche+"\"%")
	}
	if query.MinFollowers > 0 {
		tx = tx.Where("followers >= ?", query.MinFollowers)
	}
	if query.MaxFollowers > 0 {
		tx = tx.Where("followers <= ?", query.MaxFollowers)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	creators := make([]*model.DiscoveredCreator, 0)
	err := tx.Order("followers DESC").
		Offset(query.Offset).
		Limit(query.Limit).
		Find(&creators).Error
	if err != nil {
		return nil, 0, err
	}
	return creators, total, nil
}

func (r *discoveredCreatorRepoImpl) ListActive(ctx context.Context) ([]*model.DiscoveredCreator, error) {
	creators := make([]*model.DiscoveredCreator, 0)
	err := r.db.WithContext(ctx).
		Where("status = ?", consts.CreatorStatusActive).
		Find(&creators).Error
	if err != nil {
		return nil, err
	}
	return creators, nil
}

// ListOldestScraped 取最久未刷新的活跃达人。
// last_scraped_at 为 NULL 的行（从未刷新过）在 ASC 排序下排最前。
func (r *discoveredCreatorRepoImpl) ListOldestScraped(ctx context.Context, limit int) ([]*model.DiscoveredCreator, error) {
	creators := make([]*model.DiscoveredCreator, 0, limit)
	err := r.db.WithContext(ctx).
		Where("status = ?", consts.CreatorStatusActive).
		Order("last_scraped_at ASC").
		Limit(limit).
		Find(&creators).Error
	if err != nil {
		return nil, err
	}
	return creators, nil
}

func (r *discoveredCreatorRepoImpl) ListTopGrowth(ctx context.Context, limit int, minFollowers int) ([]*model.DiscoveredCreator, error) {
	creators := make([]*model.DiscoveredCreator, 0, limit)
	err := r.db.WithContext(ctx).
		Where("status = ?", consts.CreatorStatusActive).
		Where("followers >= ?", minFollowers).
		Order("growth_rate DESC").
		Limit(limit).
		Find(&creators).Error
	if err != nil {
		return nil, err
	}
	return creators, nil
}
