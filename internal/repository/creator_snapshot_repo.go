package repository

import (
	"context"
	"time"

	"risingcreators/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreatorSnapshotRepo interface {
	Upsert(ctx context.Context, snapshot *model.CreatorSnapshot) error
	ListSince(ctx context.Context, creatorID uint64, since time.Time) ([]*model.CreatorSnapshot, error)
}

type creatorSnapshotRepoImpl struct {
	db *gorm.DB
}

func NewCreatorSnapshotRepo(db *gorm.DB) CreatorSnapshotRepo {
	return &creatorSnapshotRepoImpl{db: db}
}

// Upsert 按 (creator_id, snapshot_date) 插入或更新，同一天重复写入只覆盖数值
func (r *creatorSnapshotRepoImpl) Upsert(ctx context.Context, snapshot *model.CreatorSnapshot) error {
	snapshot.SnapshotDate = DateOnly(snapshot.SnapshotDate)

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "creator_id"}, {Name: "snapshot_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"followers",
			"total_posts",
		}),
	}).Create(snapshot).Error
}

func (r *creatorSnapshotRepoImpl) ListSince(ctx context.Context, creatorID uint64, since time.Time) ([]*model.CreatorSnapshot, error) {
	snapshots := make([]*model.CreatorSnapshot, 0)
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Where("snapshot_date >= ?", DateOnly(since)).
		Order("snapshot_date ASC").
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

// DateOnly 归一化到当天零点，保证日期唯一键稳定
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
