package repository

import (
	"context"
	"testing"
	"time"

	"risingcreators/internal/model"
	"risingcreators/internal/pkg/consts"
	"risingcreators/internal/testutil"

	"github.com/stretchr/testify/require"
)

func TestUpsertCreatorIdempotent(t *testing.T) {
	db := testutil.GetEmptyTestDB(t)
	repo := NewDiscoveredCreatorRepo(db)
	ctx := context.Background()

	first := &model.DiscoveredCreator{
		Platform:       consts.PlatformYouTube,
		PlatformUserID: "UC001",
		DisplayName:    "Cooking Daily",
		Followers:      25000,
		Status:         consts.CreatorStatusActive,
	}
	firstID, err := repo.Upsert(ctx, first)
	require.NoError(t, err)
	require.NotZero(t, firstID)
	require.NotNil(t, first.LastScrapedAt)

	second := &model.DiscoveredCreator{
		Platform:       consts.PlatformYouTube,
		PlatformUserID: "UC001",
		DisplayName:    "Cooking Daily (rebrand)",
		Followers:      26000,
		Status:         consts.CreatorStatusActive,
	}
	secondID, err := repo.Upsert(ctx, second)
	require.NoError(t, err)
	require.Equal(t, firstID, secondID)

	var count int64
	require.NoError(t, db.Model(&model.DiscoveredCreator{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	stored, err := repo.GetByID(ctx, firstID)
	require.NoError(t, err)
	require.Equal(t, "Cooking Daily (rebrand)", stored.DisplayName)
	require.Equal(t, 26000, stored.Followers)
}

func TestUpsertPreservesStatus(t *testing.T) {
	db := testutil.GetEmptyTestDB(t)
	repo := NewDiscoveredCreatorRepo(db)
	ctx := context.Background()

	id, err := repo.Upsert(ctx, &model.DiscoveredCreator{
		Platform:       consts.PlatformYouTube,
		PlatformUserID: "UC001",
		Status:         consts.CreatorStatusActive,
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&model.DiscoveredCreator{}).
		Where("id = ?", id).
		Update("status", consts.CreatorStatusInactive).Error)

	_, err = repo.Upsert(ctx, &model.DiscoveredCreator{
		Platform:       consts.PlatformYouTube,
		PlatformUserID: "UC001",
		Status:         consts.CreatorStatusActive,
	})
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, consts.CreatorStatusInactive, stored.Status)
}

func TestListOldestScraped(t *testing.T) {
	db := testutil.GetEmptyTestDB(t)
	repo := NewDiscoveredCreatorRepo(db)
	ctx := context.Background()

	old := time.Now().AddDate(0, 0, -3)
	older := time.Now().AddDate(0, 0, -7)

	seed := []*model.DiscoveredCreator{
		{Platform: consts.PlatformYouTube, PlatformUserID: "UC001", Status: consts.CreatorStatusActive, LastScrapedAt: &old},
		{Platform: consts.PlatformYouTube, PlatformUserID: "UC002", Status: consts.CreatorStatusActive, LastScrapedAt: nil},
		{Platform: consts.PlatformYouTube, PlatformUserID: "UC003", Status: consts.CreatorStatusActive, LastScrapedAt: &older},
		{Platform: consts.PlatformYouTube, PlatformUserID: "UC004", Status: consts.CreatorStatusInactive, LastScrapedAt: nil},
	}
	for _, c := range seed {
		require.NoError(t, db.Create(c).Error)
	}

	creators, err := repo.ListOldestScraped(ctx, 2)
	require.NoError(t, err)
	require.Len(t, creators, 2)
	// 从未抓取过的排最前，其次是最久未抓取的
	require.Equal(t, "UC002", creators[0].PlatformUserID)
	require.Equal(t, "UC003", creators[1].PlatformUserID)
}
