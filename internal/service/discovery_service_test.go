package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"risingcreators/internal/api/dto"
	"risingcreators/internal/model"
	"risingcreators/internal/pkg/consts"
	"risingcreators/internal/pkg/ratelimit"
	"risingcreators/internal/pkg/youtube"
	"risingcreators/internal/repository"
	"risingcreators/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePlatform struct {
	searchResults map[string][]string
	searchErrs    map[string]error
	stats         map[string]youtube.ChannelStats
	statsErr      error
	searchCalls   int
	statsCalls    int
}

func (f *fakePlatform) SearchChannels(_ context.Context, query string) ([]string, error) {
	f.searchCalls++
	if err := f.searchErrs[query]; err != nil {
		return nil, err
	}
	return f.searchResults[query], nil
}

func (f *fakePlatform) FetchChannelStats(_ context.Context, ids []string) (map[string]youtube.ChannelStats, error) {
	f.statsCalls++
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	out := make(map[string]youtube.ChannelStats, len(ids))
	for _, id := range ids {
		if st, ok := f.stats[id]; ok {
			out[id] = st
		}
	}
	return out, nil
}

type discoveryTestEnv struct {
	db       *gorm.DB
	svc      DiscoveryService
	ruleRepo repository.DiscoveryRuleRepo
}

func newDiscoveryTestEnv(t *testing.T, platform PlatformClient) *discoveryTestEnv {
	db := testutil.GetEmptyTestDB(t)
	ruleRepo := repository.NewDiscoveryRuleRepo(db)
	creatorRepo := repository.NewDiscoveredCreatorRepo(db)
	snapshotRepo := repository.NewCreatorSnapshotRepo(db)
	creatorSvc := NewCreatorService(creatorRepo, snapshotRepo, &testutil.MockListCache{})

	svc := NewDiscoveryService(
		ruleRepo, creatorRepo, snapshotRepo,
		platform, ratelimit.NewGate(0), creatorSvc, 50,
	)
	return &discoveryTestEnv{db: db, svc: svc, ruleRepo: ruleRepo}
}

func statsFor(subs string) youtube.ChannelStats {
	return youtube.ChannelStats{
		Title:           "channel",
		SubscriberCount: subs,
		VideoCount:      "100",
		ViewCount:       "1000000",
	}
}

func midTierRule(t *testing.T, env *discoveryTestEnv, queries ...string) *model.AutoDiscoveryRule {
	rule := &model.AutoDiscoveryRule{
		Name:         "mid-tier",
		Queries:      queries,
		Niches:       []string{"food"},
		MinFollowers: 10000,
		MaxFollowers: 50000,
		IsActive:     true,
	}
	require.NoError(t, env.ruleRepo.Create(context.Background(), rule))
	return rule
}

func TestRunRuleFiltersByTier(t *testing.T) {
	platform := &fakePlatform{
		searchResults: map[string][]string{"cooking": {"UC001", "UC002", "UC003"}},
		stats: map[string]youtube.ChannelStats{
			"UC001": statsFor("5000"),
			"UC002": statsFor("25000"),
			"UC003": statsFor("60000"),
		},
	}
	env := newDiscoveryTestEnv(t, platform)
	rule := midTierRule(t, env, "cooking")

	summary, err := env.svc.RunRule(context.Background(), rule.ID)
	require.NoError(t, err)
	require.Equal(t, &dto.RunSummary{Found: 1, Imported: 1}, summary)

	var creators []*model.DiscoveredCreator
	require.NoError(t, env.db.Find(&creators).Error)
	require.Len(t, creators, 1)
	require.Equal(t, "UC002", creators[0].PlatformUserID)
	require.Equal(t, 25000, creators[0].Followers)

	var snapshots int64
	require.NoError(t, env.db.Model(&model.CreatorSnapshot{}).Count(&snapshots).Error)
	require.EqualValues(t, 1, snapshots)
}

func TestRunRuleQueryFailureIsolated(t *testing.T) {
	platform := &fakePlatform{
		searchResults: map[string][]string{"good": {"UC002"}},
		searchErrs:    map[string]error{"bad": errors.New("quota exceeded")},
		stats:         map[string]youtube.ChannelStats{"UC002": statsFor("25000")},
	}
	env := newDiscoveryTestEnv(t, platform)
	rule := midTierRule(t, env, "bad", "good")

	summary, err := env.svc.RunRule(context.Background(), rule.ID)
	require.NoError(t, err)
	require.Equal(t, 2, platform.searchCalls)
	require.Equal(t, &dto.RunSummary{Found: 1, Imported: 1}, summary)
}

func TestRunRuleEmptySearchResult(t *testing.T) {
	platform := &fakePlatform{
		searchResults: map[string][]string{"cooking": {}},
	}
	env := newDiscoveryTestEnv(t, platform)
	rule := midTierRule(t, env, "cooking")

	summary, err := env.svc.RunRule(context.Background(), rule.ID)
	require.NoError(t, err)
	require.Equal(t, &dto.RunSummary{}, summary)
	require.Zero(t, platform.statsCalls)

	// 即便一无所获也推进 last_run_at
	stored, err := env.ruleRepo.GetByID(context.Background(), rule.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastRunAt)
}

func TestRunRuleNotFound(t *testing.T) {
	env := newDiscoveryTestEnv(t, &fakePlatform{})

	_, err := env.svc.RunRule(context.Background(), 999)
	require.ErrorIs(t, err, ErrRuleNotFound)
}

func TestRunRuleRerunOverwrites(t *testing.T) {
	platform := &fakePlatform{
		searchResults: map[string][]string{"cooking": {"UC002"}},
		stats:         map[string]youtube.ChannelStats{"UC002": statsFor("25000")},
	}
	env := newDiscoveryTestEnv(t, platform)
	rule := midTierRule(t, env, "cooking")

	first, err := env.svc.RunRule(context.Background(), rule.ID)
	require.NoError(t, err)
	second, err := env.svc.RunRule(context.Background(), rule.ID)
	require.NoError(t, err)
	require.Equal(t, first.Found, second.Found)
	require.Equal(t, first.Imported, second.Imported)

	var creators, snapshots int64
	require.NoError(t, env.db.Model(&model.DiscoveredCreator{}).Count(&creators).Error)
	require.NoError(t, env.db.Model(&model.CreatorSnapshot{}).Count(&snapshots).Error)
	require.EqualValues(t, 1, creators)
	require.EqualValues(t, 1, snapshots)
}

func TestRefreshSnapshotsSkipsMissingUpstream(t *testing.T) {
	platform := &fakePlatform{
		stats: map[string]youtube.ChannelStats{
			"UC001": statsFor("11000"),
			"UC002": statsFor("12000"),
			"UC003": statsFor("13000"),
		},
	}
	env := newDiscoveryTestEnv(t, platform)

	stale := time.Now().AddDate(0, 0, -3)
	for _, id := range []string{"UC001", "UC002", "UC003", "UC004", "UC005"} {
		staleCopy := stale
		require.NoError(t, env.db.Create(&model.DiscoveredCreator{
			Platform:       consts.PlatformYouTube,
			PlatformUserID: id,
			Followers:      10000,
			Status:         consts.CreatorStatusActive,
			LastScrapedAt:  &staleCopy,
		}).Error)
	}

	updated, err := env.svc.RefreshSnapshots(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, updated)
	require.Equal(t, 1, platform.statsCalls)

	var untouched model.DiscoveredCreator
	require.NoError(t, env.db.Where("platform_user_id = ?", "UC004").First(&untouched).Error)
	require.Equal(t, 10000, untouched.Followers)
	require.NotNil(t, untouched.LastScrapedAt)
	require.WithinDuration(t, stale, *untouched.LastScrapedAt, time.Second)

	var refreshed model.DiscoveredCreator
	require.NoError(t, env.db.Where("platform_user_id = ?", "UC002").First(&refreshed).Error)
	require.Equal(t, 12000, refreshed.Followers)

	var snapshots int64
	require.NoError(t, env.db.Model(&model.CreatorSnapshot{}).Count(&snapshots).Error)
	require.EqualValues(t, 3, snapshots)
}

func TestRefreshSnapshotsNothingDue(t *testing.T) {
	platform := &fakePlatform{}
	env := newDiscoveryTestEnv(t, platform)

	updated, err := env.svc.RefreshSnapshots(context.Background())
	require.NoError(t, err)
	require.Zero(t, updated)
	require.Zero(t, platform.statsCalls)
}
