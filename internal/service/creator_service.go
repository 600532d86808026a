package service

import (
	"context"
	log "log/slog"
	"strconv"
	"time"

	"risingcreators/internal/api/dto"
	"risingcreators/internal/model"
	"risingcreators/internal/pkg/consts"
	"risingcreators/internal/repository"

	"github.com/goccy/go-json"
)

const (
	trendingLimit        = 20
	trendingMinFollowers = 1000
	growthWindowDays     = 30
)

// ListCache 榜单缓存的抽象，便于测试替换
type ListCache interface {
	GetList(ctx context.Context, key string) ([]string, error)
	SetListWithExpiration(ctx context.Context, key string, value []string, expiration time.Duration) error
}

type CreatorService interface {
	GetCreator(ctx context.Context, creatorID uint64) (*model.DiscoveredCreator, error)
	ListCreators(ctx context.Context, query *dto.CreatorListQuery) (*dto.CreatorListDTO, error)
	GetSnapshots(ctx context.Context, creatorID uint64, days int) ([]*model.CreatorSnapshot, error)
	GetTrending(ctx context.Context) ([]*model.DiscoveredCreator, error)
	RecalculateGrowthRates(ctx context.Context) error
}

type creatorServiceImpl struct {
	creatorRepo  repository.DiscoveredCreatorRepo
	snapshotRepo repository.CreatorSnapshotRepo
	cache        ListCache
}

func NewCreatorService(creatorRepo repository.DiscoveredCreatorRepo, snapshotRepo repository.CreatorSnapshotRepo, cache ListCache) CreatorService {
	return &creatorServiceImpl{
		creatorRepo:  creatorRepo,
		snapshotRepo: snapshotRepo,
		cache:        cache,
	}
}

func (s *creatorServiceImpl) GetCreator(ctx context.Context, creatorID uint64) (*model.DiscoveredCreator, error) {
	creator, err := s.creatorRepo.GetByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, ErrCreatorNotFound
	}
	return creator, nil
}

func (s *creatorServiceImpl) ListCreators(ctx context.Context, query *dto.CreatorListQuery) (*dto.CreatorListDTO, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	creators, total, err := s.creatorRepo.List(ctx, repository.CreatorQuery{
		Status:       query.Status,
		Niche:        query.Niche,
		MinFollowers: query.MinFollowers,
		MaxFollowers: query.MaxFollowers,
		Offset:       (page - 1) * pageSize,
		Limit:        pageSize,
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreatorListDTO{Items: creators, Total: total}, nil
}

func (s *creatorServiceImpl) GetSnapshots(ctx context.Context, creatorID uint64, days int) ([]*model.CreatorSnapshot, error) {
	if days != 7 && days != 30 {
		days = 30
	}

	creator, err := s.creatorRepo.GetByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, ErrCreatorNotFound
	}

	return s.snapshotRepo.ListSince(ctx, creatorID, time.Now().AddDate(0, 0, -days))
}

// GetTrending 增长率榜单，Redis 缓存到当天失效
func (s *creatorServiceImpl) GetTrending(ctx context.Context) ([]*model.DiscoveredCreator, error) {
	key := consts.TrendingCreatorsKey + strconv.Itoa(trendingLimit)

	list, err := s.cache.GetList(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(list) != 0 {
		creators := make([]*model.DiscoveredCreator, 0, len(list))
		for _, v := range list {
			var creator *model.DiscoveredCreator
			if err := json.Unmarshal([]byte(v), &creator); err != nil {
				return nil, err
			}
			creators = append(creators, creator)
		}
		return creators, nil
	}

	creators, err := s.creatorRepo.ListTopGrowth(ctx, trendingLimit, trendingMinFollowers)
	if err != nil {
		return nil, err
	}

	s.cacheTrending(ctx, key, creators)
	return creators, nil
}

func (s *creatorServiceImpl) cacheTrending(ctx context.Context, key string, creators []*model.DiscoveredCreator) {
	creatorJsons := make([]string, 0, len(creators))
	for _, v := range creators {
		creatorJson, err := json.Marshal(v)
		if err != nil {
			return
		}
		creatorJsons = append(creatorJsons, string(creatorJson))
	}
	if len(creatorJsons) == 0 {
		return
	}

	// 榜单每日重算一次，缓存提前 5 分钟过期
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	expiration := time.Until(midnight) - time.Minute*5
	if expiration < 0 {
		return
	}

	_ = s.cache.SetListWithExpiration(ctx, key, creatorJsons, expiration)
}

// RecalculateGrowthRates 基于快照时间序列重算活跃达人的粉丝增长率。
// 单个达人计算失败只记日志，不中断整轮重算。
func (s *creatorServiceImpl) RecalculateGrowthRates(ctx context.Context) error {
	creators, err := s.creatorRepo.ListActive(ctx)
	if err != nil {
		return err
	}

	since := time.Now().AddDate(0, 0, -growthWindowDays)
	for _, creator := range creators {
		snapshots, err := s.snapshotRepo.ListSince(ctx, creator.ID, since)
		if err != nil {
			log.WarnContext(ctx, "load snapshots failed", "creator_id", creator.ID, "err", err)
			continue
		}
		// 至少两个点才有增长可言
		if len(snapshots) < 2 {
			continue
		}

		first := snapshots[0]
		last := snapshots[len(snapshots)-1]
		if first.Followers <= 0 {
			continue
		}

		rate := float64(last.Followers-first.Followers) / float64(first.Followers) * 100
		if err = s.creatorRepo.UpdateGrowthRate(ctx, creator.ID, rate); err != nil {
			log.WarnContext(ctx, "update growth rate failed", "creator_id", creator.ID, "err", err)
		}
	}
	return nil
}
