package service

import (
	"context"
	log "log/slog"
	"time"

	"risingcreators/internal/api/dto"
	"risingcreators/internal/model"
	"risingcreators/internal/pkg/consts"
	"risingcreators/internal/pkg/ratelimit"
	"risingcreators/internal/pkg/youtube"
	"risingcreators/internal/repository"
)

// PlatformClient 上游平台 API 的抽象，便于测试替换
type PlatformClient interface {
	SearchChannels(ctx context.Context, query string) ([]string, error)
	FetchChannelStats(ctx context.Context, ids []string) (map[string]youtube.ChannelStats, error)
}

type DiscoveryService interface {
	CreateRule(ctx context.Context, req *dto.RuleDTO) (*model.AutoDiscoveryRule, error)
	UpdateRule(ctx context.Context, ruleID uint64, req *dto.RuleDTO) (*model.AutoDiscoveryRule, error)
	DeleteRule(ctx context.Context, ruleID uint64) error
	GetRule(ctx context.Context, ruleID uint64) (*model.AutoDiscoveryRule, error)
	ListRules(ctx context.Context) ([]*model.AutoDiscoveryRule, error)
	RunRule(ctx context.Context, ruleID uint64) (*dto.RunSummary, error)
	RunActiveRules(ctx context.Context) (*dto.RunSummary, error)
	RefreshSnapshots(ctx context.Context) (int, error)
}

// importOutcome 单条记录的处理结果，跑批过程中逐条聚合，
// 避免把“过滤掉”“上游缺失”这类正常分支当成异常吞掉
type importOutcome int

const (
	outcomeImported importOutcome = iota
	outcomeFiltered
	outcomeSkipped
	outcomeFailed
)

type discoveryServiceImpl struct {
	ruleRepo     repository.DiscoveryRuleRepo
	creatorRepo  repository.DiscoveredCreatorRepo
	snapshotRepo repository.CreatorSnapshotRepo
	platform     PlatformClient
	gate         *ratelimit.Gate
	creatorSvc   CreatorService
	refreshBatch int
}

func NewDiscoveryService(
	ruleRepo repository.DiscoveryRuleRepo,
	creatorRepo repository.DiscoveredCreatorRepo,
	snapshotRepo repository.CreatorSnapshotRepo,
	platform PlatformClient,
	gate *ratelimit.Gate,
	creatorSvc CreatorService,
	refreshBatch int,
) DiscoveryService {
	if refreshBatch <= 0 || refreshBatch > consts.MaxStatsBatch {
		refreshBatch = consts.MaxStatsBatch
	}
	return &discoveryServiceImpl{
		ruleRepo:     ruleRepo,
		creatorRepo:  creatorRepo,
		snapshotRepo: snapshotRepo,
		platform:     platform,
		gate:         gate,
		creatorSvc:   creatorSvc,
		refreshBatch: refreshBatch,
	}
}

func (s *discoveryServiceImpl) CreateRule(ctx context.Context, req *dto.RuleDTO) (*model.AutoDiscoveryRule, error) {
	rule := &model.AutoDiscoveryRule{
		Name:         req.Name,
		Queries:      req.Queries,
		Niches:       req.Niches,
		MinFollowers: req.MinFollowers,
		MaxFollowers: req.MaxFollowers,
		IsActive:     true,
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	if err := s.ruleRepo.Create(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *discoveryServiceImpl) UpdateRule(ctx context.Context, ruleID uint64, req *dto.RuleDTO) (*model.AutoDiscoveryRule, error) {
	rule, err := s.ruleRepo.GetByID(ctx, ruleID)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, ErrRuleNotFound
	}

	rule.Name = req.Name
	rule.Queries = req.Queries
	rule.Niches = req.Niches
	rule.MinFollowers = req.MinFollowers
	rule.MaxFollowers = req.MaxFollowers
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err = s.ruleRepo.Update(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *discoveryServiceImpl) DeleteRule(ctx context.Context, ruleID uint64) error {
	rule, err := s.ruleRepo.GetByID(ctx, ruleID)
	if err != nil {
		return err
	}
	if rule == nil {
		return ErrRuleNotFound
	}
	return s.ruleRepo.Delete(ctx, ruleID)
}

func (s *discoveryServiceImpl) GetRule(ctx context.Context, ruleID uint64) (*model.AutoDiscoveryRule, error) {
	rule, err := s.ruleRepo.GetByID(ctx, ruleID)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, ErrRuleNotFound
	}
	return rule, nil
}

func (s *discoveryServiceImpl) ListRules(ctx context.Context) ([]*model.AutoDiscoveryRule, error) {
	return s.ruleRepo.ListAll(ctx)
}

// RunRule 执行一条发现规则：逐个关键词搜索、批量拉取统计、过滤、落库。
// 单个关键词失败只影响自己，规则级别只有“规则不存在”会中断整次执行。
func (s *discoveryServiceImpl) RunRule(ctx context.Context, ruleID uint64) (*dto.RunSummary, error) {
	rule, err := s.ruleRepo.GetByID(ctx, ruleID)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, ErrRuleNotFound
	}

	summary := &dto.RunSummary{}
	for _, query := range rule.Queries {
		if err = s.gate.Wait(ctx); err != nil {
			log.WarnContext(ctx, "discovery run interrupted", "rule_id", rule.ID, "err", err)
			break
		}
		s.runQuery(ctx, rule, query, summary)
	}

	// 无论成功还是部分失败都推进 last_run_at
	if err = s.ruleRepo.TouchLastRun(ctx, rule.ID, time.Now()); err != nil {
		log.WarnContext(ctx, "touch last_run_at failed", "rule_id", rule.ID, "err", err)
	}

	log.InfoContext(ctx, "discovery rule finished",
		"rule_id", rule.ID, "found", summary.Found, "imported", summary.Imported)
	return summary, nil
}

// RunActiveRules 依次执行所有启用的规则，用于定时触发
func (s *discoveryServiceImpl) RunActiveRules(ctx context.Context) (*dto.RunSummary, error) {
	rules, err := s.ruleRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	total := &dto.RunSummary{}
	for _, rule := range rules {
		summary, err := s.RunRule(ctx, rule.ID)
		if err != nil {
			log.ErrorContext(ctx, "discovery rule run failed", "rule_id", rule.ID, "err", err)
			continue
		}
		total.Found += summary.Found
		total.Imported += summary.Imported
	}
	return total, nil
}

func (s *discoveryServiceImpl) runQuery(ctx context.Context, rule *model.AutoDiscoveryRule, query string, summary *dto.RunSummary) {
	ids, err := s.platform.SearchChannels(ctx, query)
	if err != nil {
		log.WarnContext(ctx, "channel search failed, skipping query",
			"rule_id", rule.ID, "query", query, "err", err)
		return
	}
	if len(ids) == 0 {
		return
	}
	if len(ids) > consts.MaxStatsBatch {
		ids = ids[:consts.MaxStatsBatch]
	}

	stats, err := s.platform.FetchChannelStats(ctx, ids)
	if err != nil {
		log.WarnContext(ctx, "channel stats fetch failed, skipping query",
			"rule_id", rule.ID, "query", query, "err", err)
		return
	}

	for _, channelID := range ids {
		switch s.importChannel(ctx, rule, channelID, stats) {
		case outcomeImported:
			summary.Found++
			summary.Imported++
		case outcomeFailed:
			summary.Found++
		}
	}
}

func (s *discoveryServiceImpl) importChannel(ctx context.Context, rule *model.AutoDiscoveryRule, channelID string, stats map[string]youtube.ChannelStats) importOutcome {
	st, ok := stats[channelID]
	if !ok {
		return outcomeSkipped
	}

	record := normalizeChannel(channelID, st, rule.Niches)
	if !rule.Matches(record.Followers) {
		return outcomeFiltered
	}

	creatorID, err := s.creatorRepo.Upsert(ctx, record)
	if err != nil {
		log.ErrorContext(ctx, "creator upsert failed",
			"rule_id", rule.ID, "channel_id", channelID, "err", err)
		return outcomeFailed
	}

	err = s.snapshotRepo.Upsert(ctx, &model.CreatorSnapshot{
		CreatorID:    creatorID,
		SnapshotDate: time.Now(),
		Followers:    record.Followers,
		TotalPosts:   record.TotalPosts,
	})
	if err != nil {
		log.ErrorContext(ctx, "snapshot upsert failed",
			"rule_id", rule.ID, "creator_id", creatorID, "err", err)
		return outcomeFailed
	}

	return outcomeImported
}

// RefreshSnapshots 刷新一批最久未抓取的达人：批量拉取最新统计、
// 更新达人行并补当天快照。上游缺失的达人原样跳过，等下一轮。
func (s *discoveryServiceImpl) RefreshSnapshots(ctx context.Context) (int, error) {
	creators, err := s.creatorRepo.ListOldestScraped(ctx, s.refreshBatch)
	if err != nil {
		return 0, err
	}
	if len(creators) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(creators))
	for _, creator := range creators {
		ids = append(ids, creator.PlatformUserID)
	}

	stats, err := s.platform.FetchChannelStats(ctx, ids)
	if err != nil {
		return 0, err
	}

	updated := 0
	now := time.Now()
	for _, creator := range creators {
		st, ok := stats[creator.PlatformUserID]
		if !ok {
			continue
		}

		fresh := normalizeChannel(creator.PlatformUserID, st, creator.Niches)
		creator.DisplayName = fresh.DisplayName
		creator.Handle = fresh.Handle
		creator.AvatarURL = fresh.AvatarURL
		creator.Bio = fresh.Bio
		creator.Followers = fresh.Followers
		creator.TotalPosts = fresh.TotalPosts
		creator.AvgViews = fresh.AvgViews
		creator.LastScrapedAt = &now

		if err = s.creatorRepo.UpdateStats(ctx, creator); err != nil {
			log.ErrorContext(ctx, "creator stats update failed", "creator_id", creator.ID, "err", err)
			continue
		}
		err = s.snapshotRepo.Upsert(ctx, &model.CreatorSnapshot{
			CreatorID:    creator.ID,
			SnapshotDate: now,
			Followers:    creator.Followers,
			TotalPosts:   creator.TotalPosts,
		})
		if err != nil {
			log.ErrorContext(ctx, "snapshot upsert failed", "creator_id", creator.ID, "err", err)
			continue
		}
		updated++
	}

	// 增长率重算失败不影响本次刷新结果，下一轮会基于同一张快照表重算
	if err = s.creatorSvc.RecalculateGrowthRates(ctx); err != nil {
		log.WarnContext(ctx, "growth rate recalculation failed", "err", err)
	}

	log.InfoContext(ctx, "snapshot refresh finished", "batch", len(creators), "updated", updated)
	return updated, nil
}
