package repository

import (
	"context"
	"errors"
	"time"

	"risingcreators/internal/model"

	"gorm.io/gorm"
)

type DiscoveryRuleRepo interface {
	Create(ctx context.Context, rule *model.AutoDiscoveryRule) error
	Update(ctx context.Context, rule *model.AutoDiscoveryRule) error
	Delete(ctx context.Context, ruleID uint64) error
	GetByID(ctx context.Context, ruleID uint64) (*model.AutoDiscoveryRule, error)
	ListAll(ctx context.Context) ([]*model.AutoDiscoveryRule, error)
	ListActive(ctx context.Context) ([]*model.AutoDiscoveryRule, error)
	TouchLastRun(ctx context.Context, ruleID uint64, at time.Time) error
}

type discoveryRuleRepoImpl struct {
	db *gorm.DB
}

func NewDiscoveryRuleRepo(db *gorm.DB) DiscoveryRuleRepo {
	return &discoveryRuleRepoImpl{db: db}
}

func (r *discoveryRuleRepoImpl) Create(ctx context.Context, rule *model.AutoDiscoveryRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *discoveryRuleRepoImpl) Update(ctx context.Context, rule *model.AutoDiscoveryRule) error {
	return r.db.WithContext(ctx).Save(rule).Error
}

func (r *discoveryRuleRepoImpl) Delete(ctx context.Context, ruleID uint64) error {
	return r.db.WithContext(ctx).Delete(&model.AutoDiscoveryRule{}, ruleID).Error
}

func (r *discoveryRuleRepoImpl) GetByID(ctx context.Context, ruleID uint64) (*model.AutoDiscoveryRule, error) {
	var rule model.AutoDiscoveryRule
	err := r.db.WithContext(ctx).
		Where("id = ?", ruleID).
		First(&rule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

func (r *discoveryRuleRepoImpl) ListAll(ctx context.Context) ([]*model.AutoDiscoveryRule, error) {
	rules := make([]*model.AutoDiscoveryRule, 0)
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *discoveryRuleRepoImpl) ListActive(ctx context.Context) ([]*model.AutoDiscoveryRule, error) {
	rules := make([]*model.AutoDiscoveryRule, 0)
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

// TouchLastRun 只推进 last_run_at，跑完一轮后无条件调用
func (r *discoveryRuleRepoImpl) TouchLastRun(ctx context.Context, ruleID uint64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.AutoDiscoveryRule{}).
		Where("id = ?", ruleID).
		Update("last_run_at", at).Error
}
