package service

import (
	"context"

	catalogdomain "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/catalog/domain"
	catalogservice "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/catalog/service"
	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/entitlement/domain"
	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/entitlement/repository"
	entservice "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/entitlement/service"
)

// GuideService gates guide and MVP-plan generation behind the
// entitlement rules and keeps the free-tier counter.
type GuideService struct {
	catalog      *catalogservice.CatalogService
	entitlements *entservice.EntitlementService
	accounts     *repository.AccountRepository
}

// NewGuideService creates a new GuideService
func NewGuideService(catalog *catalogservice.CatalogService, entitlements *entservice.EntitlementService, accounts *repository.AccountRepository) *GuideService {
	return &GuideService{
		catalog:      catalog,
		entitlements: entitlements,
		accounts:     accounts,
	}
}

// GenerateGuide returns the development guide for an idea if the
// session's account is allowed one. On success for an unpaid account
// the guide counter is incremented by exactly one and persisted; paid
// counters stay frozen at their value from upgrade time.
func (s *GuideService) GenerateGuide(ctx context.Context, sessionID, ideaID string) (string, *domain.Account, error) {
	account, err := s.entitlements.Evaluate(ctx, sessionID, domain.CapabilityGuide)
	if err != nil {
		return "", account, err
	}

	idea := s.catalog.ByID(ideaID)
	if idea == nil {
		return "", account, catalogdomain.ErrIdeaNotFound
	}

	if !account.IsPaid {
		account.GuidesUsed++
		if err := s.accounts.Save(ctx, account); err != nil {
			return "", account, err
		}
	}

	return idea.DevelopmentGuide, account, nil
}

// GenerateMvpPlan returns the MVP plan for an idea. Paid accounts
// only; the guide counter is never touched here.
func (s *GuideService) GenerateMvpPlan(ctx context.Context, sessionID, ideaID string) (string, *domain.Account, error) {
	account, err := s.entitlements.Evaluate(ctx, sessionID, domain.CapabilityMvpPlan)
	if err != nil {
		return "", account, err
	}

	idea := s.catalog.ByID(ideaID)
	if idea == nil {
		return "", account, catalogdomain.ErrIdeaNotFound
	}

	return idea.MvpPlan, account, nil
}
