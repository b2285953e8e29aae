package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/entitlement/domain"
	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/entitlement/repository"
)

// EntitlementService manages visitor sessions and the account records
// behind them.
type EntitlementService struct {
	accounts *repository.AccountRepository
}

// NewEntitlementService creates a new EntitlementService
func NewEntitlementService(accounts *repository.AccountRepository) *EntitlementService {
	return &EntitlementService{accounts: accounts}
}

// StartSession binds a new session id to the email, creating a fresh
// free-tier account if none exists yet. Returning visitors get their
// existing record back, counters and claim intact.
func (s *EntitlementService) StartSession(ctx context.Context, email string) (string, *domain.Account, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return "", nil, domain.ErrNeedsIdentity
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err == domain.ErrAccountNotFound {
		account = domain.NewAccount(email)
		if err := s.accounts.Save(ctx, account); err != nil {
			return "", nil, err
		}
	} else if err != nil {
		return "", nil, err
	}

	sessionID := uuid.New().String()
	if err := s.accounts.BindSession(ctx, sessionID, email); err != nil {
		return "", nil, err
	}

	return sessionID, account, nil
}

// CurrentAccount resolves a session to its account with a fresh read
// of the store, so paid status verified since the session started is
// visible immediately.
func (s *EntitlementService) CurrentAccount(ctx context.Context, sessionID string) (*domain.Account, error) {
	email, err := s.accounts.EmailForSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.accounts.GetByEmail(ctx, email)
}

// Evaluate checks a capability for the session's account. An unknown
// session evaluates as an anonymous visitor.
func (s *EntitlementService) Evaluate(ctx context.Context, sessionID string, capability domain.Capability) (*domain.Account, error) {
	account, err := s.CurrentAccount(ctx, sessionID)
	if err == domain.ErrSessionNotFound || err == domain.ErrAccountNotFound {
		return nil, domain.Evaluate(nil, capability)
	}
	if err != nil {
		return nil, err
	}
	if err := domain.Evaluate(account, capability); err != nil {
		return account, err
	}
	return account, nil
}
