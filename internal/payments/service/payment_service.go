package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/entitlement/domain"
	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/entitlement/repository"
)

// AuditLog records payment events durably for the admin. Implemented
// by the Postgres audit repository; may be nil when auditing is
// disabled.
type AuditLog interface {
	RecordSubmission(ctx context.Context, email, transactionID string) error
	RecordVerification(ctx context.Context, email, transactionID string, sessionPatched bool) error
}

// ReconcileResult reports the outcome of an admin verification,
// including whether a live session was bound to the verified email at
// the time.
type ReconcileResult struct {
	Email           string `json:"email"`
	AlreadyVerified bool   `json:"already_verified"`
	SessionPatched  bool   `json:"session_patched"`
}

// LedgerStats summarizes claims for the admin dashboard cards.
type LedgerStats struct {
	Pending  int `json:"pending"`
	Verified int `json:"verified"`
	Total    int `json:"total"`
}

// PaymentService handles payment claim submission and admin
// verification over the account store.
type PaymentService struct {
	accounts *repository.AccountRepository
	audit    AuditLog
}

// NewPaymentService creates a new PaymentService. audit may be nil.
func NewPaymentService(accounts *repository.AccountRepository, audit AuditLog) *PaymentService {
	return &PaymentService{
		accounts: accounts,
		audit:    audit,
	}
}

// Submit records a payment claim for the email. An unknown email gets
// a fresh account so a visitor can pay before ever starting a session.
// A pending claim is overwritten in place (the store never grows a
// second record per email); a verified claim rejects resubmission with
// ErrClaimVerified. Submission never grants paid status.
func (s *PaymentService) Submit(ctx context.Context, email, transactionID string) (*domain.Account, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	transactionID = strings.TrimSpace(transactionID)
	if email == "" || transactionID == "" {
		return nil, domain.ErrNeedsIdentity
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err == domain.ErrAccountNotFound {
		account = domain.NewAccount(email)
	} else if err != nil {
		return nil, err
	}

	if err := account.SubmitClaim(uuid.New().String(), transactionID, time.Now()); err != nil {
		return nil, err
	}

	if err := s.accounts.Save(ctx, account); err != nil {
		return nil, err
	}

	s.auditSubmission(ctx, email, transactionID)
	return account, nil
}

// Verify marks the email's claim verified and grants paid status,
// idempotently. Because entitlement reads always load the account
// fresh, a live session for this email sees paid status on its next
// request without any separate patch step.
func (s *PaymentService) Verify(ctx context.Context, email string) (*ReconcileResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	account, err := s.accounts.GetByEmail(ctx, email)
	if err == domain.ErrAccountNotFound {
		return nil, domain.ErrClaimNotFound
	}
	if err != nil {
		return nil, err
	}

	alreadyVerified := account.Status == domain.ClaimVerified
	if err := account.VerifyClaim(time.Now()); err != nil {
		return nil, err
	}

	if !alreadyVerified {
		if err := s.accounts.Save(ctx, account); err != nil {
			return nil, err
		}
	}

	result := &ReconcileResult{
		Email:           email,
		AlreadyVerified: alreadyVerified,
	}
	if _, err := s.accounts.SessionForEmail(ctx, email); err == nil {
		result.SessionPatched = true
	}

	// An idempotent re-verify changed nothing, so it leaves no audit event.
	if !alreadyVerified {
		s.auditVerification(ctx, email, account.TransactionID, result.SessionPatched)
	}
	return result, nil
}

// ListAll returns every account that has submitted a claim, for the
// admin table.
func (s *PaymentService) ListAll(ctx context.Context) ([]*domain.Account, error) {
	accounts, err := s.accounts.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Account, 0, len(accounts))
	for _, account := range accounts {
		if account.Status == domain.ClaimNone {
			continue
		}
		out = append(out, account)
	}
	return out, nil
}

// CountByStatus counts accounts in the given claim state. Unlike
// ListAll it scans every stored account, so counting ClaimNone works.
func (s *PaymentService) CountByStatus(ctx context.Context, status domain.ClaimStatus) (int, error) {
	accounts, err := s.accounts.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, account := range accounts {
		if account.Status == status {
			count++
		}
	}
	return count, nil
}

// Stats returns the dashboard counters in one call.
func (s *PaymentService) Stats(ctx context.Context) (*LedgerStats, error) {
	claims, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &LedgerStats{Total: len(claims)}
	for _, account := range claims {
		switch account.Status {
		case domain.ClaimPending:
			stats.Pending++
		case domain.ClaimVerified:
			stats.Verified++
		}
	}
	return stats, nil
}

// Audit failures are logged, never surfaced: the claim transition is
// the source of truth and has already been persisted.
func (s *PaymentService) auditSubmission(ctx context.Context, email, transactionID string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.RecordSubmission(ctx, email, transactionID); err != nil {
		log.Printf("[warn] operation=audit_submission email=%s error=%v", email, err)
	}
}

func (s *PaymentService) auditVerification(ctx context.Context, email, transactionID string, sessionPatched bool) {
	if s.audit == nil {
		return
	}
	if err := s.audit.RecordVerification(ctx, email, transactionID, sessionPatched); err != nil {
		log.Printf("[warn] operation=audit_verification email=%s error=%v", email, err)
	}
}
