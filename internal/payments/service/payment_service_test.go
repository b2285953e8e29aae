package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/catalog/domain"
	catalogservice "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/catalog/service"
	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/entitlement/domain"
	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/entitlement/repository"
	entservice "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/entitlement/service"
	guideservice "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/guides/service"
)

type recordingAudit struct {
	submissions   int
	verifications int
}

func (a *recordingAudit) RecordSubmission(ctx context.Context, email, transactionID string) error {
	a.submissions++
	return nil
}

func (a *recordingAudit) RecordVerification(ctx context.Context, email, transactionID string, sessionPatched bool) error {
	a.verifications++
	return nil
}

func setupPaymentService(t *testing.T) (*PaymentService, *repository.AccountRepository, *recordingAudit) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	accounts := repository.NewAccountRepository(client)
	audit := &recordingAudit{}
	return NewPaymentService(accounts, audit), accounts, audit
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending claim without granting access", func(t *testing.T) {
		svc, _, audit := setupPaymentService(t)

		account, err := svc.Submit(ctx, "s1@test.edu", "UPI123")
		require.NoError(t, err)
		assert.Equal(t, domain.ClaimPending, account.Status)
		assert.False(t, account.IsPaid)
		assert.NotEmpty(t, account.ClaimID)
		assert.Equal(t, 1, audit.submissions)
	})

	t.Run("resubmission updates in place, store size unchanged", func(t *testing.T) {
		svc, accounts, _ := setupPaymentService(t)

		_, err := svc.Submit(ctx, "s1@test.edu", "UPI123")
		require.NoError(t, err)
		_, err = svc.Submit(ctx, "s1@test.edu", "UPI456")
		require.NoError(t, err)

		all, err := accounts.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "UPI456", all[0].TransactionID)
		assert.Equal(t, domain.ClaimPending, all[0].Status)
	})

	t.Run("rejected once verified", func(t *testing.T) {
		svc, _, _ := setupPaymentService(t)

		_, err := svc.Submit(ctx, "s1@test.edu", "UPI123")
		require.NoError(t, err)
		_, err = svc.Verify(ctx, "s1@test.edu")
		require.NoError(t, err)

		_, err = svc.Submit(ctx, "s1@test.edu", "UPI456")
		assert.ErrorIs(t, err, domain.ErrClaimVerified)
	})

	t.Run("blank input needs identity", func(t *testing.T) {
		svc, _, _ := setupPaymentService(t)
		_, err := svc.Submit(ctx, "  ", "UPI123")
		assert.ErrorIs(t, err, domain.ErrNeedsIdentity)
		_, err = svc.Submit(ctx, "s1@test.edu", "  ")
		assert.ErrorIs(t, err, domain.ErrNeedsIdentity)
	})
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email fails with claim not found", func(t *testing.T) {
		svc, _, _ := setupPaymentService(t)
		_, err := svc.Verify(ctx, "ghost@test.edu")
		assert.ErrorIs(t, err, domain.ErrClaimNotFound)
	})

	t.Run("account without a claim fails", func(t *testing.T) {
		svc, accounts, _ := setupPaymentService(t)
		require.NoError(t, accounts.Save(ctx, domain.NewAccount("s1@test.edu")))

		_, err := svc.Verify(ctx, "s1@test.edu")
		assert.ErrorIs(t, err, domain.ErrClaimNotFound)
	})

	t.Run("idempotent, same end state either way", func(t *testing.T) {
		svc, accounts, audit := setupPaymentService(t)
		_, err := svc.Submit(ctx, "s1@test.edu", "UPI123")
		require.NoError(t, err)

		first, err := svc.Verify(ctx, "s1@test.edu")
		require.NoError(t, err)
		assert.False(t, first.AlreadyVerified)

		second, err := svc.Verify(ctx, "s1@test.edu")
		require.NoError(t, err)
		assert.True(t, second.AlreadyVerified)

		account, err := accounts.GetByEmail(ctx, "s1@test.edu")
		require.NoError(t, err)
		assert.Equal(t, domain.ClaimVerified, account.Status)
		assert.True(t, account.IsPaid)
		assert.Equal(t, 1, audit.verifications, "a no-op re-verify leaves no audit event")
	})

	t.Run("reports whether a live session was bound", func(t *testing.T) {
		svc, accounts, _ := setupPaymentService(t)
		_, err := svc.Submit(ctx, "a@x.com", "UPI123")
		require.NoError(t, err)
		_, err = svc.Submit(ctx, "b@x.com", "UPI456")
		require.NoError(t, err)
		require.NoError(t, accounts.BindSession(ctx, "sess-a", "a@x.com"))

		resultA, err := svc.Verify(ctx, "a@x.com")
		require.NoError(t, err)
		assert.True(t, resultA.SessionPatched)

		resultB, err := svc.Verify(ctx, "b@x.com")
		require.NoError(t, err)
		assert.False(t, resultB.SessionPatched)
	})

	t.Run("verifying one email leaves others unpaid", func(t *testing.T) {
		svc, accounts, _ := setupPaymentService(t)
		_, err := svc.Submit(ctx, "a@x.com", "UPI123")
		require.NoError(t, err)
		_, err = svc.Submit(ctx, "b@x.com", "UPI456")
		require.NoError(t, err)

		_, err = svc.Verify(ctx, "a@x.com")
		require.NoError(t, err)

		other, err := accounts.GetByEmail(ctx, "b@x.com")
		require.NoError(t, err)
		assert.False(t, other.IsPaid)
		assert.Equal(t, domain.ClaimPending, other.Status)
	})
}

func TestReporting(t *testing.T) {
	svc, accounts, _ := setupPaymentService(t)
	ctx := context.Background()

	// An account that never submitted a claim stays out of the ledger.
	require.NoError(t, accounts.Save(ctx, domain.NewAccount("browsing@test.edu")))

	_, err := svc.Submit(ctx, "a@x.com", "UPI123")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, "b@x.com", "UPI456")
	require.NoError(t, err)
	_, err = svc.Verify(ctx, "a@x.com")
	require.NoError(t, err)

	claims, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, claims, 2)

	pending, err := svc.CountByStatus(ctx, domain.ClaimPending)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)

	verified, err := svc.CountByStatus(ctx, domain.ClaimVerified)
	require.NoError(t, err)
	assert.Equal(t, 1, verified)

	// CountByStatus scans every account, so browsing-only ones are
	// countable even though ListAll hides them.
	none, err := svc.CountByStatus(ctx, domain.ClaimNone)
	require.NoError(t, err)
	assert.Equal(t, 1, none)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &LedgerStats{Pending: 1, Verified: 1, Total: 2}, stats)
}

// The full visitor journey: three free guides, a denied fourth, a
// payment claim, admin verification, then MVP access.
func TestUpgradeJourney(t *testing.T) {
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ideas := map[string][]catalogdomain.ProjectIdea{
		"cse": {{
			ID: "cse-001", Title: "Test Idea", Category: "web-development", Department: "cse",
			DevelopmentGuide: "guide text", MvpPlan: "mvp text",
		}},
	}

	accounts := repository.NewAccountRepository(client)
	entitlements := entservice.NewEntitlementService(accounts)
	catalog := catalogservice.NewCatalogService(ideas, rand.New(rand.NewSource(1)))
	guides := guideservice.NewGuideService(catalog, entitlements, accounts)
	paymentSvc := NewPaymentService(accounts, nil)

	sessionID, _, err := entitlements.StartSession(ctx, "s1@test.edu")
	require.NoError(t, err)

	for i := 0; i < domain.FreeGuideLimit; i++ {
		_, _, err := guides.GenerateGuide(ctx, sessionID, "cse-001")
		require.NoError(t, err, "free guide %d", i+1)
	}

	_, _, err = guides.GenerateGuide(ctx, sessionID, "cse-001")
	require.ErrorIs(t, err, domain.ErrUpgradeRequired)

	account, err := paymentSvc.Submit(ctx, "s1@test.edu", "UPI123")
	require.NoError(t, err)
	assert.Equal(t, 3, account.GuidesUsed)
	assert.Equal(t, domain.ClaimPending, account.Status)

	result, err := paymentSvc.Verify(ctx, "s1@test.edu")
	require.NoError(t, err)
	assert.True(t, result.SessionPatched, "the visitor's session is live")

	plan, account, err := guides.GenerateMvpPlan(ctx, sessionID, "cse-001")
	require.NoError(t, err)
	assert.Equal(t, "mvp text", plan)
	assert.True(t, account.IsPaid)
	assert.Equal(t, 3, account.GuidesUsed, "counter frozen at upgrade time")
}
