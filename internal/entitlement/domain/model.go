package domain

import "time"

// ClaimStatus is the payment claim state on an account. A claim only
// ever moves forward: none -> pending -> verified.
type ClaimStatus string

const (
	ClaimNone     ClaimStatus = "none"
	ClaimPending  ClaimStatus = "pending"
	ClaimVerified ClaimStatus = "verified"
)

// FreeGuideLimit is the number of development guides an unpaid account
// may generate.
const FreeGuideLimit = 3

// Account is the single keyed record per visitor email. It unifies the
// live entitlement state (paid flag, guide counter) with the payment
// claim the admin dashboard verifies, so a read of IsPaid is always
// consistent with the claim status.
type Account struct {
	Email         string      `json:"email"`
	TransactionID string      `json:"transaction_id"`
	ClaimID       string      `json:"claim_id,omitempty"`
	Status        ClaimStatus `json:"status"`
	IsPaid        bool        `json:"is_paid"`
	GuidesUsed    int         `json:"guides_used"`
	SubmittedAt   *time.Time  `json:"submitted_at,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// NewAccount creates a fresh free-tier account for an email.
func NewAccount(email string) *Account {
	now := time.Now().UTC()
	return &Account{
		Email:     email,
		Status:    ClaimNone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SubmitClaim records a payment claim on the account. A pending claim
// is overwritten in place (resubmission replaces the transaction id and
// restarts the pending state); a verified claim is terminal and
// resubmission is rejected. Submission never grants paid status.
func (a *Account) SubmitClaim(claimID, transactionID string, now time.Time) error {
	if a.Status == ClaimVerified {
		return ErrClaimVerified
	}
	a.ClaimID = claimID
	a.TransactionID = transactionID
	a.Status = ClaimPending
	submitted := now.UTC()
	a.SubmittedAt = &submitted
	a.UpdatedAt = submitted
	return nil
}

// VerifyClaim marks the claim verified and grants paid status. This is
// the only code path that sets IsPaid. Verifying an already-verified
// claim is a no-op success.
func (a *Account) VerifyClaim(now time.Time) error {
	switch a.Status {
	case ClaimVerified:
		return nil
	case ClaimPending:
		a.Status = ClaimVerified
		a.IsPaid = true
		a.UpdatedAt = now.UTC()
		return nil
	default:
		return ErrClaimNotFound
	}
}
