package domain

import "errors"

var (
	// ErrNeedsIdentity means no account is associated with the request;
	// the caller must collect an email first.
	ErrNeedsIdentity = errors.New("email required before generating")

	// ErrUpgradeRequired means the free guide allowance is exhausted.
	ErrUpgradeRequired = errors.New("free guide limit reached, upgrade required")

	// ErrProOnly means the capability is reserved for paid accounts.
	ErrProOnly = errors.New("mvp plan generation is a pro feature")

	ErrAccountNotFound = errors.New("account not found")
	ErrSessionNotFound = errors.New("session not found")

	// ErrClaimNotFound means there is no payment claim to verify for
	// the email.
	ErrClaimNotFound = errors.New("payment claim not found")

	// ErrClaimVerified rejects resubmission against a verified claim;
	// verified is terminal.
	ErrClaimVerified = errors.New("payment claim already verified")

	ErrUnknownCapability = errors.New("unknown capability")
)
