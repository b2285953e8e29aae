package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/entitlement/domain"
)

const (
	accountKeyPrefix = "idea:account:"         // Account record: idea:account:{email}
	accountSetKey    = "idea:accounts"         // Set of all account emails
	sessionKeyPrefix = "idea:session:"         // Session binding: idea:session:{session_id} -> email
	emailSessionPref = "idea:account-session:" // Reverse index: idea:account-session:{email} -> session_id
	sessionTTL       = 30 * 24 * time.Hour     // Sessions expire; accounts do not
)

// AccountRepository is the single keyed store for visitor accounts.
// Records are JSON blobs keyed by email with a membership set for
// listing; session ids bind to emails with a reverse index so a verify
// action can report whether a live session was affected.
type AccountRepository struct {
	client *redis.Client
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(client *redis.Client) *AccountRepository {
	return &AccountRepository{client: client}
}

// Save writes the account record and registers its email in the
// membership set.
func (r *AccountRepository) Save(ctx context.Context, account *domain.Account) error {
	if account.Email == "" {
		return fmt.Errorf("account email required")
	}
	account.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("failed to marshal account: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.accountKey(account.Email), data, 0)
	pipe.SAdd(ctx, accountSetKey, account.Email)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

// GetByEmail loads an account. A malformed stored record is treated as
// absence, never as a crash.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	data, err := r.client.Get(ctx, r.accountKey(email)).Result()
	if err == redis.Nil {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	var account domain.Account
	if err := json.Unmarshal([]byte(data), &account); err != nil {
		log.Printf("[warn] operation=get_account email=%s discarding malformed record: %v", email, err)
		return nil, domain.ErrAccountNotFound
	}
	return &account, nil
}

// ListAll returns every stored account. Emails whose record has gone
// missing or unreadable are skipped.
func (r *AccountRepository) ListAll(ctx context.Context) ([]*domain.Account, error) {
	emails, err := r.client.SMembers(ctx, accountSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	out := make([]*domain.Account, 0, len(emails))
	for _, email := range emails {
		account, err := r.GetByEmail(ctx, email)
		if err == domain.ErrAccountNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, account)
	}
	return out, nil
}

// BindSession associates a session id with an email in both
// directions. A later binding for the same email replaces the old one.
func (r *AccountRepository) BindSession(ctx context.Context, sessionID, email string) error {
	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.sessionKey(sessionID), email, sessionTTL)
	pipe.Set(ctx, r.emailSessionKey(email), sessionID, sessionTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to bind session: %w", err)
	}
	return nil
}

// EmailForSession resolves a session id to the bound email.
func (r *AccountRepository) EmailForSession(ctx context.Context, sessionID string) (string, error) {
	email, err := r.client.Get(ctx, r.sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return "", domain.ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve session: %w", err)
	}
	return email, nil
}

// SessionForEmail returns the live session bound to an email, or
// ErrSessionNotFound when none is active.
func (r *AccountRepository) SessionForEmail(ctx context.Context, email string) (string, error) {
	sessionID, err := r.client.Get(ctx, r.emailSessionKey(email)).Result()
	if err == redis.Nil {
		return "", domain.ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve account session: %w", err)
	}
	return sessionID, nil
}

func (r *AccountRepository) accountKey(email string) string {
	return accountKeyPrefix + email
}

func (r *AccountRepository) sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func (r *AccountRepository) emailSessionKey(email string) string {
	return emailSessionPref + email
}
