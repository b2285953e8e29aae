package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PaymentEvent is one row of the append-only audit trail.
type PaymentEvent struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	TransactionID  string    `json:"transaction_id"`
	Action         string    `json:"action"`
	SessionPatched bool      `json:"session_patched"`
	CreatedAt      time.Time `json:"created_at"`
}

const (
	ActionSubmitted = "submitted"
	ActionVerified  = "verified"
)

// AuditRepository persists payment events in Postgres. The trail is
// append-only; the Redis account store remains the source of truth for
// entitlement state.
type AuditRepository struct {
	db *pgxpool.Pool
}

// NewAuditRepository creates a new AuditRepository
func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{db: db}
}

// EnsureSchema creates the audit table if it does not exist.
func (r *AuditRepository) EnsureSchema(ctx context.Context) error {
	const q = `
CREATE TABLE IF NOT EXISTS payment_events (
    id              BIGSERIAL PRIMARY KEY,
    email           TEXT NOT NULL,
    transaction_id  TEXT NOT NULL,
    action          TEXT NOT NULL,
    session_patched BOOLEAN NOT NULL DEFAULT FALSE,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS payment_events_email_idx ON payment_events (email);
`
	_, err := r.db.Exec(ctx, q)
	return err
}

// RecordSubmission appends a claim-submission event.
func (r *AuditRepository) RecordSubmission(ctx context.Context, email, transactionID string) error {
	const q = `
INSERT INTO payment_events (email, transaction_id, action)
VALUES ($1, $2, $3);
`
	_, err := r.db.Exec(ctx, q, email, transactionID, ActionSubmitted)
	return err
}

// RecordVerification appends an admin-verification event.
func (r *AuditRepository) RecordVerification(ctx context.Context, email, transactionID string, sessionPatched bool) error {
	const q = `
INSERT INTO payment_events (email, transaction_id, action, session_patched)
VALUES ($1, $2, $3, $4);
`
	_, err := r.db.Exec(ctx, q, email, transactionID, ActionVerified, sessionPatched)
	return err
}

// ListRecent returns the newest events first, capped at limit.
func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]PaymentEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	const q = `
SELECT id, email, transaction_id, action, session_patched, created_at
FROM payment_events
ORDER BY created_at DESC, id DESC
LIMIT $1;
`
	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PaymentEvent, 0, limit)
	for rows.Next() {
		var e PaymentEvent
		if err := rows.Scan(&e.ID, &e.Email, &e.TransactionID, &e.Action, &e.SessionPatched, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
