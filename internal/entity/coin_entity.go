package entity

import (
	"time"

	"github.com/google/uuid"
)

type CoinDirection string

const (
	CoinDirectionCredit CoinDirection = "credit"
	CoinDirectionDebit  CoinDirection = "debit"
)

// CoinEntry is one ledger movement. The Reason string doubles as the
// idempotency key for one-time credits (e.g. elite referrals).
type CoinEntry struct {
	Amount    int           `json:"amount"`
	Direction CoinDirection `json:"direction"`
	Reason    string        `json:"reason"`
	CreatedAt time.Time     `json:"created_at"`
}

// CoinAccount is the per-owner coin balance plus its full history.
type CoinAccount struct {
	Id        uuid.UUID // Owner (recruiter or candidate) ID
	Balance   int
	History   []CoinEntry
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// HasReason reports whether a ledger entry with this reason already
// exists, which is how replayed credits are deduplicated.
func (a *CoinAccount) HasReason(reason string) bool {
	for _, entry := range a.History {
		if entry.Reason == reason {
			return true
		}
	}
	return false
}
