// Package store holds the durable key-value store backing the reward,
// journal and timer ledgers, plus the event-log accessor pattern shared by
// all three.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Txn.Get for absent keys.
var ErrNotFound = errors.New("key not found")

// Txn is a transaction over the key-value store. Reads and writes inside one
// transaction are atomic; overlapping writers cannot clobber each other's
// read-modify-write cycles.
type Txn interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Store is a durable, string-keyed store with transactional access.
type Store interface {
	View(ctx context.Context, fn func(txn Txn) error) error
	Update(ctx context.Context, fn func(txn Txn) error) error
	Close() error
}

// UserKey namespaces a ledger key by user. The suffixes are the persisted
// state layout: mindful_xp, mindful_streak, last_interaction_date,
// xp_history, catch_scroll_taps, mindful_journal_entries,
// mindful_timer_sessions, personal_focus_goals.
func UserKey(userID, name string) string {
	return "u/" + userID + "/" + name
}
