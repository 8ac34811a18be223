package repository

import (
	"context"

	"wakescroll/backend/internal/model"
	"wakescroll/backend/internal/store"
)

// JournalEntryCap bounds the journal log; the oldest entry is silently
// dropped on overflow.
const JournalEntryCap = 100

// JournalRepository persists journal entries newest first.
type JournalRepository struct {
	kv      store.Store
	entries store.Log[model.JournalEntry]
}

func NewJournalRepository(kv store.Store) *JournalRepository {
	return &JournalRepository{
		kv:      kv,
		entries: store.Log[model.JournalEntry]{Name: "mindful_journal_entries", Cap: JournalEntryCap, NewestFirst: true},
	}
}

func (r *JournalRepository) View(ctx context.Context, fn func(txn store.Txn) error) error {
	return r.kv.View(ctx, fn)
}

func (r *JournalRepository) Update(ctx context.Context, fn func(txn store.Txn) error) error {
	return r.kv.Update(ctx, fn)
}

func (r *JournalRepository) EntriesTx(txn store.Txn, userID string) ([]model.JournalEntry, error) {
	return r.entries.Load(txn, userID)
}

func (r *JournalRepository) SaveEntriesTx(txn store.Txn, userID string, entries []model.JournalEntry) error {
	return r.entries.Save(txn, userID, entries)
}
