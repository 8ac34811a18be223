package store

import (
	"encoding/json"
	"errors"
	"strconv"
)

// Log reads and writes a JSON-encoded array of records under a single
// per-user key. Absent or corrupt data reads as an empty log; the retention
// cap is applied on save.
//
// NewestFirst logs (journal entries, timer sessions) are prepended to and
// trimmed at the tail; oldest-first logs (XP history, kept sorted by date)
// are trimmed at the head. Either way the oldest records are the ones
// dropped.
type Log[T any] struct {
	Name        string
	Cap         int // <= 0 means unbounded
	NewestFirst bool
}

func (l Log[T]) key(userID string) string {
	return UserKey(userID, l.Name)
}

// Load returns the decoded log, or an empty slice when the key is absent or
// its contents do not decode.
func (l Log[T]) Load(txn Txn, userID string) ([]T, error) {
	raw, err := txn.Get(l.key(userID))
	if errors.Is(err, ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		// Corrupt payloads are treated as absent.
		return []T{}, nil
	}
	return records, nil
}

// Save encodes and writes the log, trimming to the retention cap first.
func (l Log[T]) Save(txn Txn, userID string, records []T) error {
	records = l.trim(records)
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return txn.Set(l.key(userID), raw)
}

func (l Log[T]) trim(records []T) []T {
	if l.Cap <= 0 || len(records) <= l.Cap {
		return records
	}
	if l.NewestFirst {
		return records[:l.Cap]
	}
	return records[len(records)-l.Cap:]
}

// GetInt reads an integer scalar, defaulting to 0 when absent or corrupt.
func GetInt(txn Txn, key string) (int, error) {
	raw, err := txn.Get(key)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	value, convErr := strconv.Atoi(string(raw))
	if convErr != nil {
		return 0, nil
	}
	return value, nil
}

// SetInt writes an integer scalar as its decimal string.
func SetInt(txn Txn, key string, value int) error {
	return txn.Set(key, []byte(strconv.Itoa(value)))
}

// GetString reads a string scalar, defaulting to "" when absent.
func GetString(txn Txn, key string) (string, error) {
	raw, err := txn.Get(key)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// SetString writes a string scalar.
func SetString(txn Txn, key, value string) error {
	return txn.Set(key, []byte(value))
}
