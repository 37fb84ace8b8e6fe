package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Snapshots returns the snapshot key-value view of the store. It
// satisfies quiz.SnapshotStore.
func (s *Store) Snapshots() *SnapshotKV {
	return &SnapshotKV{db: s.db}
}

// SnapshotKV is a durable key-value record set for session snapshots,
// one record per quiz key.
type SnapshotKV struct {
	db *sql.DB
}

// Get returns the stored bytes for key, or (nil, nil) when absent.
func (kv *SnapshotKV) Get(key string) ([]byte, error) {
	var data []byte
	err := kv.db.QueryRow(`SELECT data FROM snapshots WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot %s: %w", key, err)
	}
	return data, nil
}

// Put stores data under key, replacing any previous record.
func (kv *SnapshotKV) Put(key string, data []byte) error {
	_, err := kv.db.Exec(`
		INSERT INTO snapshots (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("put snapshot %s: %w", key, err)
	}
	return nil
}

// Delete removes the record for key. Deleting an absent key is not an
// error.
func (kv *SnapshotKV) Delete(key string) error {
	if _, err := kv.db.Exec(`DELETE FROM snapshots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete snapshot %s: %w", key, err)
	}
	return nil
}
