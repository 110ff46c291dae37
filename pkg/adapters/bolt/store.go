// Package bolt implements ports.ListStore on a single bbolt database file.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aretw0/algoviz/pkg/domain"
	bolt "go.etcd.io/bbolt"
)

const bucketSessions = "sessions"

// Store keeps one JSON record per session in the "sessions" bucket.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSessions))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize sessions bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Save stores the state under sessionID.
func (s *Store) Save(ctx context.Context, sessionID string, state *domain.ListState) error {
	copied := state.Snapshot()
	copied.SessionID = sessionID
	data, err := json.Marshal(copied)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSessions)).Put([]byte(sessionID), data)
	})
}

// Load retrieves the state stored under sessionID.
func (s *Store) Load(ctx context.Context, sessionID string) (*domain.ListState, error) {
	var state domain.ListState
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketSessions)).Get([]byte(sessionID))
		if v == nil {
			return domain.ErrSessionNotFound
		}
		// v is only valid inside the transaction; Unmarshal copies it.
		return json.Unmarshal(v, &state)
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// Delete removes the state stored under sessionID.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSessions)).Delete([]byte(sessionID))
	})
}

// List returns the stored session IDs in key order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	sessions := []string{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSessions)).ForEach(func(k, _ []byte) error {
			sessions = append(sessions, string(k))
			return nil
		})
	})
	return sessions, err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
