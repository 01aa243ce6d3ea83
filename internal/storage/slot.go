package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SlotStore implements domain.SnapshotSlot over a single row in the slots
// table. Writes always replace the whole value.
type SlotStore struct {
	db   *DB
	name string
}

func NewSlotStore(db *DB, name string) *SlotStore {
	return &SlotStore{db: db, name: name}
}

func (s *SlotStore) Load() (string, bool, error) {
	var value string
	err := s.db.Conn().QueryRow(
		`SELECT value FROM slots WHERE name = ?`, s.name,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load slot %s: %w", s.name, err)
	}
	return value, true, nil
}

func (s *SlotStore) Save(value string) error {
	_, err := s.db.Conn().Exec(
		`INSERT INTO slots (name, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.name, value, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("save slot %s: %w", s.name, err)
	}
	return nil
}

func (s *SlotStore) Clear() error {
	_, err := s.db.Conn().Exec(`DELETE FROM slots WHERE name = ?`, s.name)
	if err != nil {
		return fmt.Errorf("clear slot %s: %w", s.name, err)
	}
	return nil
}
