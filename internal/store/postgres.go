package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SaveRecord is the single-row-per-key table backing the Postgres store.
// The payload stays an opaque JSON blob; the save contract lives in
// SaveData, not in relational columns.
type SaveRecord struct {
	Key     string `gorm:"primaryKey;size:128"`
	Payload []byte `gorm:"type:jsonb"`
}

// PostgresStore persists the save record through gorm.
type PostgresStore struct {
	db      *gorm.DB
	saveKey string
	helpKey string
}

// NewPostgresStore opens a connection and migrates the save table.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return NewPostgresStoreWithDB(db)
}

// NewPostgresStoreWithDB wraps an existing gorm handle, mainly for tests.
func NewPostgresStoreWithDB(db *gorm.DB) (*PostgresStore, error) {
	if err := db.AutoMigrate(&SaveRecord{}); err != nil {
		return nil, fmt.Errorf("migrate save table: %w", err)
	}
	return &PostgresStore{
		db:      db,
		saveKey: DefaultSaveKey,
		helpKey: DefaultHelpKey,
	}, nil
}

func (s *PostgresStore) Load(ctx context.Context) (SaveData, error) {
	var record SaveRecord
	err := s.db.WithContext(ctx).First(&record, "key = ?", s.saveKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultSaveData(), nil
		}
		return DefaultSaveData(), fmt.Errorf("load save record: %w", err)
	}
	return DecodeSaveData(record.Payload), nil
}

func (s *PostgresStore) Save(ctx context.Context, data SaveData) error {
	raw, err := json.Marshal(data.Normalized())
	if err != nil {
		return fmt.Errorf("marshal save: %w", err)
	}
	record := SaveRecord{Key: s.saveKey, Payload: raw}
	if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

func (s *PostgresStore) LoadHelpSeen(ctx context.Context) (bool, error) {
	var record SaveRecord
	err := s.db.WithContext(ctx).First(&record, "key = ?", s.helpKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load help flag: %w", err)
	}
	return string(record.Payload) == "true", nil
}

func (s *PostgresStore) SaveHelpSeen(ctx context.Context, seen bool) error {
	payload := []byte("false")
	if seen {
		payload = []byte("true")
	}
	record := SaveRecord{Key: s.helpKey, Payload: payload}
	if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
		return fmt.Errorf("save help flag: %w", err)
	}
	return nil
}

func (s *PostgresStore) Clear(ctx context.Context) error {
	err := s.db.WithContext(ctx).
		Delete(&SaveRecord{}, "key IN ?", []string{s.saveKey, s.helpKey}).Error
	if err != nil {
		return fmt.Errorf("clear save records: %w", err)
	}
	return nil
}

var _ Store = (*PostgresStore)(nil)
