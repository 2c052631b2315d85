package kvstore

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"posterstore/config"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvRecord is the GORM persistence model for one keyspace entry.
type kvRecord struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     []byte    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (kvRecord) TableName() string {
	return "kv_records"
}

// sqliteStore persists the keyspace in a single sqlite table.
type sqliteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (creating if needed) the sqlite-backed Store at path.
func NewSQLiteStore(path string, baseLogger *slog.Logger, cfg *config.Config) (Store, error) {
	if path == "" {
		return nil, errors.New("sqlite store path must be provided")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "failed to create sqlite store directory")
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: newGormSlogLogger(baseLogger, cfg),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite store")
	}

	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate kv_records")
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var record kvRecord
	err := s.db.WithContext(ctx).First(&record, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}

		return nil, errors.Wrap(err, "failed to read key")
	}

	return record.Value, nil
}

func (s *sqliteStore) Set(ctx context.Context, key string, value []byte) error {
	record := kvRecord{Key: key, Value: value, UpdatedAt: time.Now()}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).
		Create(&record).Error
	if err != nil {
		return errors.Wrap(err, "failed to write key")
	}

	return nil
}

func (s *sqliteStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Delete(&kvRecord{}, "key = ?", key).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete key")
	}

	return nil
}

func (s *sqliteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to access underlying sqlite connection")
	}

	return errors.WithStack(sqlDB.Close())
}
