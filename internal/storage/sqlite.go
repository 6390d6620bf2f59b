package storage

import (
	"encoding/json"
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Entry is a single persisted key/value row
type Entry struct {
	Key   string `gorm:"primary_key"`
	Value string `gorm:"type:text"`
}

// TableName overrides gorm's default pluralization
func (Entry) TableName() string {
	return "entries"
}

// SQLiteKV persists JSON values in a local SQLite database
type SQLiteKV struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) the database at path and migrates the schema
func OpenSQLite(path string) (*SQLiteKV, error) {
	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.AutoMigrate(&Entry{}).Error; err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &SQLiteKV{db: db}, nil
}

// Get implements KV
func (s *SQLiteKV) Get(key string, out interface{}) (bool, error) {
	var entry Entry
	err := s.db.Where("key = ?", key).First(&entry).Error
	if gorm.IsRecordNotFoundError(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return true, json.Unmarshal([]byte(entry.Value), out)
}

// Set implements KV
func (s *SQLiteKV) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	var existing Entry
	err = s.db.Where("key = ?", key).First(&existing).Error
	if gorm.IsRecordNotFoundError(err) {
		if err := s.db.Create(&Entry{Key: key, Value: string(raw)}).Error; err != nil {
			return fmt.Errorf("failed to write key %q: %w", key, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}

	existing.Value = string(raw)
	if err := s.db.Save(&existing).Error; err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database connection
func (s *SQLiteKV) Close() error {
	return s.db.Close()
}
