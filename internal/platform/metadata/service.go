package metadata

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// --- Generic Accessors ---

// GetValue retrieves a value for a given key from the metadata table.
func GetValue(db *gorm.DB, key string) (string, error) {
	var meta Metadata
	err := db.Where("key = ?", key).First(&meta).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// If the key doesn't exist, return an empty string, which is a valid default.
			return "", nil
		}
		return "", err
	}
	return meta.Value, nil
}

// SetValue creates or updates a value for a given key.
func SetValue(db *gorm.DB, key, value string) error {
	// Use GORM's OnConflict clause for an efficient and atomic "upsert" operation.
	// It will update the 'value' column if a record with the same 'key' already exists.
	meta := Metadata{
		Key:   key,
		Value: value,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&meta).Error
}

// --- Specific Helpers for Type Conversion ---

// GetLastLeadRefreshAt retrieves and parses the last full refresh timestamp.
// A zero time is returned when no refresh has completed yet.
func GetLastLeadRefreshAt(db *gorm.DB) (time.Time, error) {
	valueStr, err := GetValue(db, LastLeadRefreshAtKey)
	if err != nil {
		return time.Time{}, err
	}
	if valueStr == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, valueStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("无法解析元数据 '%s' 的值: %w", LastLeadRefreshAtKey, err)
	}
	return t, nil
}

// SetLastLeadRefresh records the completion of a full lead-score refresh.
func SetLastLeadRefresh(db *gorm.DB, at time.Time, processed int) error {
	if err := SetValue(db, LastLeadRefreshAtKey, at.UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	return SetValue(db, LastLeadRefreshCountKey, strconv.Itoa(processed))
}

// GetLastLeadRefreshCount retrieves and parses the processed-user count of the
// last completed full refresh.
func GetLastLeadRefreshCount(db *gorm.DB) (int, error) {
	valueStr, err := GetValue(db, LastLeadRefreshCountKey)
	if err != nil {
		return 0, err
	}
	if valueStr == "" {
		return 0, nil
	}
	count, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("无法解析元数据 '%s' 的值: %w", LastLeadRefreshCountKey, err)
	}
	return count, nil
}
