package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const featureKeywordsPrefix = "feature_keywords:"

// SettingRepository handles key-value settings, including per-feature keyword defaults
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting retrieves a setting value, empty string if not set
func (r *SettingRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}
	return value, nil
}

// SetSetting stores a setting value
func (r *SettingRepository) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

// GetFeatureKeywords returns the default keyword list of a feature
func (r *SettingRepository) GetFeatureKeywords(ctx context.Context, featureID string) ([]string, error) {
	value, err := r.GetSetting(ctx, featureKeywordsPrefix+featureID)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return []string{}, nil
	}
	var keywords []string
	if err := json.Unmarshal([]byte(value), &keywords); err != nil {
		return nil, fmt.Errorf("parse keywords of feature %s: %w", featureID, err)
	}
	return keywords, nil
}

// SetFeatureKeywords stores the default keyword list of a feature
func (r *SettingRepository) SetFeatureKeywords(ctx context.Context, featureID string, keywords []string) error {
	if keywords == nil {
		keywords = []string{}
	}
	data, err := json.Marshal(keywords)
	if err != nil {
		return fmt.Errorf("marshal keywords: %w", err)
	}
	return r.SetSetting(ctx, featureKeywordsPrefix+featureID, string(data))
}
