package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/breakloop/community-backend/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists records through a state_records table.
type GormStore struct {
	db *gorm.DB
}

// NewGorm migrates the backing table and returns a ready store.
func NewGorm(db *gorm.DB) (*GormStore, error) {
	if db == nil {
		return nil, errors.New("gorm db is required")
	}
	if err := db.AutoMigrate(&models.StateRecord{}); err != nil {
		return nil, fmt.Errorf("migrating state_records: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (g *GormStore) Get(ctx context.Context, key string) (string, error) {
	var record models.StateRecord
	err := g.db.WithContext(ctx).Where("key = ?", key).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return record.Payload, nil
}

func (g *GormStore) Set(ctx context.Context, key, value string) error {
	record := models.StateRecord{
		Key:       key,
		Payload:   value,
		UpdatedAt: time.Now().UTC(),
	}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&record).
		Error
}

func (g *GormStore) Delete(ctx context.Context, key string) error {
	return g.db.WithContext(ctx).Where("key = ?", key).Delete(&models.StateRecord{}).Error
}
