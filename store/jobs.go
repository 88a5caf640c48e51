// jobs.go - Job listing store

package store

import (
	"context"
	"fmt"

	"fruitpie-jobboard/models"

	"gorm.io/gorm"
)

type JobStore struct {
	db *gorm.DB
}

func NewJobStore(db *gorm.DB) *JobStore {
	return &JobStore{db: db}
}

// ListAll returns every posting, newest posted_date first.
func (s *JobStore) ListAll(ctx context.Context) ([]models.JobPost, error) {
	var jobs []models.JobPost
	err := s.db.WithContext(ctx).
		Order("posted_date DESC").
		Order("id DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("list job posts: %w", err)
	}
	return jobs, nil
}

// SeedIfEmpty inserts samples only when the table has no rows and reports
// how many rows it inserted. Count and insert share one transaction.
func (s *JobStore) SeedIfEmpty(ctx context.Context, samples []models.JobPost) (int, error) {
	if len(samples) == 0 {
		return 0, nil
	}
	rows := append([]models.JobPost(nil), samples...)

	inserted := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.JobPost{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		inserted = len(rows)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seed job posts: %w", err)
	}
	return inserted, nil
}
