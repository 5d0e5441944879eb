package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"housenumber-audit/core/reconcile"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportRun is one recorded report of a relation.
type ReportRun struct {
	ID                string    `gorm:"column:id;primaryKey;size:36"`
	Relation          string    `gorm:"column:relation;size:128;index"`
	Streets           int       `gorm:"column:streets"`
	SuspiciousStreets int       `gorm:"column:suspicious_streets"`
	DoneStreets       int       `gorm:"column:done_streets"`
	MissingNumbers    int       `gorm:"column:missing_numbers"`
	DoneNumbers       int       `gorm:"column:done_numbers"`
	Percent           float64   `gorm:"column:percent"`
	CreatedAt         time.Time `gorm:"column:created_at;index"`
}

// MissingStreet is a suspicious street of a recorded run.
type MissingStreet struct {
	ID           uint   `gorm:"column:id;primaryKey;autoIncrement"`
	RunID        string `gorm:"column:run_id;size:36;index"`
	Street       string `gorm:"column:street;size:255"`
	Count        int    `gorm:"column:count"`
	HouseNumbers string `gorm:"column:house_numbers;type:text"` // comma separated
}

// History keeps past reports in a SQL database.
type History struct {
	db *gorm.DB
}

// NewHistory creates a history backed by db.
func NewHistory(db *gorm.DB) *History {
	return &History{db: db}
}

// Migrate creates or updates the history tables.
func (h *History) Migrate() error {
	if err := h.db.AutoMigrate(&ReportRun{}, &MissingStreet{}); err != nil {
		return fmt.Errorf("failed to migrate history tables: %w", err)
	}
	return nil
}

// Save records rep and its suspicious streets in one transaction.
func (h *History) Save(ctx context.Context, relation string, rep *reconcile.Report) (*ReportRun, error) {
	run := &ReportRun{
		ID:                uuid.NewString(),
		Relation:          relation,
		Streets:           rep.Summary.Streets,
		SuspiciousStreets: rep.Summary.SuspiciousStreets,
		DoneStreets:       rep.Summary.DoneStreets,
		MissingNumbers:    rep.Summary.MissingNumbers,
		DoneNumbers:       rep.Summary.DoneNumbers,
		Percent:           rep.Summary.Percent,
		CreatedAt:         time.Now(),
	}

	missing := make([]MissingStreet, 0, len(rep.Suspicious))
	for _, entry := range rep.Suspicious {
		missing = append(missing, MissingStreet{
			RunID:        run.ID,
			Street:       entry.Street,
			Count:        len(entry.HouseNumbers),
			HouseNumbers: strings.Join(entry.HouseNumbers, ","),
		})
	}

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(run).Error; err != nil {
			return err
		}
		if len(missing) == 0 {
			return nil
		}
		return tx.Create(&missing).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save report run: %w", err)
	}
	return run, nil
}

// Recent returns up to limit runs of a relation, newest first.
func (h *History) Recent(ctx context.Context, relation string, limit int) ([]ReportRun, error) {
	var runs []ReportRun
	err := h.db.WithContext(ctx).
		Where("relation = ?", relation).
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list report runs: %w", err)
	}
	return runs, nil
}

// MissingStreets returns the suspicious streets of a run, most missing
// numbers first.
func (h *History) MissingStreets(ctx context.Context, runID string) ([]MissingStreet, error) {
	var streets []MissingStreet
	err := h.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("count DESC").
		Order("id").
		Find(&streets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list missing streets: %w", err)
	}
	return streets, nil
}
