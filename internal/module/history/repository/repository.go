package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"simplexdss/internal/module/history/domain"
)

// ErrRecordNotFound is returned when no record matches the requested id.
var ErrRecordNotFound = errors.New("history: record not found")

// Repository persists solve records.
type Repository interface {
	Create(ctx context.Context, record *domain.SolveRecord) error
	List(ctx context.Context, page, pageSize int) ([]domain.SolveRecord, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SolveRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a gorm-backed history repository.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, record *domain.SolveRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("creating solve record: %w", err)
	}
	return nil
}

func (r *repository) List(ctx context.Context, page, pageSize int) ([]domain.SolveRecord, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.SolveRecord{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting solve records: %w", err)
	}

	var records []domain.SolveRecord
	err := r.db.WithContext(ctx).
		Select("id", "status", "optimal_value", "iterations", "created_at").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing solve records: %w", err)
	}

	return records, total, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SolveRecord, error) {
	var record domain.SolveRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("loading solve record %s: %w", id, err)
	}
	return &record, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&domain.SolveRecord{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("deleting solve record %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
