package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"simplexdss/internal/module/history/domain"
	"simplexdss/internal/module/history/dto"
	"simplexdss/internal/module/history/repository"
	"simplexdss/internal/shared"
)

// Service archives solves and serves the history endpoints.
type Service interface {
	Record(ctx context.Context, input *dto.CreateRecordInput) error
	List(ctx context.Context, page, pageSize int) ([]dto.RecordSummary, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.RecordDetail, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo   repository.Repository
	logger *zap.Logger
}

// NewService creates a new history service.
func NewService(repo repository.Repository, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

func (s *service) Record(ctx context.Context, input *dto.CreateRecordInput) error {
	record := &domain.SolveRecord{
		Status:       input.Status,
		OptimalValue: input.OptimalValue,
		Iterations:   input.Iterations,
		Request:      datatypes.JSON(input.Request),
		Result:       datatypes.JSON(input.Result),
	}

	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Error("Failed to archive solve", zap.Error(err))
		return err
	}

	s.logger.Debug("Solve archived",
		zap.String("id", record.ID.String()),
		zap.String("status", record.Status),
	)
	return nil
}

func (s *service) List(ctx context.Context, page, pageSize int) ([]dto.RecordSummary, int64, error) {
	if page < 1 {
		page = shared.DefaultPage
	}
	if pageSize < 1 || pageSize > shared.MaxPageSize {
		pageSize = shared.DefaultPageSize
	}

	records, total, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		s.logger.Error("Failed to list solve history", zap.Error(err))
		return nil, 0, err
	}

	summaries := make([]dto.RecordSummary, len(records))
	for i := range records {
		summaries[i] = dto.ToSummary(&records[i])
	}
	return summaries, total, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*dto.RecordDetail, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := dto.ToDetail(record)
	return &detail, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Solve record deleted", zap.String("id", id.String()))
	return nil
}
