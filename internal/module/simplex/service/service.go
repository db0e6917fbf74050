package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"simplexdss/internal/module/simplex/domain"
	"simplexdss/internal/module/simplex/dto"
)

// Service exposes the simplex engine to the HTTP layer.
type Service interface {
	// SolveTabular runs the tabular two-phase simplex method on one problem.
	SolveTabular(ctx context.Context, req *dto.SimplexRequest) (*dto.SolveResponse, error)

	// SolveBatch solves independent problems concurrently, preserving order.
	SolveBatch(ctx context.Context, req *dto.BatchSolveRequest) (*dto.BatchSolveResponse, error)
}

// maxBatchWorkers bounds the goroutines a single batch request may spawn;
// each solve is CPU-bound.
const maxBatchWorkers = 4

type service struct {
	cache  ResultCache
	logger *zap.Logger
}

// NewService creates a new simplex service.
func NewService(cache ResultCache, logger *zap.Logger) Service {
	return &service{
		cache:  cache,
		logger: logger,
	}
}

func (s *service) SolveTabular(ctx context.Context, req *dto.SimplexRequest) (*dto.SolveResponse, error) {
	key, err := requestKey(req)
	if err == nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			s.logger.Debug("Solve served from cache", zap.String("key", key))
			return cached, nil
		}
	}

	problem, err := req.ToProblem()
	if err != nil {
		s.logger.Warn("Rejected simplex input", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Solving LP",
		zap.String("sense", problem.Sense.String()),
		zap.Int("variables", len(problem.C)),
		zap.Int("constraints", len(problem.B)),
	)

	result, err := domain.Solve(problem)
	if err != nil {
		s.logger.Warn("Rejected simplex input", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Solve finished",
		zap.String("status", result.Status.String()),
		zap.Int("tableaux", len(result.Tableaux)),
	)

	resp := dto.FromResult(result)
	if key != "" {
		s.cache.Set(ctx, key, resp)
	}
	return resp, nil
}

func (s *service) SolveBatch(ctx context.Context, req *dto.BatchSolveRequest) (*dto.BatchSolveResponse, error) {
	results := make([]dto.SolveResponse, len(req.Problems))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxBatchWorkers)

	for i := range req.Problems {
		i := i
		g.Go(func() error {
			resp, err := s.SolveTabular(ctx, &req.Problems[i])
			if err != nil {
				return err
			}
			results[i] = *resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("Batch solve finished", zap.Int("problems", len(results)))
	return &dto.BatchSolveResponse{Results: results}, nil
}
