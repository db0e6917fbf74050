package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"simplexdss/internal/module/simplex/dto"
	"simplexdss/internal/module/simplex/plot"
)

// PlotService renders 2-D constraint graphs for two-variable problems. The
// problem is solved first so the optimum can be marked on the graph; plot
// rendering itself never touches the engine.
type PlotService interface {
	// GenerateGraphFile renders the graph into the configured directory and
	// returns the file path. The caller owns the file's lifetime.
	GenerateGraphFile(ctx context.Context, req *dto.GraphRequest) (string, error)

	// GenerateGraphPNG renders the graph in memory.
	GenerateGraphPNG(ctx context.Context, req *dto.GraphRequest) ([]byte, error)
}

type plotService struct {
	solver Service
	dir    string
	logger *zap.Logger
}

// NewPlotService creates a plot service writing files under dir.
func NewPlotService(solver Service, dir string, logger *zap.Logger) PlotService {
	return &plotService{
		solver: solver,
		dir:    dir,
		logger: logger,
	}
}

func (s *plotService) GenerateGraphFile(ctx context.Context, req *dto.GraphRequest) (string, error) {
	opts, err := s.options(ctx, req)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating graph directory: %w", err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("simplex_graph_%s.png", uuid.New().String()))
	if err := plot.RenderToFile(req.C, req.LI, req.LD, opts, path); err != nil {
		return "", err
	}

	s.logger.Info("Graph rendered", zap.String("path", path))
	return path, nil
}

func (s *plotService) GenerateGraphPNG(ctx context.Context, req *dto.GraphRequest) ([]byte, error) {
	opts, err := s.options(ctx, req)
	if err != nil {
		return nil, err
	}
	return plot.RenderPNG(req.C, req.LI, req.LD, opts)
}

// options solves the problem and, when an optimum exists, marks it.
func (s *plotService) options(ctx context.Context, req *dto.GraphRequest) (plot.Options, error) {
	if len(req.C) != 2 {
		return plot.Options{}, plot.ErrNotTwoVariables
	}

	opts := plot.Options{}

	solve, err := s.solver.SolveTabular(ctx, req)
	if err != nil {
		return plot.Options{}, err
	}
	if solve.Status == "optimo" && solve.Solucion != nil {
		mark := [2]float64{
			solve.Solucion.Variables["x1"],
			solve.Solucion.Variables["x2"],
		}
		opts.MarkPoint = &mark
	}

	return opts, nil
}
