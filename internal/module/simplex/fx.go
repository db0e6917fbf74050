package simplex

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"simplexdss/internal/config"
	"simplexdss/internal/module/simplex/handler"
	"simplexdss/internal/module/simplex/service"
)

// Module exports the simplex solver for dependency injection.
var Module = fx.Module("simplex",
	fx.Provide(
		service.NewService,
		NewPlotService,
		handler.NewHandler,
		handler.NewWebSocketHandler,
	),
)

// NewPlotService builds the plot service against the configured graph
// directory.
func NewPlotService(solver service.Service, cfg *config.Config, logger *zap.Logger) service.PlotService {
	return service.NewPlotService(solver, cfg.Plot.Dir, logger)
}
