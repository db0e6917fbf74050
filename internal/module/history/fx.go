package history

import (
	"go.uber.org/fx"

	"simplexdss/internal/module/history/handler"
	"simplexdss/internal/module/history/repository"
	"simplexdss/internal/module/history/service"
)

// Module exports the solve-history module for dependency injection.
var Module = fx.Module("history",
	fx.Provide(
		repository.NewRepository,
		service.NewService,
		handler.NewHandler,
	),
)
