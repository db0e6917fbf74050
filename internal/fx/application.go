package fx

import (
	"simplexdss/internal/config"
	"simplexdss/internal/module/history"
	"simplexdss/internal/module/simplex"

	"go.uber.org/fx"
)

// Application creates the main FX application with all modules
func Application() *fx.App {
	options := []fx.Option{
		// Core modules
		CoreModule,

		// Feature modules
		simplex.Module,
		history.Module,

		// App module (wires everything together)
		AppModule,
	}

	// Suppress FX logs in production for cleaner output
	if config.IsProduction() {
		options = append(options, fx.NopLogger)
	}

	return fx.New(options...)
}
