package main

import (
	"fmt"
	"log"

	"idsegen/internal/config"
	"idsegen/internal/handler"
	"idsegen/internal/logging"
	"idsegen/internal/router"
	"idsegen/internal/service"
	"idsegen/internal/storage/local"
	"idsegen/internal/validator"
)

const version = "1.0.0"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format)

	writer, err := local.NewWriter(cfg.Output.Dir, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize output writer: %w", err)
	}

	batchValidator := validator.NewBatchValidator(
		cfg.Limits.MaxMovimientosPorEmpresa,
		cfg.Limits.MaxEmpresasPorBatch,
	)
	processor := service.NewProcessor(batchValidator, writer, logger)

	batchH := handler.NewBatchHandler(processor, logger)
	healthH := handler.NewHealthHandler(version)

	r := router.Setup(batchH, healthH)

	logger.Info().Str("port", cfg.Server.Port).Str("output", cfg.Output.Dir).Msg("server starting")
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
