package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/efreitasn/clob/internal/config"
	"github.com/efreitasn/clob/internal/engine"
	"github.com/efreitasn/clob/internal/feed"
	"github.com/efreitasn/clob/internal/logging"
	"github.com/efreitasn/clob/internal/metrics"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "Path to YAML config file (defaults to $CONFIG_FILE)")
	metricsFile := flag.String("metrics-file", "", "Write Prometheus metrics to this file on exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}
	if *metricsFile != "" {
		cfg.MetricsFile = *metricsFile
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck
	logger = logger.With(zap.String("run_id", uuid.New().String()))

	recorder, err := metrics.NewRecorder(cfg.MetricsNamespace)
	if err != nil {
		logger.Error("failed to create metrics recorder", zap.Error(err))
		return 1
	}

	// SIGINT/SIGTERM stop the feed between records.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	matcher := engine.NewMatcher(engine.WithDegree(cfg.BookDegree))
	runner := feed.NewRunner(matcher, os.Stdout, logger, feed.WithRecorder(recorder))

	_, runErr := runner.Run(ctx, os.Stdin)

	if cfg.MetricsFile != "" {
		if err := recorder.WriteFile(cfg.MetricsFile); err != nil {
			logger.Error("failed to write metrics", zap.Error(err))
		}
	}

	if runErr != nil {
		logger.Error("feed aborted", zap.Error(runErr))
		fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
		return 1
	}
	return 0
}
