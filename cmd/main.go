package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"emotion-lab/contract"
	"emotion-lab/domain"
	"emotion-lab/estimators"
	"emotion-lab/fusion"
	"emotion-lab/internal"
	"emotion-lab/observability"
	"emotion-lab/repositories"
	"emotion-lab/runtime"
	"emotion-lab/runtime/workers"
	"emotion-lab/sink"
	"emotion-lab/tracker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the pipeline lifecycle, and
// returns the fatal error to main so deferred cleanup runs before exit.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB) & search index
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	//  Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	index, err := repositories.NewVerdictIndex(config.BlugeFilepath, log)
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing search index...")
		_ = index.Close()
	}()

	// 3. Pipeline components
	monitoring := observability.NewMonitoringManager(log)
	track := tracker.NewConsensusTracker(config.MaxHistory)

	engine, err := fusion.NewEngine(log, fusion.Config{
		FaceWeight:            config.FaceWeight,
		TextWeight:            config.TextWeight,
		AudioWeight:           config.AudioWeight,
		ConsistencyThreshold:  config.ConsistencyThreshold,
		AuthenticityThreshold: config.AuthenticityThreshold,
		TextOnlyPenalty:       fusion.DefaultConfig().TextOnlyPenalty,
		MaxConfidence:         fusion.DefaultConfig().MaxConfidence,
	})
	if err != nil {
		return fmt.Errorf("fusion engine rejected config: %w", err)
	}

	textEstimator, err := buildTextEstimator(config, log)
	if err != nil {
		return err
	}
	faceEstimator := estimators.NewLuminanceFaceEstimator()
	audioEstimator := estimators.NewAudioProxyEstimator(textEstimator)

	verdictRepository := repositories.NewVerdictRepository(db, log)
	verdictSink := sink.NewVerdictSink(verdictRepository, log,
		config.MaxBatchedVerdicts, config.SinkTimeout)
	indexSink := sink.NewIndexSink(index, log)

	orchestrator := runtime.NewOrchestrator(
		log, engine, track,
		faceEstimator, textEstimator, audioEstimator,
		[]contract.VerdictSink{verdictSink, indexSink},
		monitoring, config.Window(), config.RestartInterval,
	)

	orchestrator.AddWorker(workers.NewTelemetryWorker(log, monitoring, config.MetricInterval))

	var source contract.CaptureSource
	if config.EnableCapture {
		source = estimators.NewSyntheticCaptureSource()
		defer func() { _ = source.Close() }()
		orchestrator.AddWorker(workers.NewFaceCaptureWorker(
			log, source, faceEstimator, track, monitoring,
			config.CaptureInterval, config.Window(),
		))
	}

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Start the pipeline
	orchestrator.Start(ctx)

	// 6. Debug inspector over the verdict store
	internal.StartDebugServer(db, config.DebugPort, internal.VerdictMapper, func() map[string]any {
		stats := monitoring.GetLatest()
		return map[string]any{
			"frames_captured":   stats.FramesCaptured,
			"capture_errors":    stats.CaptureErrors,
			"fusion_count":      stats.FusionCount,
			"authentic_count":   stats.AuthenticCount,
			"conflict_count":    stats.ConflictCount,
			"tracker_size":      stats.TrackerSize,
			"consensus_emotion": stats.ConsensusEmotion,
			"alloc_mem_mb":      stats.AllocMemMb,
		}
	})
	log.Info("Debug inspector listening",
		"url", fmt.Sprintf("http://%s:%d/inspect", config.Host, config.DebugPort),
		"at", time.Now().UTC())

	// 7. Wait for stop
	<-ctx.Done()
	log.Info("Shutting down gracefully...")

	// 8. Final cleanup: stop workers, then drain the batching sink
	orchestrator.Stop(config.ShutdownTimeout)
	if err := verdictSink.Flush(); err != nil {
		log.Error("Final sink flush failed", "error", err)
	}
	log.Info("Program stopped cleanly")

	return nil
}

func buildTextEstimator(config internal.Config, log *slog.Logger) (contract.Estimator, error) {
	switch config.TextEstimator {
	case internal.TextEstimatorKeyword:
		return estimators.NewKeywordTextEstimator(log)
	case internal.TextEstimatorNeutral:
		return estimators.NewNeutralEstimator(domain.TextModality), nil
	default:
		return nil, fmt.Errorf("unknown TEXT_ESTIMATOR %q", config.TextEstimator)
	}
}
