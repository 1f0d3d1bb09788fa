package workers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"emotion-lab/contract"
	liberrors "emotion-lab/errors"
	"emotion-lab/observability"
)

// FaceCaptureWorker is the background half of the pipeline: it pulls frames
// from the capture source at a fixed cadence, classifies each frame, and
// feeds the estimate into the shared consensus tracker. Fusion calls then
// read the tracker instead of waiting on the camera.
type FaceCaptureWorker struct {
	log        *slog.Logger
	source     contract.CaptureSource
	estimator  contract.Estimator
	tracker    contract.Tracker
	monitoring *observability.MonitoringManager
	interval   time.Duration
	window     time.Duration
}

func NewFaceCaptureWorker(
	log *slog.Logger,
	source contract.CaptureSource,
	estimator contract.Estimator,
	tracker contract.Tracker,
	monitoring *observability.MonitoringManager,
	interval time.Duration,
	window time.Duration,
) *FaceCaptureWorker {
	return &FaceCaptureWorker{
		log:        log,
		source:     source,
		estimator:  estimator,
		tracker:    tracker,
		monitoring: monitoring,
		interval:   interval,
		window:     window,
	}
}

func (w *FaceCaptureWorker) Run(ctx context.Context) error {
	w.log.Info("Starting face capture worker", "interval", w.interval)
	w.monitoring.SetCaptureActive(true)
	defer w.monitoring.SetCaptureActive(false)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.captureOnce(ctx); err != nil {
				if errors.Is(err, liberrors.ErrCaptureClosed) {
					w.log.Info("Capture source closed, stopping worker")
					return nil
				}
				// A dropped frame is routine: log, count, keep the loop alive.
				w.monitoring.IncrCaptureErrors()
				w.log.Warn("Frame capture failed", "error", err)
			}
		}
	}
}

func (w *FaceCaptureWorker) captureOnce(ctx context.Context) error {
	frame, err := w.source.Capture(ctx)
	if err != nil {
		return err
	}
	w.monitoring.IncrFramesCaptured()

	est, err := w.estimator.Predict(ctx, contract.Input{Frame: frame})
	if err != nil {
		w.monitoring.IncrEstimatorErrors()
		return err
	}
	w.tracker.Record(est)

	emotion, stability := "", 0.0
	if consensus := w.tracker.Consensus(time.Now().UTC(), w.window); consensus != nil {
		emotion = string(consensus.Emotion)
		stability = consensus.StabilityScore
	}
	w.monitoring.SetTrackerState(w.tracker.Size(), true, emotion, stability)
	return nil
}
