package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"emotion-lab/contract"
	"emotion-lab/domain"
	"emotion-lab/fusion"
	"emotion-lab/observability"
	"emotion-lab/runtime/workers"
)

// AnalyzeRequest carries the raw material for one fusion call. Any field may
// be empty; the pipeline treats an empty field as that modality being absent.
type AnalyzeRequest struct {
	Text            string
	AudioTranscript string
	Frame           contract.Frame
}

// Status is the orchestrator's answer to "what is the pipeline doing right
// now", built from the monitoring snapshot and the tracker.
type Status struct {
	CaptureActive    bool                     `json:"capture_active"`
	TrackerSize      int                      `json:"tracker_size"`
	LatestFace       *domain.ModalityEstimate `json:"latest_face,omitempty"`
	Consensus        *domain.ConsensusResult  `json:"consensus,omitempty"`
	FramesCaptured   uint64                   `json:"frames_captured"`
	FusionCount      uint64                   `json:"fusion_count"`
	ConflictCount    uint64                   `json:"conflict_count"`
	EstimatorErrors  uint64                   `json:"estimator_errors"`
}

// Orchestrator wires estimators, tracker, fusion engine and sinks into one
// pipeline. Everything is injected; the orchestrator owns no construction
// logic beyond its background workers.
type Orchestrator struct {
	log        *slog.Logger
	engine     *fusion.Engine
	tracker    contract.Tracker
	face       contract.Estimator
	text       contract.Estimator
	audio      contract.Estimator
	sinks      []contract.VerdictSink
	monitoring *observability.MonitoringManager
	window     time.Duration
	restart    time.Duration

	mu         sync.Mutex
	supervisor *workers.Supervisor
	background []contract.Worker
	started    bool
}

func NewOrchestrator(
	log *slog.Logger,
	engine *fusion.Engine,
	tracker contract.Tracker,
	face, text, audio contract.Estimator,
	sinks []contract.VerdictSink,
	monitoring *observability.MonitoringManager,
	window time.Duration,
	restartInterval time.Duration,
) *Orchestrator {
	return &Orchestrator{
		log:        log,
		engine:     engine,
		tracker:    tracker,
		face:       face,
		text:       text,
		audio:      audio,
		sinks:      sinks,
		monitoring: monitoring,
		window:     window,
		restart:    restartInterval,
	}
}

// AddWorker registers a background worker to run under the orchestrator's
// supervisor. Must be called before Start.
func (o *Orchestrator) AddWorker(w ...contract.Worker) *Orchestrator {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.background = append(o.background, w...)
	return o
}

// Start launches the background workers under a supervisor. Calling Start
// twice is a no-op: the second call returns without spawning anything.
func (o *Orchestrator) Start(ctx context.Context) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.started {
		o.log.Debug("Orchestrator already started")
		return
	}
	o.started = true

	o.supervisor = workers.NewSupervisor(o.log, o.restart)
	o.supervisor.Add(o.background...)
	go o.supervisor.Run(ctx)
	o.log.Info("Orchestrator started", "workers", len(o.background))
}

// Stop cancels the background workers and waits for them to return, up to
// timeout. A leaked worker is logged, never waited on forever.
func (o *Orchestrator) Stop(timeout time.Duration) {
	o.mu.Lock()
	sup := o.supervisor
	o.started = false
	o.supervisor = nil
	o.mu.Unlock()

	if sup == nil {
		return
	}
	sup.Stop()
	if !sup.Wait(timeout) {
		o.log.Warn("Workers did not stop in time, leaking", "timeout", timeout)
		return
	}
	o.log.Info("Orchestrator stopped")
}

// Analyze runs one fusion pass over the request. Each present modality is
// estimated independently; an estimator failure drops that modality rather
// than failing the call. The face estimate also feeds the consensus tracker
// so direct calls and the capture loop share one temporal view.
func (o *Orchestrator) Analyze(ctx context.Context, req AnalyzeRequest) domain.FusionResult {
	in := fusion.Inputs{
		Face:  o.estimateFace(ctx, req.Frame),
		Text:  o.estimate(ctx, o.text, contract.Input{Text: req.Text}, req.Text != ""),
		Audio: o.estimate(ctx, o.audio, contract.Input{Text: req.AudioTranscript}, req.AudioTranscript != ""),
	}
	in.Consensus = o.tracker.Consensus(time.Now().UTC(), o.window)

	result := o.engine.Fuse(in)

	o.monitoring.IncrFusionCount()
	if result.IsAuthentic {
		o.monitoring.IncrAuthenticCount()
	}
	if !result.IsAuthentic && result.Face != nil && result.Text != nil {
		o.monitoring.IncrConflictCount()
	}

	for _, sink := range o.sinks {
		if err := sink.Consume(ctx, result); err != nil {
			o.log.Warn("Verdict sink failed", "id", result.ID, "error", err)
		}
	}
	return result
}

func (o *Orchestrator) estimateFace(ctx context.Context, frame contract.Frame) *domain.ModalityEstimate {
	est := o.estimate(ctx, o.face, contract.Input{Frame: frame}, !frame.Empty())
	if est != nil {
		o.tracker.Record(*est)
	}
	return est
}

func (o *Orchestrator) estimate(ctx context.Context, estimator contract.Estimator, in contract.Input, present bool) *domain.ModalityEstimate {
	if !present || estimator == nil {
		return nil
	}
	est, err := estimator.Predict(ctx, in)
	if err != nil {
		o.monitoring.IncrEstimatorErrors()
		o.log.Warn("Estimator failed, dropping modality", "modality", estimator.Modality(), "error", err)
		return nil
	}
	return &est
}

// Status reports the live pipeline state.
func (o *Orchestrator) Status() Status {
	stats := o.monitoring.GetLatest()
	return Status{
		CaptureActive:   stats.CaptureActive,
		TrackerSize:     o.tracker.Size(),
		LatestFace:      o.tracker.Latest(),
		Consensus:       o.tracker.Consensus(time.Now().UTC(), o.window),
		FramesCaptured:  stats.FramesCaptured,
		FusionCount:     stats.FusionCount,
		ConflictCount:   stats.ConflictCount,
		EstimatorErrors: stats.EstimatorErrors,
	}
}
