package observability

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// PipelineStats aggregates the live metrics exposed by the debug inspector.
type PipelineStats struct {
	FramesCaptured   uint64  `json:"frames_captured"`
	CaptureErrors    uint64  `json:"capture_errors"`
	FusionCount      uint64  `json:"fusion_count"`
	AuthenticCount   uint64  `json:"authentic_count"`
	ConflictCount    uint64  `json:"conflict_count"`
	EstimatorErrors  uint64  `json:"estimator_errors"`
	TrackerSize      int     `json:"tracker_size"`
	CaptureActive    bool    `json:"capture_active"`
	ConsensusEmotion string  `json:"consensus_emotion"`
	ConsensusScore   float64 `json:"consensus_stability"`
	AllocMemMb       uint64  `json:"alloc_mem_mb"`
	NumGC            uint32  `json:"num_gc"`
}

// MonitoringManager collects pipeline telemetry. Counters are atomic so the
// capture loop and concurrent fusion calls never contend; the snapshot is
// rebuilt on demand.
type MonitoringManager struct {
	log *slog.Logger
	mu  sync.RWMutex

	framesCaptured  uint64
	captureErrors   uint64
	fusionCount     uint64
	authenticCount  uint64
	conflictCount   uint64
	estimatorErrors uint64

	trackerSize      int
	captureActive    bool
	consensusEmotion string
	consensusScore   float64

	LastCheck time.Time
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{log: log, LastCheck: time.Now()}
}

func (mm *MonitoringManager) IncrFramesCaptured() {
	atomic.AddUint64(&mm.framesCaptured, 1)
}

func (mm *MonitoringManager) IncrCaptureErrors() {
	atomic.AddUint64(&mm.captureErrors, 1)
}

func (mm *MonitoringManager) IncrFusionCount() {
	atomic.AddUint64(&mm.fusionCount, 1)
}

func (mm *MonitoringManager) IncrAuthenticCount() {
	atomic.AddUint64(&mm.authenticCount, 1)
}

func (mm *MonitoringManager) IncrConflictCount() {
	atomic.AddUint64(&mm.conflictCount, 1)
}

func (mm *MonitoringManager) IncrEstimatorErrors() {
	atomic.AddUint64(&mm.estimatorErrors, 1)
}

// SetCaptureActive flips the capture flag alone, leaving the last-known
// consensus gauges readable after the loop stops.
func (mm *MonitoringManager) SetCaptureActive(active bool) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.captureActive = active
}

// SetTrackerState refreshes the gauge values the capture loop owns.
func (mm *MonitoringManager) SetTrackerState(size int, active bool, emotion string, stability float64) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.trackerSize = size
	mm.captureActive = active
	mm.consensusEmotion = emotion
	mm.consensusScore = stability
}

// GetLatest builds a consistent snapshot of all metrics.
func (mm *MonitoringManager) GetLatest() PipelineStats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return PipelineStats{
		FramesCaptured:   atomic.LoadUint64(&mm.framesCaptured),
		CaptureErrors:    atomic.LoadUint64(&mm.captureErrors),
		FusionCount:      atomic.LoadUint64(&mm.fusionCount),
		AuthenticCount:   atomic.LoadUint64(&mm.authenticCount),
		ConflictCount:    atomic.LoadUint64(&mm.conflictCount),
		EstimatorErrors:  atomic.LoadUint64(&mm.estimatorErrors),
		TrackerSize:      mm.trackerSize,
		CaptureActive:    mm.captureActive,
		ConsensusEmotion: mm.consensusEmotion,
		ConsensusScore:   mm.consensusScore,
		AllocMemMb:       mem.Alloc / 1024 / 1024,
		NumGC:            mem.NumGC,
	}
}
