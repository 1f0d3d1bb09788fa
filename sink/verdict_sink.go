package sink

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"emotion-lab/domain"
	"emotion-lab/repositories"
)

// VerdictSink buffers fusion verdicts and persists them in batches. The
// flush is triggered either by reaching the size threshold or by a
// time-based deadline, so low-throughput periods never leave verdicts stuck
// in memory.
type VerdictSink struct {
	mu           sync.Mutex
	timer        *time.Timer
	repository   repositories.IVerdictRepository
	log          *slog.Logger
	buffer       []domain.FusionResult
	maxBatch     int
	flushTimeout time.Duration
}

func NewVerdictSink(repository repositories.IVerdictRepository, log *slog.Logger,
	maxBatch int, flushTimeout time.Duration) *VerdictSink {
	return &VerdictSink{
		repository:   repository,
		log:          log,
		maxBatch:     maxBatch,
		flushTimeout: flushTimeout,
	}
}

// Consume implements contract.VerdictSink. It never blocks the fusion path
// beyond a buffer append; persistence happens on flush.
func (s *VerdictSink) Consume(_ context.Context, result domain.FusionResult) error {
	s.mu.Lock()
	s.buffer = append(s.buffer, result)

	// Arm the deadline on the first verdict of a new batch only.
	if len(s.buffer) == 1 && s.timer == nil {
		s.timer = time.AfterFunc(s.flushTimeout, func() {
			if err := s.Flush(); err != nil {
				s.log.Error("Timed verdict flush failed", "error", err)
			}
		})
	}

	isFull := len(s.buffer) >= s.maxBatch
	s.mu.Unlock()

	if isFull {
		return s.Flush()
	}
	return nil
}

// Flush persists the pending batch. Uses a swap under lock so new verdicts
// accumulate while the previous batch is being written. Called on the size
// and timer triggers, and once more at shutdown.
func (s *VerdictSink) Flush() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if len(s.buffer) == 0 {
		s.mu.Unlock()
		return nil
	}
	batch := s.buffer
	s.buffer = make([]domain.FusionResult, 0, s.maxBatch)
	s.mu.Unlock()

	return s.repository.Store(batch...)
}
