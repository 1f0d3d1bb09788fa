// Package tracker smooths noisy per-frame face estimates into a stable
// judgment. A single frame's classifier output is unreliable (lighting,
// transient expressions, misdetection); the consensus over a recency window
// is not.
package tracker

import (
	"sync"
	"time"

	"emotion-lab/domain"
)

const (
	DefaultMaxHistory = 10
	DefaultWindow     = 10 * time.Second
)

// ConsensusTracker keeps a bounded FIFO buffer of recent face estimates.
// One producer (the capture loop) appends, any number of fusion calls read
// concurrently; the mutex guards the buffer only, consensus computation runs
// on a snapshot.
type ConsensusTracker struct {
	mu         sync.Mutex
	buffer     []domain.ModalityEstimate
	maxHistory int
}

func NewConsensusTracker(maxHistory int) *ConsensusTracker {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &ConsensusTracker{
		buffer:     make([]domain.ModalityEstimate, 0, maxHistory),
		maxHistory: maxHistory,
	}
}

// Record appends a face estimate, evicting the oldest entry when the buffer
// is full. Non-face estimates are ignored. Always succeeds.
func (t *ConsensusTracker) Record(est domain.ModalityEstimate) {
	if est.Modality != domain.FaceModality {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.buffer) >= t.maxHistory {
		t.buffer = t.buffer[1:]
	}
	t.buffer = append(t.buffer, est)
}

// Consensus reduces the estimates captured within the window ending at now
// to a single judgment, or nil when no recent face data exists. The mode
// emotion ties break deterministically on domain.CanonicalOrder; the result
// is stable across calls for an identical buffer.
func (t *ConsensusTracker) Consensus(now time.Time, window time.Duration) *domain.ConsensusResult {
	if window <= 0 {
		window = DefaultWindow
	}
	cutoff := now.Add(-window)

	recent := t.snapshot(func(est domain.ModalityEstimate) bool {
		return est.At.After(cutoff)
	})
	if len(recent) == 0 {
		return nil
	}

	counts := make(map[domain.Emotion]int, len(domain.CanonicalOrder))
	confidences := make(map[domain.Emotion]float64, len(domain.CanonicalOrder))
	for _, est := range recent {
		counts[est.Emotion]++
		confidences[est.Emotion] += est.Confidence
	}

	consensus := domain.Neutral
	best := 0
	for _, emotion := range domain.CanonicalOrder {
		if counts[emotion] > best {
			consensus = emotion
			best = counts[emotion]
		}
	}

	return &domain.ConsensusResult{
		Emotion:        consensus,
		Confidence:     confidences[consensus] / float64(best),
		StabilityScore: float64(best) / float64(len(recent)),
		SampleCount:    len(recent),
		Distribution:   counts,
	}
}

// Latest returns the most recently timestamped entry regardless of the
// recency window, or nil when the buffer is empty.
func (t *ConsensusTracker) Latest() *domain.ModalityEstimate {
	entries := t.snapshot(nil)
	if len(entries) == 0 {
		return nil
	}
	latest := entries[0]
	for _, est := range entries[1:] {
		if est.At.After(latest.At) {
			latest = est
		}
	}
	return &latest
}

// Size reports the current number of buffered estimates.
func (t *ConsensusTracker) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.buffer)
}

func (t *ConsensusTracker) snapshot(keep func(domain.ModalityEstimate) bool) []domain.ModalityEstimate {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.ModalityEstimate, 0, len(t.buffer))
	for _, est := range t.buffer {
		if keep == nil || keep(est) {
			out = append(out, est)
		}
	}
	return out
}
