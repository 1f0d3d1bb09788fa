package tracker

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"emotion-lab/domain"
)

func faceEstimate(emotion domain.Emotion, confidence float64, at time.Time) domain.ModalityEstimate {
	return domain.ModalityEstimate{
		Emotion:       emotion,
		Confidence:    confidence,
		Probabilities: map[domain.Emotion]float64{emotion: 1},
		Modality:      domain.FaceModality,
		At:            at,
	}
}

func TestConsensusTracker_StableAgreement(t *testing.T) {
	req := require.New(t)
	tr := NewConsensusTracker(10)
	now := time.Now().UTC()

	for i := 0; i < 10; i++ {
		tr.Record(faceEstimate(domain.Happy, 0.8, now.Add(-time.Duration(i)*time.Second/2)))
	}

	consensus := tr.Consensus(now, 10*time.Second)
	req.NotNil(consensus)
	req.Equal(domain.Happy, consensus.Emotion)
	req.InDelta(1.0, consensus.StabilityScore, 1e-9)
	req.InDelta(0.8, consensus.Confidence, 1e-9)
	req.Equal(10, consensus.SampleCount)
}

func TestConsensusTracker_RecencyFiltering(t *testing.T) {
	req := require.New(t)
	tr := NewConsensusTracker(10)
	now := time.Now().UTC()

	// Nine stale entries still physically present in the buffer, one fresh.
	for i := 0; i < 9; i++ {
		tr.Record(faceEstimate(domain.Happy, 0.9, now.Add(-20*time.Second)))
	}
	tr.Record(faceEstimate(domain.Sad, 0.7, now.Add(-time.Second)))
	req.Equal(10, tr.Size())

	consensus := tr.Consensus(now, 10*time.Second)
	req.NotNil(consensus)
	req.Equal(domain.Sad, consensus.Emotion)
	req.InDelta(1.0, consensus.StabilityScore, 1e-9)
	req.Equal(1, consensus.SampleCount)
}

func TestConsensusTracker_EmptyWindowIsNil(t *testing.T) {
	req := require.New(t)
	tr := NewConsensusTracker(10)
	now := time.Now().UTC()

	req.Nil(tr.Consensus(now, 10*time.Second))

	// Non-empty buffer, nothing inside the window: same as face absent.
	tr.Record(faceEstimate(domain.Happy, 0.8, now.Add(-time.Minute)))
	req.Nil(tr.Consensus(now, 10*time.Second))
	req.Equal(1, tr.Size())
}

func TestConsensusTracker_FIFOEviction(t *testing.T) {
	req := require.New(t)
	tr := NewConsensusTracker(10)
	now := time.Now().UTC()

	tr.Record(faceEstimate(domain.Angry, 0.9, now.Add(-10*time.Millisecond)))
	for i := 0; i < 10; i++ {
		tr.Record(faceEstimate(domain.Happy, 0.8, now))
	}

	req.Equal(10, tr.Size())
	consensus := tr.Consensus(now.Add(time.Millisecond), time.Second)
	req.NotNil(consensus)
	req.Zero(consensus.Distribution[domain.Angry], "oldest entry must be evicted first")
}

func TestConsensusTracker_TieBreakIsCanonicalAndStable(t *testing.T) {
	req := require.New(t)
	tr := NewConsensusTracker(10)
	now := time.Now().UTC()

	// Two-way tie between fear and sad; sad precedes fear canonically.
	tr.Record(faceEstimate(domain.Fear, 0.9, now))
	tr.Record(faceEstimate(domain.Sad, 0.6, now))
	tr.Record(faceEstimate(domain.Fear, 0.9, now))
	tr.Record(faceEstimate(domain.Sad, 0.6, now))

	for i := 0; i < 5; i++ {
		consensus := tr.Consensus(now.Add(time.Millisecond), 10*time.Second)
		req.NotNil(consensus)
		req.Equal(domain.Sad, consensus.Emotion)
		req.InDelta(0.5, consensus.StabilityScore, 1e-9)
		req.InDelta(0.6, consensus.Confidence, 1e-9)
	}
}

func TestConsensusTracker_MeanConfidenceOfAgreeingOnly(t *testing.T) {
	req := require.New(t)
	tr := NewConsensusTracker(10)
	now := time.Now().UTC()

	tr.Record(faceEstimate(domain.Happy, 0.6, now))
	tr.Record(faceEstimate(domain.Happy, 0.8, now))
	tr.Record(faceEstimate(domain.Sad, 0.99, now))

	consensus := tr.Consensus(now.Add(time.Millisecond), 10*time.Second)
	req.NotNil(consensus)
	req.Equal(domain.Happy, consensus.Emotion)
	req.InDelta(0.7, consensus.Confidence, 1e-9)
	req.InDelta(2.0/3.0, consensus.StabilityScore, 1e-9)
}

func TestConsensusTracker_IgnoresNonFace(t *testing.T) {
	tr := NewConsensusTracker(10)
	tr.Record(domain.ModalityEstimate{
		Emotion:    domain.Happy,
		Confidence: 0.9,
		Modality:   domain.TextModality,
		At:         time.Now(),
	})
	require.Zero(t, tr.Size())
}

func TestConsensusTracker_Latest(t *testing.T) {
	req := require.New(t)
	tr := NewConsensusTracker(10)
	now := time.Now().UTC()

	req.Nil(tr.Latest())

	tr.Record(faceEstimate(domain.Sad, 0.7, now.Add(-5*time.Second)))
	tr.Record(faceEstimate(domain.Happy, 0.8, now))
	tr.Record(faceEstimate(domain.Angry, 0.6, now.Add(-2*time.Second)))

	latest := tr.Latest()
	req.NotNil(latest)
	req.Equal(domain.Happy, latest.Emotion)
}

func TestConsensusTracker_ConcurrentAppendAndRead(t *testing.T) {
	tr := NewConsensusTracker(10)
	now := time.Now().UTC()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			tr.Record(faceEstimate(domain.Happy, 0.8, now))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			tr.Consensus(now.Add(time.Millisecond), time.Second)
			tr.Latest()
		}
	}()
	wg.Wait()

	require.Equal(t, 10, tr.Size())
}
