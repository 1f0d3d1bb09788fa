package domain

import (
	"math"
	"time"
)

type Modality string

const (
	FaceModality  Modality = "face"
	TextModality  Modality = "text"
	AudioModality Modality = "audio"
)

// ModalityEstimate is one classifier's opinion for one modality at one point
// in time. Immutable once produced; consumed by the tracker (face) and the
// fusion engine.
type ModalityEstimate struct {
	Emotion       Emotion             `json:"emotion"`
	Confidence    float64             `json:"confidence"`
	Probabilities map[Emotion]float64 `json:"probabilities"`
	Modality      Modality            `json:"modality"`
	At            time.Time           `json:"at"`
}

// Sanitize returns a copy with the confidence clamped to [0,1] and the
// probability distribution renormalized to sum to 1. Estimators that emit a
// degraded distribution are tolerated rather than failed (best-effort
// contract): an empty or zero-sum distribution becomes uniform.
func (e ModalityEstimate) Sanitize() ModalityEstimate {
	out := e
	out.Confidence = Clamp(e.Confidence, 0, 1)
	if !out.Emotion.Valid() {
		out.Emotion = Neutral
	}
	out.Probabilities = NormalizeDistribution(e.Probabilities)
	return out
}

// NormalizeDistribution rescales a probability map over the closed label set
// so values sum to 1. Negative values are floored at zero; an empty or
// zero-sum input yields the uniform distribution.
func NormalizeDistribution(probs map[Emotion]float64) map[Emotion]float64 {
	out := make(map[Emotion]float64, len(CanonicalOrder))
	total := 0.0
	for _, emotion := range CanonicalOrder {
		p := probs[emotion]
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			p = 0
		}
		out[emotion] = p
		total += p
	}
	if total <= 0 {
		return UniformDistribution()
	}
	for emotion := range out {
		out[emotion] /= total
	}
	return out
}

// UniformDistribution spreads probability mass evenly over all labels.
func UniformDistribution() map[Emotion]float64 {
	out := make(map[Emotion]float64, len(CanonicalOrder))
	for _, emotion := range CanonicalOrder {
		out[emotion] = 1.0 / float64(len(CanonicalOrder))
	}
	return out
}

// ArgMax returns the label holding the highest probability, resolving ties
// by CanonicalOrder.
func ArgMax(probs map[Emotion]float64) Emotion {
	best := Neutral
	bestScore := math.Inf(-1)
	for _, emotion := range CanonicalOrder {
		if p := probs[emotion]; p > bestScore {
			best = emotion
			bestScore = p
		}
	}
	return best
}

func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}
