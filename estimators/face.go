package estimators

import (
	"context"
	"math"
	"time"

	"emotion-lab/contract"
	"emotion-lab/domain"
)

// LuminanceFaceEstimator is a heuristic frame classifier over grayscale
// intensity statistics. Bright high-contrast faces read happy, dark frames
// read sad, very high contrast reads surprise. It stands in for a trained
// face model behind the same Estimator contract.
type LuminanceFaceEstimator struct{}

func NewLuminanceFaceEstimator() *LuminanceFaceEstimator {
	return &LuminanceFaceEstimator{}
}

func (e *LuminanceFaceEstimator) Modality() domain.Modality {
	return domain.FaceModality
}

func (e *LuminanceFaceEstimator) Predict(_ context.Context, input contract.Input) (domain.ModalityEstimate, error) {
	frame := input.Frame
	if frame.Empty() {
		// No detectable face: weak neutral, never an error.
		return neutralEstimate(domain.FaceModality, 0.3), nil
	}

	mean, std := intensityStats(frame.Pixels)

	emotion := domain.Neutral
	confidence := 0.5
	switch {
	case mean > 120 && std > 20:
		emotion, confidence = domain.Happy, 0.7
	case mean < 80:
		emotion, confidence = domain.Sad, 0.65
	case std > 30:
		emotion, confidence = domain.Surprise, 0.6
	}

	probs := make(map[domain.Emotion]float64, len(domain.CanonicalOrder))
	for _, candidate := range domain.CanonicalOrder {
		probs[candidate] = 0.1
	}
	probs[emotion] = confidence

	at := frame.At
	if at.IsZero() {
		at = time.Now().UTC()
	}
	return domain.ModalityEstimate{
		Emotion:       emotion,
		Confidence:    confidence,
		Probabilities: domain.NormalizeDistribution(probs),
		Modality:      domain.FaceModality,
		At:            at,
	}, nil
}

func intensityStats(pixels []byte) (mean, std float64) {
	sum := 0.0
	for _, p := range pixels {
		sum += float64(p)
	}
	mean = sum / float64(len(pixels))

	variance := 0.0
	for _, p := range pixels {
		d := float64(p) - mean
		variance += d * d
	}
	return mean, math.Sqrt(variance / float64(len(pixels)))
}
