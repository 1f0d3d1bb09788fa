package estimators

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"emotion-lab/contract"
	"emotion-lab/domain"
)

func flatFrame(value byte, n int) contract.Frame {
	pixels := make([]byte, n)
	for i := range pixels {
		pixels[i] = value
	}
	return contract.Frame{Pixels: pixels, Width: n, Height: 1, At: time.Now().UTC()}
}

func TestLuminanceFaceEstimator_Predict(t *testing.T) {
	req := require.New(t)
	estimator := NewLuminanceFaceEstimator()
	ctx := context.Background()

	// Bright frame with contrast: alternate bright values around a high mean.
	bright := contract.Frame{Width: 64, Height: 1, Pixels: make([]byte, 64), At: time.Now()}
	for i := range bright.Pixels {
		if i%2 == 0 {
			bright.Pixels[i] = 200
		} else {
			bright.Pixels[i] = 120
		}
	}
	est, err := estimator.Predict(ctx, contract.Input{Frame: bright})
	req.NoError(err)
	req.Equal(domain.Happy, est.Emotion)
	req.InDelta(0.7, est.Confidence, 1e-9)

	// Uniformly dark frame.
	est, err = estimator.Predict(ctx, contract.Input{Frame: flatFrame(40, 64)})
	req.NoError(err)
	req.Equal(domain.Sad, est.Emotion)

	// Mid-brightness, no contrast: neutral.
	est, err = estimator.Predict(ctx, contract.Input{Frame: flatFrame(100, 64)})
	req.NoError(err)
	req.Equal(domain.Neutral, est.Emotion)
	req.InDelta(0.5, est.Confidence, 1e-9)
}

func TestLuminanceFaceEstimator_EmptyFrame(t *testing.T) {
	req := require.New(t)
	estimator := NewLuminanceFaceEstimator()

	est, err := estimator.Predict(context.Background(), contract.Input{})
	req.NoError(err)
	req.Equal(domain.Neutral, est.Emotion)
	req.InDelta(0.3, est.Confidence, 1e-9)
	req.Equal(domain.FaceModality, est.Modality)
}

func TestLuminanceFaceEstimator_DistributionArgMax(t *testing.T) {
	req := require.New(t)
	estimator := NewLuminanceFaceEstimator()

	est, err := estimator.Predict(context.Background(), contract.Input{Frame: flatFrame(40, 32)})
	req.NoError(err)
	req.Equal(est.Emotion, domain.ArgMax(est.Probabilities))

	sum := 0.0
	for _, p := range est.Probabilities {
		sum += p
	}
	req.InDelta(1.0, sum, 1e-6)
}

func TestAudioProxyEstimator_RetagsModality(t *testing.T) {
	req := require.New(t)
	proxy := NewAudioProxyEstimator(NewNeutralEstimator(domain.TextModality))

	est, err := proxy.Predict(context.Background(), contract.Input{Text: "whatever"})
	req.NoError(err)
	req.Equal(domain.AudioModality, est.Modality)
	req.Equal(domain.AudioModality, proxy.Modality())
}

func TestNeutralEstimator_Predict(t *testing.T) {
	req := require.New(t)
	estimator := NewNeutralEstimator(domain.FaceModality)

	est, err := estimator.Predict(context.Background(), contract.Input{})
	req.NoError(err)
	req.Equal(domain.Neutral, est.Emotion)
	req.InDelta(0.5, est.Confidence, 1e-9)
	for _, p := range est.Probabilities {
		req.InDelta(1.0/7.0, p, 1e-9)
	}
}
