package estimators

import (
	"context"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"emotion-lab/contract"
	"emotion-lab/domain"
)

func TestKeywordTextEstimator_Predict(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	estimator, err := NewKeywordTextEstimator(log)
	req.NoError(err)

	tests := []struct {
		name        string
		text        string
		wantEmotion domain.Emotion
		minConf     float64
	}{
		{
			name:        "Plainly happy",
			text:        "I am so happy and excited today!",
			wantEmotion: domain.Happy,
			minConf:     0.7,
		},
		{
			name:        "Plainly sad",
			text:        "I feel really sad and down, it was awful",
			wantEmotion: domain.Sad,
			minConf:     0.7,
		},
		{
			name:        "Angry with several triggers",
			text:        "I'm angry, frustrated and mad about this",
			wantEmotion: domain.Angry,
			minConf:     0.7,
		},
		{
			name:        "Fearful",
			text:        "honestly I'm scared and worried",
			wantEmotion: domain.Fear,
			minConf:     0.7,
		},
		{
			name:        "No trigger words",
			text:        "The meeting is at three o'clock",
			wantEmotion: domain.Neutral,
			minConf:     0.5,
		},
		{
			name:        "Leet speak still matches",
			text:        "honestly I am feeling so h4ppy right now",
			wantEmotion: domain.Happy,
			minConf:     0.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est, err := estimator.Predict(context.Background(), contract.Input{Text: tt.text})
			req.NoError(err)
			req.Equal(tt.wantEmotion, est.Emotion)
			req.GreaterOrEqual(est.Confidence, tt.minConf)
			req.LessOrEqual(est.Confidence, 0.95)
			req.Equal(domain.TextModality, est.Modality)

			sum := 0.0
			for _, p := range est.Probabilities {
				sum += p
			}
			req.InDelta(1.0, sum, 1e-6)
			req.Equal(est.Emotion, domain.ArgMax(est.Probabilities))
		})
	}
}

func TestKeywordTextEstimator_MoreHitsMoreConfidence(t *testing.T) {
	req := require.New(t)
	estimator, err := NewKeywordTextEstimator(logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(err)

	one, err := estimator.Predict(context.Background(), contract.Input{Text: "this is great"})
	req.NoError(err)
	many, err := estimator.Predict(context.Background(), contract.Input{Text: "great, wonderful, amazing, fantastic"})
	req.NoError(err)

	req.Equal(domain.Happy, one.Emotion)
	req.Equal(domain.Happy, many.Emotion)
	req.Greater(many.Confidence, one.Confidence)
}

func TestKeywordTextEstimator_EmptyText(t *testing.T) {
	req := require.New(t)
	estimator, err := NewKeywordTextEstimator(logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(err)

	est, err := estimator.Predict(context.Background(), contract.Input{Text: "   "})
	req.NoError(err)
	req.Equal(domain.Neutral, est.Emotion)
	req.InDelta(0.5, est.Confidence, 1e-9)
}
