package estimators

import (
	"context"

	"emotion-lab/contract"
	"emotion-lab/domain"
)

// AudioProxyEstimator scores the audio modality through its transcript.
// There is no acoustic model yet; the transcript carries most of the usable
// signal, and the fusion engine already weights audio lowest.
type AudioProxyEstimator struct {
	inner contract.Estimator
}

func NewAudioProxyEstimator(inner contract.Estimator) *AudioProxyEstimator {
	return &AudioProxyEstimator{inner: inner}
}

func (e *AudioProxyEstimator) Modality() domain.Modality {
	return domain.AudioModality
}

func (e *AudioProxyEstimator) Predict(ctx context.Context, input contract.Input) (domain.ModalityEstimate, error) {
	est, err := e.inner.Predict(ctx, input)
	if err != nil {
		return domain.ModalityEstimate{}, err
	}
	est.Modality = domain.AudioModality
	return est, nil
}
