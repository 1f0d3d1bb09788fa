package estimators

import (
	"context"

	"emotion-lab/contract"
	"emotion-lab/domain"
)

// NeutralEstimator is the no-op responder selected when no real classifier
// is available for a modality. It keeps the pipeline shape intact while
// contributing the weakest possible signal.
type NeutralEstimator struct {
	modality domain.Modality
}

func NewNeutralEstimator(modality domain.Modality) *NeutralEstimator {
	return &NeutralEstimator{modality: modality}
}

func (e *NeutralEstimator) Modality() domain.Modality {
	return e.modality
}

func (e *NeutralEstimator) Predict(context.Context, contract.Input) (domain.ModalityEstimate, error) {
	return neutralEstimate(e.modality, 0.5), nil
}
