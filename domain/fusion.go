package domain

import (
	"time"

	"github.com/google/uuid"
)

// FusionResult is the final multimodal verdict. Field names are the stable
// data contract serialized by any outer transport layer.
type FusionResult struct {
	ID                 uuid.UUID           `json:"id"`
	FinalEmotion       Emotion             `json:"final_emotion"`
	FinalConfidence    float64             `json:"final_confidence"`
	IsAuthentic        bool                `json:"is_authentic"`
	CompatibilityScore float64             `json:"compatibility_score"`
	Explanation        string              `json:"explanation"`
	Probabilities      map[Emotion]float64 `json:"probabilities"`
	Face               *ModalityEstimate   `json:"face_emotion,omitempty"`
	Text               *ModalityEstimate   `json:"text_emotion,omitempty"`
	Audio              *ModalityEstimate   `json:"audio_emotion,omitempty"`
	At                 time.Time           `json:"at"`
}
