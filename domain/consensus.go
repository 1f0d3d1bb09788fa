package domain

// ConsensusResult is the reduction of the recent face-estimate window to a
// single judgment. Derived on demand, never stored.
type ConsensusResult struct {
	Emotion        Emotion         `json:"emotion"`
	Confidence     float64         `json:"confidence"`
	StabilityScore float64         `json:"stability_score"`
	SampleCount    int             `json:"sample_count"`
	Distribution   map[Emotion]int `json:"emotion_distribution"`
}
