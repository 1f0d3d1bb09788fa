package fusion

import "emotion-lab/domain"

// defaultFallbackScore is used for pairs the matrix does not list.
const defaultFallbackScore = 0.3

// CompatibilityMatrix answers how plausible it is that a face shows one
// emotion while text expresses another, as a scalar in [0,1]. Rows are face
// emotions, columns text emotions; the table is asymmetric on purpose
// (a sad face with neutral words is more plausible than the reverse).
type CompatibilityMatrix map[domain.Emotion]map[domain.Emotion]float64

// DefaultMatrix encodes the domain knowledge used across all fusion
// policies: same-valence pairs around 0.5-0.7, opposite-valence pairs near
// zero, anything-vs-neutral in between.
func DefaultMatrix() CompatibilityMatrix {
	return CompatibilityMatrix{
		domain.Happy:    {domain.Surprise: 0.7, domain.Neutral: 0.5, domain.Sad: 0.1, domain.Angry: 0.0, domain.Fear: 0.2, domain.Disgust: 0.1},
		domain.Sad:      {domain.Neutral: 0.6, domain.Fear: 0.4, domain.Happy: 0.0, domain.Angry: 0.3, domain.Surprise: 0.2, domain.Disgust: 0.3},
		domain.Angry:    {domain.Disgust: 0.6, domain.Sad: 0.4, domain.Neutral: 0.3, domain.Happy: 0.0, domain.Fear: 0.2, domain.Surprise: 0.1},
		domain.Fear:     {domain.Surprise: 0.6, domain.Sad: 0.5, domain.Neutral: 0.4, domain.Angry: 0.2, domain.Happy: 0.1, domain.Disgust: 0.3},
		domain.Surprise: {domain.Happy: 0.6, domain.Fear: 0.5, domain.Neutral: 0.4, domain.Angry: 0.2, domain.Sad: 0.3, domain.Disgust: 0.2},
		domain.Disgust:  {domain.Angry: 0.6, domain.Sad: 0.4, domain.Fear: 0.3, domain.Neutral: 0.3, domain.Surprise: 0.2, domain.Happy: 0.1},
		domain.Neutral:  {domain.Happy: 0.4, domain.Sad: 0.4, domain.Surprise: 0.3, domain.Angry: 0.3, domain.Fear: 0.3, domain.Disgust: 0.3},
	}
}

// Score returns the compatibility of a (face, text) emotion pair.
// An exact match is always 1.0; unknown pairs fall back to 0.3.
func (m CompatibilityMatrix) Score(face, text domain.Emotion) float64 {
	if face == text {
		return 1.0
	}
	row, ok := m[face]
	if !ok {
		return defaultFallbackScore
	}
	score, ok := row[text]
	if !ok {
		return defaultFallbackScore
	}
	return score
}

// ValenceScore is the coarse fallback implementation of the same contract,
// classifying each emotion by valence instead of consulting the matrix.
func ValenceScore(face, text domain.Emotion) float64 {
	if face == text {
		return 1.0
	}
	fv, tv := face.Valence(), text.Valence()
	switch {
	case fv == tv && fv != domain.ValenceNeutral:
		return 0.7
	case fv == domain.ValenceNeutral || tv == domain.ValenceNeutral:
		return 0.5
	default:
		return 0.2
	}
}
