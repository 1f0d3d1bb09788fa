package domain

type Emotion string

const (
	Happy    Emotion = "happy"
	Sad      Emotion = "sad"
	Angry    Emotion = "angry"
	Fear     Emotion = "fear"
	Surprise Emotion = "surprise"
	Disgust  Emotion = "disgust"
	Neutral  Emotion = "neutral"
)

// CanonicalOrder is the fixed label order. Every deterministic tie-break in
// the system (consensus mode, probability argmax) resolves to the first tied
// label in this order.
var CanonicalOrder = []Emotion{Happy, Sad, Angry, Fear, Surprise, Disgust, Neutral}

func (e Emotion) Valid() bool {
	switch e {
	case Happy, Sad, Angry, Fear, Surprise, Disgust, Neutral:
		return true
	}
	return false
}

type Valence int

const (
	ValenceNeutral Valence = iota
	ValencePositive
	ValenceNegative
)

func (e Emotion) Valence() Valence {
	switch e {
	case Happy, Surprise:
		return ValencePositive
	case Sad, Angry, Fear, Disgust:
		return ValenceNegative
	default:
		return ValenceNeutral
	}
}
