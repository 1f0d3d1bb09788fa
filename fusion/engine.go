package fusion

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"emotion-lab/domain"
	apperrors "emotion-lab/errors"
)

// Compatibility tiers. Above the high bar the modalities corroborate each
// other; below the moderate bar the pairing is implausible and the text is
// treated as potentially fake.
const (
	highCompatibility     = 0.7
	moderateCompatibility = 0.4
)

// Weights used when blending the face and text probability distributions in
// the moderate-compatibility zone.
const (
	blendFaceWeight = 0.7
	blendTextWeight = 0.3
)

type Config struct {
	FaceWeight            float64 `validate:"gte=0,lte=1"`
	TextWeight            float64 `validate:"gte=0,lte=1"`
	AudioWeight           float64 `validate:"gte=0,lte=1"`
	ConsistencyThreshold  float64 `validate:"gte=0,lte=1"`
	AuthenticityThreshold float64 `validate:"gte=0,lte=1"`
	TextOnlyPenalty       float64 `validate:"gt=0,lte=1"`
	MaxConfidence         float64 `validate:"gt=0,lte=1"`
}

// DefaultConfig is the single source of truth for the fusion weights.
// Face dominates text, audio is a low-weight third vote.
func DefaultConfig() Config {
	return Config{
		FaceWeight:            0.8,
		TextWeight:            0.2,
		AudioWeight:           0.1,
		ConsistencyThreshold:  0.6,
		AuthenticityThreshold: 0.7,
		TextOnlyPenalty:       0.75,
		MaxConfidence:         0.95,
	}
}

// Inputs carries at most one estimate per modality plus an optional
// previously-computed face consensus. A nil field means the modality is
// absent, which is a valid state, not an error.
type Inputs struct {
	Face      *domain.ModalityEstimate
	Text      *domain.ModalityEstimate
	Audio     *domain.ModalityEstimate
	Consensus *domain.ConsensusResult
}

// Engine adjudicates the final emotion from independent modality estimates.
// Fuse is a pure function of its inputs: no I/O, no shared state, safe for
// concurrent use.
type Engine struct {
	log    *slog.Logger
	cfg    Config
	matrix CompatibilityMatrix
}

func NewEngine(log *slog.Logger, cfg Config) (*Engine, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidConfig, err)
	}
	if cfg.FaceWeight+cfg.TextWeight == 0 {
		return nil, fmt.Errorf("%w: face and text weights are both zero", apperrors.ErrInvalidConfig)
	}
	return &Engine{log: log, cfg: cfg, matrix: DefaultMatrix()}, nil
}

// Fuse applies the decision table. Business outcomes (missing modalities,
// low confidence, conflicts) are never errors: every call returns a
// well-formed result whose is_authentic flag and explanation carry the
// "something looked wrong" information.
func (e *Engine) Fuse(in Inputs) domain.FusionResult {
	face := sanitized(in.Face)
	text := sanitized(in.Text)
	audio := sanitized(in.Audio)

	// The face side may arrive as a tracked consensus instead of a single
	// estimate: a text-only request while the capture loop is live must still
	// be cross-checked against what the camera has been seeing.
	if face == nil && in.Consensus != nil && in.Consensus.SampleCount > 0 {
		face = consensusEstimate(in.Consensus)
	}

	var result domain.FusionResult
	switch {
	case face == nil && text == nil && audio == nil:
		result = e.noInput()
	case face != nil && text == nil:
		result = e.faceOnly(face, in.Consensus)
	case face == nil && text != nil:
		result = e.singleUnverified(text)
	case face == nil && audio != nil:
		result = e.singleUnverified(audio)
	default:
		result = e.faceAndText(face, text, in.Consensus)
	}

	if audio != nil && (face != nil || text != nil) {
		result = e.foldAudio(result, audio)
	}

	result.ID = uuid.New()
	result.Face = face
	result.Text = text
	result.Audio = audio
	result.FinalConfidence = domain.Clamp(result.FinalConfidence, 0, e.cfg.MaxConfidence)
	result.Probabilities = domain.NormalizeDistribution(result.Probabilities)
	result.At = time.Now().UTC()
	return result
}

func (e *Engine) noInput() domain.FusionResult {
	return domain.FusionResult{
		FinalEmotion:    domain.Neutral,
		FinalConfidence: 0.5,
		IsAuthentic:     false,
		Explanation:     "No face, text or audio data available",
		Probabilities:   domain.UniformDistribution(),
	}
}

// faceOnly: facial expression is treated as ground truth, so it is
// self-authenticating above the consistency threshold.
func (e *Engine) faceOnly(face *domain.ModalityEstimate, consensus *domain.ConsensusResult) domain.FusionResult {
	emotion, confidence := faceJudgment(face, consensus)
	return domain.FusionResult{
		FinalEmotion:       emotion,
		FinalConfidence:    confidence,
		IsAuthentic:        confidence > e.cfg.ConsistencyThreshold,
		CompatibilityScore: 1.0,
		Explanation:        fmt.Sprintf("Face-only detection: %s with %.0f%% confidence", emotion, confidence*100),
		Probabilities:      face.Probabilities,
	}
}

// singleUnverified handles text-only and audio-only input. Without a face to
// cross-check, the confidence is penalized and the authenticity bar is
// stricter: a neutral label alone never qualifies as authentic.
func (e *Engine) singleUnverified(est *domain.ModalityEstimate) domain.FusionResult {
	authentic := est.Confidence > e.cfg.AuthenticityThreshold && est.Emotion != domain.Neutral
	return domain.FusionResult{
		FinalEmotion:       est.Emotion,
		FinalConfidence:    est.Confidence * e.cfg.TextOnlyPenalty,
		IsAuthentic:        authentic,
		CompatibilityScore: 0.5,
		Explanation: fmt.Sprintf("%s-only detection: %s. Face verification recommended for authenticity.",
			titleModality(est.Modality), est.Emotion),
		Probabilities: est.Probabilities,
	}
}

func (e *Engine) faceAndText(face, text *domain.ModalityEstimate, consensus *domain.ConsensusResult) domain.FusionResult {
	faceEmotion, faceConf := faceJudgment(face, consensus)
	compatibility := e.matrix.Score(faceEmotion, text.Emotion)

	switch {
	case compatibility >= highCompatibility:
		confidence := faceConf*e.cfg.FaceWeight + text.Confidence*e.cfg.TextWeight
		explanation := fmt.Sprintf("Face and text both indicate %s", faceEmotion)
		if faceEmotion != text.Emotion {
			explanation = fmt.Sprintf("Compatible emotions: face shows %s, text shows %s. Prioritizing facial expression.",
				faceEmotion, text.Emotion)
		}
		return domain.FusionResult{
			FinalEmotion:       faceEmotion,
			FinalConfidence:    confidence,
			IsAuthentic:        true,
			CompatibilityScore: compatibility,
			Explanation:        explanation,
			Probabilities:      blend(face.Probabilities, text.Probabilities, e.cfg.FaceWeight, e.cfg.TextWeight),
		}

	case compatibility >= moderateCompatibility:
		// The stronger signal wins; distributions are blended face-heavy so
		// the output probabilities still reflect both opinions.
		final := faceEmotion
		if text.Confidence > faceConf {
			final = text.Emotion
		}
		return domain.FusionResult{
			FinalEmotion:       final,
			FinalConfidence:    max(faceConf, text.Confidence) * 0.8,
			IsAuthentic:        true,
			CompatibilityScore: compatibility,
			Explanation: fmt.Sprintf("Moderate compatibility between face (%s) and text (%s). Prioritizing the stronger signal.",
				faceEmotion, text.Emotion),
			Probabilities: blend(face.Probabilities, text.Probabilities, blendFaceWeight, blendTextWeight),
		}

	default:
		// Conflict: the face always wins over text that contradicts it.
		e.log.Warn("Face/text conflict detected, prioritizing facial expression",
			"face", faceEmotion, "text", text.Emotion,
			"face_confidence", faceConf, "text_confidence", text.Confidence)
		return domain.FusionResult{
			FinalEmotion:       faceEmotion,
			FinalConfidence:    faceConf * 0.7,
			IsAuthentic:        false,
			CompatibilityScore: compatibility,
			Explanation: fmt.Sprintf("Potential fake: face shows %s but text suggests %s. Facial expression takes priority.",
				faceEmotion, text.Emotion),
			Probabilities: face.Probabilities,
		}
	}
}

// foldAudio mixes the audio vote into an already-adjudicated result. Audio
// carries the lowest weight, never overrides the face/text resolution and
// never flips the authenticity verdict.
func (e *Engine) foldAudio(result domain.FusionResult, audio *domain.ModalityEstimate) domain.FusionResult {
	w := e.cfg.AudioWeight
	if w <= 0 {
		return result
	}
	agreement := e.matrix.Score(result.FinalEmotion, audio.Emotion)
	result.FinalConfidence = result.FinalConfidence*(1-w) + audio.Confidence*agreement*w
	result.Probabilities = blend(result.Probabilities, audio.Probabilities, 1-w, w)
	return result
}

// faceJudgment prefers the temporal consensus over a single frame: the
// consensus confidence is discounted by its stability score.
func faceJudgment(face *domain.ModalityEstimate, consensus *domain.ConsensusResult) (domain.Emotion, float64) {
	if consensus != nil && consensus.SampleCount > 0 {
		return consensus.Emotion, domain.Clamp(consensus.Confidence*consensus.StabilityScore, 0, 1)
	}
	return face.Emotion, face.Confidence
}

// consensusEstimate turns a tracked face consensus into a face estimate, so
// the face/face+text branches can adjudicate against it. The confidence is
// the stability-discounted consensus confidence and the distribution comes
// from the consensus histogram.
func consensusEstimate(c *domain.ConsensusResult) *domain.ModalityEstimate {
	probs := make(map[domain.Emotion]float64, len(c.Distribution))
	for emotion, count := range c.Distribution {
		probs[emotion] = float64(count)
	}
	return &domain.ModalityEstimate{
		Emotion:       c.Emotion,
		Confidence:    domain.Clamp(c.Confidence*c.StabilityScore, 0, 1),
		Probabilities: domain.NormalizeDistribution(probs),
		Modality:      domain.FaceModality,
		At:            time.Now().UTC(),
	}
}

func blend(a, b map[domain.Emotion]float64, wa, wb float64) map[domain.Emotion]float64 {
	out := make(map[domain.Emotion]float64, len(domain.CanonicalOrder))
	for _, emotion := range domain.CanonicalOrder {
		out[emotion] = a[emotion]*wa + b[emotion]*wb
	}
	return domain.NormalizeDistribution(out)
}

func sanitized(est *domain.ModalityEstimate) *domain.ModalityEstimate {
	if est == nil {
		return nil
	}
	clean := est.Sanitize()
	return &clean
}

func titleModality(m domain.Modality) string {
	switch m {
	case domain.AudioModality:
		return "Audio"
	case domain.FaceModality:
		return "Face"
	default:
		return "Text"
	}
}
