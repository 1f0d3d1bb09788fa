// Package estimators provides the built-in modality classifiers. All of them
// implement contract.Estimator; which one serves a modality is decided by
// configuration at wiring time.
package estimators

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/abadojack/whatlanggo"
	goahocorasick "github.com/anknown/ahocorasick"

	"emotion-lab/contract"
	"emotion-lab/domain"
	apperrors "emotion-lab/errors"
)

// Confidence applied when no keyword fires, and when the text is not
// recognizably English (the dictionaries are English).
const (
	noMatchConfidence   = 0.6
	foreignLangDiscount = 0.8
)

// emotionKeywords is the per-emotion dictionary. Neutral is deliberately
// absent: it is the default when nothing fires.
var emotionKeywords = map[domain.Emotion][]string{
	domain.Happy:    {"happy", "joy", "joyful", "excited", "great", "wonderful", "love", "amazing", "fantastic", "awesome", "perfect", "excellent"},
	domain.Sad:      {"sad", "down", "depressed", "awful", "terrible", "hurt", "cry", "upset", "disappointed", "heartbroken", "miserable"},
	domain.Angry:    {"angry", "mad", "furious", "hate", "annoyed", "irritated", "frustrated", "rage"},
	domain.Fear:     {"scared", "afraid", "worried", "anxious", "nervous", "terrified", "frightened"},
	domain.Surprise: {"surprised", "shocked", "amazed", "wow", "incredible", "unbelievable"},
	domain.Disgust:  {"disgusted", "disgusting", "gross", "nasty", "revolting", "sick"},
}

// KeywordTextEstimator scores text against per-emotion keyword dictionaries
// with an Aho-Corasick automaton over a leet/noise-normalized view of the
// input, so "h4ppy!!!" still counts as happy.
type KeywordTextEstimator struct {
	log     *slog.Logger
	matcher *goahocorasick.Machine
	labelOf map[string]domain.Emotion
}

func NewKeywordTextEstimator(log *slog.Logger) (*KeywordTextEstimator, error) {
	var patterns [][]rune
	labelOf := make(map[string]domain.Emotion)
	for emotion, words := range emotionKeywords {
		for _, word := range words {
			normalized := normalizeRunes([]rune(word))
			patterns = append(patterns, normalized)
			labelOf[string(normalized)] = emotion
		}
	}
	if len(patterns) == 0 {
		return nil, apperrors.ErrEmptyDictionary
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &KeywordTextEstimator{log: log, matcher: m, labelOf: labelOf}, nil
}

func (e *KeywordTextEstimator) Modality() domain.Modality {
	return domain.TextModality
}

func (e *KeywordTextEstimator) Predict(_ context.Context, input contract.Input) (domain.ModalityEstimate, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return neutralEstimate(domain.TextModality, 0.5), nil
	}

	scores := e.keywordScores(text)

	emotion := domain.Neutral
	hits := 0
	for _, candidate := range domain.CanonicalOrder {
		if scores[candidate] > hits {
			emotion = candidate
			hits = scores[candidate]
		}
	}

	confidence := noMatchConfidence
	if hits > 0 {
		confidence = domain.Clamp(0.7+0.1*float64(hits), 0, 0.95)
	}

	// The dictionaries are English; a reliably detected other language means
	// the keyword signal is weak evidence at best.
	if info := whatlanggo.Detect(text); info.IsReliable() && info.Lang != whatlanggo.Eng {
		e.log.Debug("Non-English text, discounting keyword confidence",
			"lang", info.Lang.Iso6391())
		confidence *= foreignLangDiscount
	}

	// Smoothed score distribution: every label keeps a little mass so a
	// single keyword never produces a degenerate distribution.
	probs := make(map[domain.Emotion]float64, len(domain.CanonicalOrder))
	for _, candidate := range domain.CanonicalOrder {
		probs[candidate] = float64(scores[candidate]) + 0.1
	}
	probs[domain.Neutral] += 0.5

	return domain.ModalityEstimate{
		Emotion:       emotion,
		Confidence:    confidence,
		Probabilities: domain.NormalizeDistribution(probs),
		Modality:      domain.TextModality,
		At:            time.Now().UTC(),
	}, nil
}

func (e *KeywordTextEstimator) keywordScores(text string) map[domain.Emotion]int {
	normalized := normalizeRunes([]rune(text))
	scores := make(map[domain.Emotion]int, len(emotionKeywords))
	for _, span := range e.matcher.MultiPatternSearch(normalized, false) {
		if emotion, ok := e.labelOf[string(span.Word)]; ok {
			scores[emotion]++
		}
	}
	return scores
}

// normalizeRunes lowercases, maps common leet substitutions back to letters
// and strips punctuation, spacing and symbols.
func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}

func neutralEstimate(modality domain.Modality, confidence float64) domain.ModalityEstimate {
	return domain.ModalityEstimate{
		Emotion:       domain.Neutral,
		Confidence:    confidence,
		Probabilities: domain.UniformDistribution(),
		Modality:      modality,
		At:            time.Now().UTC(),
	}
}
