package repositories

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blugelabs/bluge"

	"emotion-lab/domain"
)

// VerdictIndex makes stored verdicts searchable by their explanation text
// and final emotion, for the inspection tooling.
type VerdictIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewVerdictIndex(path string, log *slog.Logger) (*VerdictIndex, error) {
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(path))
	if err != nil {
		return nil, fmt.Errorf("opening verdict index: %w", err)
	}
	return &VerdictIndex{writer: writer, log: log}, nil
}

func (i *VerdictIndex) Index(result domain.FusionResult) error {
	doc := bluge.NewDocument(result.ID.String()).
		AddField(bluge.NewTextField("explanation", result.Explanation).StoreValue()).
		AddField(bluge.NewKeywordField("emotion", string(result.FinalEmotion)).StoreValue()).
		AddField(bluge.NewNumericField("confidence", result.FinalConfidence))
	return i.writer.Update(doc.ID(), doc)
}

// Match is one search hit.
type Match struct {
	ID          string
	Emotion     string
	Explanation string
}

// Search runs a match query over explanations, optionally filtered by final
// emotion ("" means any), newest index order.
func (i *VerdictIndex) Search(ctx context.Context, terms string, emotion domain.Emotion, limit int) ([]Match, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Warn("Closing index reader failed", "error", err)
		}
	}()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(terms).SetField("explanation"))
	if emotion != "" {
		query.AddMust(bluge.NewTermQuery(string(emotion)).SetField("emotion"))
	}

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}

	var matches []Match
	for {
		next, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if next == nil {
			break
		}
		var m Match
		err = next.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				m.ID = string(value)
			case "emotion":
				m.Emotion = string(value)
			case "explanation":
				m.Explanation = string(value)
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, nil
}

func (i *VerdictIndex) Close() error {
	return i.writer.Close()
}
