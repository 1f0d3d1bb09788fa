package sink

import (
	"context"
	"log/slog"

	"emotion-lab/domain"
	"emotion-lab/repositories"
)

// IndexSink feeds each verdict into the search index as it is produced.
// Indexing failures are logged and swallowed: the index is a convenience,
// not a system of record.
type IndexSink struct {
	index *repositories.VerdictIndex
	log   *slog.Logger
}

func NewIndexSink(index *repositories.VerdictIndex, log *slog.Logger) *IndexSink {
	return &IndexSink{index: index, log: log}
}

func (s *IndexSink) Consume(_ context.Context, result domain.FusionResult) error {
	if err := s.index.Index(result); err != nil {
		s.log.Warn("Indexing verdict failed", "id", result.ID, "error", err)
	}
	return nil
}
