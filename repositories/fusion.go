//go:generate go run go.uber.org/mock/mockgen -source=fusion.go -destination=../mocks/mock_fusion_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"

	"emotion-lab/domain"
)

const verdictPrefix = "fusion:"

type IVerdictRepository interface {
	Store(results ...domain.FusionResult) error
	Recent(limit int) ([]domain.FusionResult, error)
}

// VerdictRepository is the append-only store of fusion verdicts, kept for
// inspection and offline analysis. It is observability plumbing: the fusion
// path itself never reads from it.
type VerdictRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewVerdictRepository(db *badger.DB, log *slog.Logger) *VerdictRepository {
	return &VerdictRepository{db: db, log: log}
}

// Store persists a batch in a single transaction. Keys are ordered by
// verdict timestamp so iteration is chronological.
func (r *VerdictRepository) Store(results ...domain.FusionResult) error {
	if len(results) == 0 {
		return nil
	}
	return r.db.Update(func(txn *badger.Txn) error {
		for _, result := range results {
			bytes, err := json.Marshal(result)
			if err != nil {
				return fmt.Errorf("encoding verdict %s: %w", result.ID, err)
			}
			if err := txn.Set([]byte(verdictKey(result)), bytes); err != nil {
				return err
			}
		}
		return nil
	})
}

// Recent returns up to limit verdicts, newest first.
func (r *VerdictRepository) Recent(limit int) ([]domain.FusionResult, error) {
	var raw [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		// Reverse iteration starts past the last key of the prefix.
		seek := append([]byte(verdictPrefix), 0xFF)
		for it.Seek(seek); it.ValidForPrefix([]byte(verdictPrefix)); it.Next() {
			if limit > 0 && len(raw) >= limit {
				return nil
			}
			if err := it.Item().Value(func(val []byte) error {
				raw = append(raw, append([]byte(nil), val...))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	results := lo.FilterMap(raw, func(bytes []byte, _ int) (domain.FusionResult, bool) {
		var result domain.FusionResult
		if err := json.Unmarshal(bytes, &result); err != nil {
			r.log.Warn("Skipping undecodable verdict", "error", err)
			return domain.FusionResult{}, false
		}
		return result, true
	})
	return results, nil
}

func verdictKey(result domain.FusionResult) string {
	return fmt.Sprintf("%s%d:%s", verdictPrefix, result.At.UnixNano(), result.ID)
}
