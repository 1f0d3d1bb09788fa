package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"emotion-lab/domain"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func verdict(emotion domain.Emotion, authentic bool, at time.Time) domain.FusionResult {
	return domain.FusionResult{
		ID:              uuid.New(),
		FinalEmotion:    emotion,
		FinalConfidence: 0.8,
		IsAuthentic:     authentic,
		Explanation:     "Face and text both indicate " + string(emotion),
		At:              at,
	}
}

func TestVerdictRepository_StoreAndRecent(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	repo := NewVerdictRepository(openTestDB(t), log)

	base := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	req.NoError(repo.Store(
		verdict(domain.Happy, true, base),
		verdict(domain.Sad, false, base.Add(time.Second)),
		verdict(domain.Angry, true, base.Add(2*time.Second)),
	))

	recent, err := repo.Recent(2)
	req.NoError(err)
	req.Len(recent, 2)
	req.Equal(domain.Angry, recent[0].FinalEmotion, "newest first")
	req.Equal(domain.Sad, recent[1].FinalEmotion)

	all, err := repo.Recent(0)
	req.NoError(err)
	req.Len(all, 3)
}

func TestVerdictRepository_RoundTrip(t *testing.T) {
	req := require.New(t)
	repo := NewVerdictRepository(openTestDB(t), logs.GetLoggerFromLevel(slog.LevelDebug))

	original := domain.FusionResult{
		ID:                 uuid.New(),
		FinalEmotion:       domain.Surprise,
		FinalConfidence:    0.77,
		IsAuthentic:        true,
		CompatibilityScore: 0.7,
		Explanation:        "Compatible emotions: face shows surprise, text shows happy. Prioritizing facial expression.",
		Probabilities:      domain.UniformDistribution(),
		At:                 time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC),
	}
	req.NoError(repo.Store(original))

	got, err := repo.Recent(1)
	req.NoError(err)
	req.Len(got, 1)
	req.Equal(original.ID, got[0].ID)
	req.Equal(original.FinalEmotion, got[0].FinalEmotion)
	req.InDelta(original.FinalConfidence, got[0].FinalConfidence, 1e-9)
	req.Equal(original.Explanation, got[0].Explanation)
}

func TestVerdictRepository_EmptyStoreIsNoop(t *testing.T) {
	repo := NewVerdictRepository(openTestDB(t), logs.GetLoggerFromLevel(slog.LevelDebug))
	require.NoError(t, repo.Store())
}

func TestVerdictIndex_SearchByExplanation(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	index, err := NewVerdictIndex(t.TempDir(), log)
	req.NoError(err)
	t.Cleanup(func() { _ = index.Close() })

	fake := domain.FusionResult{
		ID:           uuid.New(),
		FinalEmotion: domain.Happy,
		Explanation:  "Potential fake: face shows happy but text suggests sad. Facial expression takes priority.",
		At:           time.Now().UTC(),
	}
	genuine := domain.FusionResult{
		ID:           uuid.New(),
		FinalEmotion: domain.Happy,
		Explanation:  "Face and text both indicate happy",
		At:           time.Now().UTC(),
	}
	req.NoError(index.Index(fake))
	req.NoError(index.Index(genuine))

	matches, err := index.Search(context.Background(), "fake", "", 10)
	req.NoError(err)
	req.Len(matches, 1)
	req.Equal(fake.ID.String(), matches[0].ID)

	matches, err = index.Search(context.Background(), "happy", domain.Happy, 10)
	req.NoError(err)
	req.Len(matches, 2)
}
