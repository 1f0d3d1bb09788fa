package test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"emotion-lab/contract"
	"emotion-lab/domain"
	liberrors "emotion-lab/errors"
	"emotion-lab/estimators"
	"emotion-lab/fusion"
	"emotion-lab/observability"
	"emotion-lab/repositories"
	"emotion-lab/runtime"
	"emotion-lab/runtime/workers"
	"emotion-lab/sink"
	"emotion-lab/tracker"
)

// scriptedSource replays a fixed sequence of frames, then reports closure.
type scriptedSource struct {
	mu     sync.Mutex
	frames []contract.Frame
}

func (s *scriptedSource) Capture(ctx context.Context) (contract.Frame, error) {
	if err := ctx.Err(); err != nil {
		return contract.Frame{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.frames) == 0 {
		return contract.Frame{}, liberrors.ErrCaptureClosed
	}
	frame := s.frames[0]
	s.frames = s.frames[1:]
	return frame, nil
}

func (s *scriptedSource) Close() error { return nil }

func brightFrame() contract.Frame {
	// High mean intensity with strong variation reads as happy
	pixels := make([]byte, 64)
	for i := range pixels {
		if i%2 == 0 {
			pixels[i] = 220
		} else {
			pixels[i] = 130
		}
	}
	return contract.Frame{Pixels: pixels, Width: 8, Height: 8, At: time.Now().UTC()}
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestPipeline_EndToEnd drives the whole chain: capture loop feeding the
// tracker, a direct Analyze call fusing face consensus with text, and the
// verdict landing in badger through the batching sink.
func TestPipeline_EndToEnd(t *testing.T) {
	req := require.New(t)
	log := quiet()
	ctx := context.Background()

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repo := repositories.NewVerdictRepository(db, log)
	verdictSink := sink.NewVerdictSink(repo, log, 1, time.Second)

	engine, err := fusion.NewEngine(log, fusion.DefaultConfig())
	req.NoError(err)
	track := tracker.NewConsensusTracker(tracker.DefaultMaxHistory)
	monitoring := observability.NewMonitoringManager(log)

	textEstimator, err := estimators.NewKeywordTextEstimator(log)
	req.NoError(err)
	faceEstimator := estimators.NewLuminanceFaceEstimator()

	orchestrator := runtime.NewOrchestrator(
		log, engine, track,
		faceEstimator, textEstimator, estimators.NewAudioProxyEstimator(textEstimator),
		[]contract.VerdictSink{verdictSink},
		monitoring, tracker.DefaultWindow, 50*time.Millisecond,
	)

	source := &scriptedSource{frames: []contract.Frame{
		brightFrame(), brightFrame(), brightFrame(), brightFrame(), brightFrame(),
	}}
	orchestrator.AddWorker(workers.NewFaceCaptureWorker(
		log, source, faceEstimator, track, monitoring,
		5*time.Millisecond, tracker.DefaultWindow,
	))
	orchestrator.Start(ctx)

	// Wait for the capture loop to drain the scripted frames
	deadline := time.Now().Add(2 * time.Second)
	for track.Size() < 5 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	req.Equal(5, track.Size())

	// The tracker should agree on happy with full stability
	consensus := track.Consensus(time.Now().UTC(), tracker.DefaultWindow)
	req.NotNil(consensus)
	req.Equal(domain.Happy, consensus.Emotion)
	req.InDelta(1.0, consensus.StabilityScore, 1e-9)

	// Direct call: agreeing text plus the face consensus
	result := orchestrator.Analyze(ctx, runtime.AnalyzeRequest{
		Text:  "I am so happy and joyful today",
		Frame: brightFrame(),
	})
	req.Equal(domain.Happy, result.FinalEmotion)
	req.True(result.IsAuthentic)
	req.LessOrEqual(result.FinalConfidence, 0.95)

	sum := 0.0
	for _, p := range result.Probabilities {
		sum += p
	}
	req.InDelta(1.0, sum, 1e-6)

	orchestrator.Stop(time.Second)
	req.NoError(verdictSink.Flush())

	// The verdict must have reached the store
	stored, err := repo.Recent(10)
	req.NoError(err)
	req.NotEmpty(stored)
	found := false
	for _, s := range stored {
		if s.ID == result.ID {
			found = true
			req.Equal(result.FinalEmotion, s.FinalEmotion)
		}
	}
	req.True(found, "analyzed verdict should be persisted")
}

// TestPipeline_ConflictIsFlagged checks the fake-detection path end to end:
// a bright (happy) face against clearly sad text must surface as not
// authentic with both labels explained.
func TestPipeline_ConflictIsFlagged(t *testing.T) {
	req := require.New(t)
	log := quiet()

	engine, err := fusion.NewEngine(log, fusion.DefaultConfig())
	req.NoError(err)
	textEstimator, err := estimators.NewKeywordTextEstimator(log)
	req.NoError(err)

	orchestrator := runtime.NewOrchestrator(
		log, engine, tracker.NewConsensusTracker(tracker.DefaultMaxHistory),
		estimators.NewLuminanceFaceEstimator(), textEstimator, nil,
		nil, observability.NewMonitoringManager(log), tracker.DefaultWindow,
		50*time.Millisecond,
	)

	result := orchestrator.Analyze(context.Background(), runtime.AnalyzeRequest{
		Text:  "I feel sad and depressed, everything is hopeless",
		Frame: brightFrame(),
	})

	req.Equal(domain.Happy, result.FinalEmotion)
	req.False(result.IsAuthentic)
	req.Contains(result.Explanation, "happy")
	req.Contains(result.Explanation, "sad")
}
