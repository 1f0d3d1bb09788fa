//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"

	"emotion-lab/domain"
)

// Estimator is the single capability contract every modality classifier
// implements, whether it is a real model, a keyword fallback, or a no-op
// neutral responder. Selection happens by configuration, not by import
// guards.
type Estimator interface {
	Predict(ctx context.Context, input Input) (domain.ModalityEstimate, error)
	Modality() domain.Modality
}

// Input is the raw material an estimator works on. Only the field matching
// the estimator's modality is consulted.
type Input struct {
	Text  string
	Frame Frame
}

// Frame is one grayscale capture from a face source.
type Frame struct {
	Pixels []byte
	Width  int
	Height int
	At     time.Time
}

func (f Frame) Empty() bool {
	return len(f.Pixels) == 0 || f.Width <= 0 || f.Height <= 0
}

// CaptureSource abstracts the camera. Capture blocks until a frame is
// available or the context is done; Close releases the device.
type CaptureSource interface {
	Capture(ctx context.Context) (Frame, error)
	Close() error
}

// Tracker is the temporal consensus state shared between the capture loop
// (writer) and fusion calls (readers).
type Tracker interface {
	Record(est domain.ModalityEstimate)
	Consensus(now time.Time, window time.Duration) *domain.ConsensusResult
	Latest() *domain.ModalityEstimate
	Size() int
}

// VerdictSink consumes fusion results for side effects (persistence,
// indexing, metrics). Sinks are best-effort: a sink failure never fails the
// fusion call that produced the verdict.
type VerdictSink interface {
	Consume(ctx context.Context, result domain.FusionResult) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
