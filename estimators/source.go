package estimators

import (
	"context"
	"math"
	"sync"
	"time"

	"emotion-lab/contract"
	"emotion-lab/errors"
)

const (
	syntheticWidth  = 48
	syntheticHeight = 48
)

// SyntheticCaptureSource generates grayscale frames with a slowly drifting
// brightness profile. It stands in for a camera wherever no real capture
// device is wired, which keeps the capture worker and the luminance
// estimator exercised end to end.
type SyntheticCaptureSource struct {
	mu     sync.Mutex
	tick   int
	closed bool
}

func NewSyntheticCaptureSource() *SyntheticCaptureSource {
	return &SyntheticCaptureSource{}
}

func (s *SyntheticCaptureSource) Capture(ctx context.Context) (contract.Frame, error) {
	if err := ctx.Err(); err != nil {
		return contract.Frame{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return contract.Frame{}, errors.ErrCaptureClosed
	}
	s.tick++

	// Brightness oscillates through the estimator's decision bands so a
	// long-running session produces a varied emotion trace.
	base := 100 + 60*math.Sin(float64(s.tick)/7)
	pixels := make([]byte, syntheticWidth*syntheticHeight)
	for y := 0; y < syntheticHeight; y++ {
		for x := 0; x < syntheticWidth; x++ {
			v := base + 25*math.Sin(float64(x)/5) + 25*math.Cos(float64(y)/5)
			pixels[y*syntheticWidth+x] = byte(clampIntensity(v))
		}
	}
	return contract.Frame{
		Pixels: pixels,
		Width:  syntheticWidth,
		Height: syntheticHeight,
		At:     time.Now().UTC(),
	}, nil
}

func (s *SyntheticCaptureSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func clampIntensity(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
