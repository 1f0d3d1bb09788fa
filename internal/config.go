package internal

import (
	"time"
)

// TextEstimatorKind selects the text classifier implementation at boot.
const (
	TextEstimatorKeyword = "keyword"
	TextEstimatorNeutral = "neutral"
)

type Config struct {
	FaceWeight            float64       `env:"FACE_WEIGHT,required=true" validate:"gte=0,lte=1"`
	TextWeight            float64       `env:"TEXT_WEIGHT,required=true" validate:"gte=0,lte=1"`
	AudioWeight           float64       `env:"AUDIO_WEIGHT,required=true" validate:"gte=0,lte=1"`
	ConsistencyThreshold  float64       `env:"CONSISTENCY_THRESHOLD,required=true" validate:"gte=0,lte=1"`
	AuthenticityThreshold float64       `env:"AUTHENTICITY_THRESHOLD,required=true" validate:"gte=0,lte=1"`

	WindowSeconds   int           `env:"WINDOW_SECONDS,required=true" validate:"gt=0"`
	MaxHistory      int           `env:"MAX_HISTORY,required=true" validate:"gt=0"`
	CaptureInterval time.Duration `env:"CAPTURE_INTERVAL,required=true"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,required=true"`
	EnableCapture   bool          `env:"ENABLE_CAPTURE,required=true"`
	TextEstimator   string        `env:"TEXT_ESTIMATOR,required=true" validate:"oneof=keyword neutral"`

	RestartInterval time.Duration `env:"RESTART_INTERVAL,required=true"`

	MaxBatchedVerdicts int           `env:"MAX_BATCHED_VERDICTS,required=true" validate:"gt=0"`
	SinkTimeout        time.Duration `env:"SINK_TIMEOUT,required=true"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT,required=true"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,required=true"`
	Host           string `env:"HOST,required=true"`
	DebugPort      int    `env:"DEBUG_PORT,required=true"`
}

// Window converts the configured consensus window to a duration.
func (c Config) Window() time.Duration {
	return time.Duration(c.WindowSeconds) * time.Second
}
