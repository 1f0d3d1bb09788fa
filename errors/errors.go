package errors

import "fmt"

var (
	ErrWorkerPanic     = fmt.Errorf("worker panic")
	ErrInvalidConfig   = fmt.Errorf("invalid fusion configuration")
	ErrCaptureClosed   = fmt.Errorf("capture source closed")
	ErrNoFrame         = fmt.Errorf("no frame available")
	ErrEmptyDictionary = fmt.Errorf("no emotion keywords have been found")
)
