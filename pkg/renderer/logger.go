package renderer

import (
	"fmt"
	"os"

	"github.com/softray/go-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stderr, keeping
// progress output off the image stream on stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// SilentLogger discards all output. Used in tests.
type SilentLogger struct{}

func (sl *SilentLogger) Printf(format string, args ...interface{}) {}

// NewSilentLogger creates a logger that discards everything
func NewSilentLogger() core.Logger {
	return &SilentLogger{}
}
