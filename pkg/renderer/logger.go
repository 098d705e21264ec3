package renderer

import (
	"io"

	"github.com/labstack/gommon/log"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// NewDefaultLogger creates a leveled logger writing to w. Progress messages are
// logged at debug level and only shown when verbose is set.
func NewDefaultLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.New("raytracer")
	logger.SetHeader("${time_rfc3339} ${level}")
	// SetOutput disables color when w is not a terminal
	logger.SetOutput(w)
	if verbose {
		logger.SetLevel(log.DEBUG)
	} else {
		logger.SetLevel(log.INFO)
	}
	return logger
}

var _ core.Logger = (*log.Logger)(nil)
