package core

import "time"

// TimeScope starts timing a named phase and returns a function that logs the
// elapsed time when called. Typical use is defer TimeScope(logger, "name")().
func TimeScope(logger Logger, name string) func() {
	start := time.Now()
	return func() {
		logger.Infof("[%s]: %v elapsed time", name, time.Since(start))
	}
}
