package renderer

import (
	"bytes"
	"strings"
	"testing"
)

func TestDefaultLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"Quiet", false, false},
		{"Verbose", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewDefaultLogger(&buf, tt.verbose)

			logger.Debugf("Scanlines remaining: %d", 3)
			logger.Infof("Image rendering complete")

			out := buf.String()
			if got := strings.Contains(out, "Scanlines remaining: 3"); got != tt.wantDebug {
				t.Errorf("Expected debug output %v, got %q", tt.wantDebug, out)
			}
			if !strings.Contains(out, "Image rendering complete") {
				t.Errorf("Expected info output, got %q", out)
			}
			if !strings.Contains(out, "INFO") {
				t.Errorf("Expected level in header, got %q", out)
			}
		})
	}
}
