package renderer

import "time"

// RenderStats contains statistics about a finished render
type RenderStats struct {
	Width          int           // Image width in pixels
	Height         int           // Image height in pixels
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of camera rays traced
	AverageSamples float64       // Average samples per pixel
	MaxDepth       int           // Bounce budget of each camera ray
	Duration       time.Duration // Wall time spent in Render
}

// SamplesPerSecond returns the camera ray throughput of the render
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}
