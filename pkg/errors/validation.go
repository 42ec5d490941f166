package errors

import (
	"math"
	"strings"
	"time"
	"unicode"
)

// StdoutPath is the output path that selects standard output instead of a file.
const StdoutPath = "-"

// ValidateOutputPath validates a file path an artifact is written to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must name a file, not a directory (no trailing separator)
//
// The special path "-" (standard output) is always accepted.
func ValidateOutputPath(path string) error {
	if path == StdoutPath {
		return nil
	}
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path must name a file: %q", path)
	}
	return nil
}

// ValidateSampleRate checks that a sample rate is a positive number of Hz.
func ValidateSampleRate(rate int) error {
	if rate <= 0 {
		return New(ErrCodeInvalidTone, "sample rate must be positive, got %d", rate)
	}
	return nil
}

// ValidateFrequency checks that freq is positive and below the Nyquist limit
// of the given sample rate.
func ValidateFrequency(freq float64, rate int) error {
	if math.IsNaN(freq) || freq <= 0 {
		return New(ErrCodeInvalidTone, "frequency must be positive, got %g", freq)
	}
	if nyquist := float64(rate) / 2; freq >= nyquist {
		return New(ErrCodeInvalidTone, "frequency %g Hz must be below the Nyquist limit (%g Hz)", freq, nyquist)
	}
	return nil
}

// ValidateDuration checks that d is positive.
func ValidateDuration(d time.Duration) error {
	if d <= 0 {
		return New(ErrCodeInvalidTone, "duration must be positive, got %s", d)
	}
	return nil
}

// MaxSamples bounds the frames of a single tone so the sample buffer and the
// WAV data chunk stay addressable.
const MaxSamples = 1 << 28

// ValidateSampleCount checks that rate samples per second over d yields at
// least one and at most [MaxSamples] frames.
func ValidateSampleCount(rate int, d time.Duration) error {
	n := float64(rate) * d.Seconds()
	if n < 1 {
		return New(ErrCodeInvalidTone, "%s at %d Hz yields no samples", d, rate)
	}
	if n > MaxSamples {
		return New(ErrCodeInvalidTone, "%s at %d Hz exceeds %d samples", d, rate, MaxSamples)
	}
	return nil
}

// ValidateAmplitude checks that a is in the half-open range (0, 1].
func ValidateAmplitude(a float64) error {
	if math.IsNaN(a) || a <= 0 || a > 1 {
		return New(ErrCodeInvalidTone, "amplitude must be in (0, 1], got %g", a)
	}
	return nil
}
