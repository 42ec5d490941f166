// Package tone synthesizes fixed-frequency sine tones as 16-bit mono PCM and
// encodes them as WAV.
package tone

import (
	"context"
	"io"
	"math"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/orcaman/writerseeker"

	"github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/observability"
)

const (
	bitDepth    = 16
	numChannels = 1
	pcmFormat   = 1 // WAVE_FORMAT_PCM
	fullScale   = 32767
)

// Params describes a tone.
type Params struct {
	Frequency  float64       // Hz
	Duration   time.Duration // length of the tone
	SampleRate int           // samples per second
	Amplitude  float64       // peak level in (0, 1]
}

// DefaultParams returns a five second A4 (440 Hz) at 44.1 kHz, full scale.
func DefaultParams() Params {
	return Params{
		Frequency:  440,
		Duration:   5 * time.Second,
		SampleRate: 44100,
		Amplitude:  1,
	}
}

// Validate checks that p describes a representable tone.
func (p Params) Validate() error {
	if err := errors.ValidateSampleRate(p.SampleRate); err != nil {
		return err
	}
	if err := errors.ValidateFrequency(p.Frequency, p.SampleRate); err != nil {
		return err
	}
	if err := errors.ValidateDuration(p.Duration); err != nil {
		return err
	}
	if err := errors.ValidateSampleCount(p.SampleRate, p.Duration); err != nil {
		return err
	}
	return errors.ValidateAmplitude(p.Amplitude)
}

// Samples returns the number of frames the tone spans, rounded down. It is
// exact for any params that pass Validate.
func (p Params) Samples() int {
	rate := int64(p.SampleRate)
	whole, frac := p.Duration/time.Second, p.Duration%time.Second
	return int(rate*int64(whole) + rate*int64(frac)/int64(time.Second))
}

// Generate synthesizes the tone. Sample i is
// trunc(Amplitude * sin(2π·f·i/SampleRate) * 32767).
func Generate(ctx context.Context, p Params) (*audio.IntBuffer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := p.Samples()
	data := make([]int, n)
	step := 2 * math.Pi * p.Frequency / float64(p.SampleRate)
	for i := range data {
		data[i] = int(p.Amplitude * math.Sin(step*float64(i)) * fullScale)
	}
	observability.Tone().OnToneGenerated(ctx, p.Frequency, n, p.Duration)
	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChannels, SampleRate: p.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}, nil
}

// WriteWAV encodes buf as a 16-bit PCM WAV stream to w. The WAV header is
// patched after the samples are written, so w must be seekable.
func WriteWAV(ctx context.Context, w io.WriteSeeker, buf *audio.IntBuffer) (err error) {
	size := 0
	defer func() { observability.Tone().OnToneWritten(ctx, size, err) }()

	if buf == nil || buf.Format == nil {
		return errors.New(errors.ErrCodeInvalidTone, "buffer has no format")
	}
	enc := wav.NewEncoder(w, buf.Format.SampleRate, bitDepth, buf.Format.NumChannels, pcmFormat)
	if err := enc.Write(buf); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write samples")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "finalize wav header")
	}
	end, err := w.Seek(0, io.SeekEnd)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "measure wav")
	}
	size = int(end)
	return nil
}

// EncodeWAV encodes buf into an in-memory WAV file.
func EncodeWAV(ctx context.Context, buf *audio.IntBuffer) ([]byte, error) {
	ws := &writerseeker.WriterSeeker{}
	if err := WriteWAV(ctx, ws, buf); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(ws.Reader())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read encoded wav")
	}
	return data, nil
}
