package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartkit/pkg/buildinfo"
	"github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/tone"
)

// toneOpts holds the command-line flags for tonegen.
type toneOpts struct {
	output string // WAV path, "-" for stdout
	params tone.Params
}

// ToneCommand creates the tonegen root command.
//
// Default settings:
//   - frequency: 440 Hz
//   - duration: 5s
//   - sample rate: 44100 Hz
//   - amplitude: 1.0 (full scale)
//   - output: test_alarm.wav
func (c *CLI) ToneCommand() *cobra.Command {
	opts := toneOpts{
		output: defaultToneOutput,
		params: tone.DefaultParams(),
	}

	cmd := &cobra.Command{
		Use:          "tonegen",
		Short:        "Write a sine tone as a 16-bit mono WAV file",
		Args:         cobra.NoArgs,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return runTone(ctx, cmd.OutOrStdout(), opts)
		},
	}

	cmd.SetVersionTemplate(buildinfo.Template())
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file (- for stdout)")
	cmd.Flags().Float64VarP(&opts.params.Frequency, "frequency", "f", opts.params.Frequency, "tone frequency in Hz")
	cmd.Flags().DurationVarP(&opts.params.Duration, "duration", "d", opts.params.Duration, "tone length")
	cmd.Flags().IntVarP(&opts.params.SampleRate, "sample-rate", "r", opts.params.SampleRate, "samples per second")
	cmd.Flags().Float64VarP(&opts.params.Amplitude, "amplitude", "a", opts.params.Amplitude, "peak level in (0, 1]")

	return cmd
}

func runTone(ctx context.Context, stdout io.Writer, opts toneOpts) error {
	logger := loggerFromContext(ctx)

	if err := errors.ValidateOutputPath(opts.output); err != nil {
		return err
	}

	p := opts.params
	prog := newProgress(logger)
	buf, err := tone.Generate(ctx, p)
	if err != nil {
		return err
	}

	if opts.output == errors.StdoutPath {
		data, err := tone.EncodeWAV(ctx, buf)
		if err != nil {
			return err
		}
		if _, err := stdout.Write(data); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write output")
		}
	} else if err := writeToneFile(ctx, opts.output, buf); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Wrote %s", displayPath(opts.output)),
		"duration", p.Duration,
		"frequency", p.Frequency,
		"sample_rate", p.SampleRate,
	)
	return nil
}

// writeToneFile writes buf to path, removing the file if encoding fails.
func writeToneFile(ctx context.Context, path string, buf *audio.IntBuffer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeInternal, cerr, "close %s", path)
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return tone.WriteWAV(ctx, f, buf)
}

func displayPath(path string) string {
	if path == errors.StdoutPath {
		return "stdout"
	}
	return path
}
