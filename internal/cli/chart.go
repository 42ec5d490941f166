package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartkit/pkg/buildinfo"
	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/errors"
)

// chartOpts holds the command-line flags for chartgen.
type chartOpts struct {
	input   string // request file, "-" for stdin
	config  string // optional TOML style file
	lenient bool   // render unknown kinds as an empty canvas
}

// ChartCommand creates the chartgen root command.
//
// With no flags it reads one JSON request from stdin and writes exactly one
// line of base64 PNG to stdout. Nothing is written to stdout on failure.
func (c *CLI) ChartCommand() *cobra.Command {
	opts := chartOpts{input: stdinPath}

	cmd := &cobra.Command{
		Use:   "chartgen",
		Short: "Render a JSON chart request as a base64 PNG",
		Long: `chartgen reads a chart request from standard input and prints the rendered
chart as a single line of base64-encoded PNG.

Request format:
  {"type": "bar|line|pie|area",
   "data": {"labels": [...], "values": [...]},
   "title": "...", "xlabel": "...", "ylabel": "..."}`,
		Args:         cobra.NoArgs,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return runChart(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.SetVersionTemplate(buildinfo.Template())
	cmd.Flags().StringVarP(&opts.input, "input", "i", opts.input, "request file (- for stdin)")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML style file")
	cmd.Flags().BoolVar(&opts.lenient, "lenient", false, "render unknown chart kinds as an empty canvas")

	return cmd
}

func runChart(ctx context.Context, stdin io.Reader, stdout io.Writer, opts chartOpts) error {
	logger := loggerFromContext(ctx)

	renderer, err := newChartRenderer(opts)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(stdin, opts.input)
	if err != nil {
		return err
	}
	defer closeIn()

	req, err := chart.ReadRequest(in)
	if err != nil {
		return err
	}
	logger.Debug("Request decoded", "kind", req.KindName(), "points", req.Data.Len(), "title", req.Title)

	out, err := renderer.Render(ctx, req)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(stdout, out); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write output")
	}
	return nil
}

func newChartRenderer(opts chartOpts) (*chart.Renderer, error) {
	var ropts []chart.Option
	if opts.config != "" {
		style, err := chart.LoadStyle(opts.config)
		if err != nil {
			return nil, err
		}
		ropts = append(ropts, chart.WithStyle(style))
	}
	if opts.lenient {
		ropts = append(ropts, chart.WithLenient())
	}
	return chart.NewRenderer(ropts...)
}
