// Package pkg provides the core libraries for chartkit.
//
// # Overview
//
// chartkit turns small JSON chart descriptions into PNG images and
// synthesizes test tones as WAV files. Both utilities are stateless: every
// call builds its own canvas or sample buffer and discards it afterwards.
// The pkg directory is organized into:
//
//  1. [chart] - Request decoding, per-kind drawing (bar, line, pie, area), PNG
//     and base64 encoding
//  2. [tone] - Sine synthesis and WAV encoding
//  3. [fonts] - Embedded Go fonts shared by every render
//  4. [errors] - Coded errors and input validation
//  5. [observability] - Render and tone event hooks
//  6. [buildinfo] - Version information injected at build time
//
// # Architecture
//
// The chart data flow:
//
//	JSON request
//	     ↓
//	[chart.ReadRequest] (decode + defaults)
//	     ↓
//	[chart.Renderer] (kind dispatch, canvas, tight crop)
//	     ↓
//	PNG → base64 line on stdout
//
// # Quick Start
//
// Render a bar chart:
//
//	req, _ := chart.ParseRequest([]byte(`{"type":"bar","data":{"labels":["A","B"],"values":[3,5]}}`))
//	b64, err := chart.Render(ctx, req)
//
// Render with a custom style:
//
//	style, _ := chart.LoadStyle("style.toml")
//	r, _ := chart.NewRenderer(chart.WithStyle(style))
//	png, err := r.RenderPNG(ctx, req)
//
// Write a tone:
//
//	buf, _ := tone.Generate(ctx, tone.DefaultParams())
//	data, err := tone.EncodeWAV(ctx, buf)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...        # All tests
//	go test ./pkg/chart/...  # Specific package
//	go test -run Example     # Examples only
//
// [chart]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chart
// [tone]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/tone
// [fonts]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/fonts
// [errors]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/buildinfo
package pkg
