// Package chart renders labeled numeric series to PNG images.
//
// A [Request] names a chart kind (bar, line, pie or area), a [Series] of
// labels and values, and optional title and axis labels. A [Renderer] turns a
// request into a PNG and, through [Renderer.Render], into the base64 text
// payload the chartgen command prints.
//
// # Kinds
//
//   - bar: one bar per value, colored from the qualitative palette and
//     annotated with its thousands-separated integer value
//   - line: a polyline with circular markers, each point annotated
//   - pie: one wedge per value with its label and one-decimal percentage
//   - area: a translucent region under a marked polyline
//
// Kinds are a closed set. An unknown kind fails with an
// UNSUPPORTED_CHART_KIND error unless the renderer was built with
// [WithLenient], in which case the empty styled canvas is rendered instead.
//
// # Rendering Context
//
// Each call builds its own canvas (drawing context, font faces and buffers)
// and discards it when the call returns. Renderers hold only immutable
// configuration and are safe for concurrent use.
//
// # Styling
//
// [DefaultStyle] matches a "darkgrid" look: a 12x6 inch canvas at 150 DPI,
// a #EAEAF2 plot background with white grid lines and no spines, and the
// Set3 qualitative palette. Styles can be loaded from TOML with [LoadStyle].
package chart
