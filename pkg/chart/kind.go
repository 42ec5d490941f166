package chart

import (
	"strings"

	"github.com/matzehuels/chartkit/pkg/errors"
)

// Kind identifies a chart rendering strategy.
type Kind int

// Supported chart kinds. The zero value is not a valid kind.
const (
	Bar Kind = iota + 1
	Line
	Pie
	Area
)

// DefaultKind is used when a request does not name a kind.
const DefaultKind = Bar

var kindNames = map[Kind]string{
	Bar:  "bar",
	Line: "line",
	Pie:  "pie",
	Area: "area",
}

// Kinds returns all supported kinds in a stable order.
func Kinds() []Kind {
	return []Kind{Bar, Line, Pie, Area}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps a kind name to a Kind. Matching is exact after trimming
// surrounding whitespace.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, errors.New(errors.ErrCodeUnsupportedKind,
		"unsupported chart kind: %q (must be 'bar', 'line', 'pie', or 'area')", s)
}

// kindSpec holds the per-kind presentation defaults.
type kindSpec struct {
	xLabel    string  // fallback x-axis label
	yLabel    string  // fallback y-axis label
	gridAlpha float64 // opacity of grid lines
	cartesian bool    // whether the kind draws x/y axes
	zeroBased bool    // whether the value axis always includes zero
}

var kindSpecs = map[Kind]kindSpec{
	Bar:  {xLabel: "Categorias", yLabel: "Valores", gridAlpha: 1, cartesian: true, zeroBased: true},
	Line: {xLabel: "Período", yLabel: "Valores", gridAlpha: 0.3, cartesian: true},
	Area: {xLabel: "Período", yLabel: "Valores", gridAlpha: 0.3, cartesian: true, zeroBased: true},
	Pie:  {},
}

// emptySpec describes the canvas drawn for unknown kinds in lenient mode:
// bare axes, no fallback labels.
var emptySpec = kindSpec{gridAlpha: 1, cartesian: true}

func specFor(k Kind) kindSpec {
	if s, ok := kindSpecs[k]; ok {
		return s
	}
	return emptySpec
}

// AxisLabels returns the effective x and y axis labels for k, substituting
// the kind's defaults for empty values. Kinds without axes return empty
// labels.
func (k Kind) AxisLabels(xlabel, ylabel string) (string, string) {
	spec := specFor(k)
	if !spec.cartesian {
		return "", ""
	}
	if xlabel == "" {
		xlabel = spec.xLabel
	}
	if ylabel == "" {
		ylabel = spec.yLabel
	}
	return xlabel, ylabel
}
