package chart

import (
	"strings"
	"testing"

	"github.com/matzehuels/chartkit/pkg/errors"
)

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest([]byte(`{
		"type": "line",
		"data": {"labels": ["Q1", "Q2"], "values": [100, 250.5]},
		"title": "Revenue",
		"xlabel": "Quarter",
		"ylabel": "USD"
	}`))
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	if req.KindName() != "line" || req.Title != "Revenue" || req.XLabel != "Quarter" || req.YLabel != "USD" {
		t.Errorf("unexpected request: %+v", req)
	}
	if len(req.Data.Labels) != 2 || req.Data.Labels[1] != "Q2" {
		t.Errorf("Labels = %v", req.Data.Labels)
	}
	if req.Data.Len() != 2 || req.Data.Values[1] != 250.5 {
		t.Errorf("Values = %v", req.Data.Values)
	}
}

func TestParseRequestDefaults(t *testing.T) {
	req, err := ParseRequest([]byte(`{}`))
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	if req.KindName() != "bar" {
		t.Errorf("KindName() = %q, want bar", req.KindName())
	}
	if req.Data.Len() != 0 || len(req.Data.Labels) != 0 {
		t.Errorf("Data = %+v, want empty", req.Data)
	}
	if req.Title != "" || req.XLabel != "" || req.YLabel != "" {
		t.Errorf("text fields should default to empty: %+v", req)
	}
}

func TestParseRequestExplicitEmptyType(t *testing.T) {
	for _, in := range []string{`{"type": ""}`, `{"type": null}`} {
		req, err := ParseRequest([]byte(in))
		if err != nil {
			t.Fatalf("ParseRequest(%s): %v", in, err)
		}
		if got := req.KindName(); got != "" {
			t.Errorf("ParseRequest(%s).KindName() = %q, want empty", in, got)
		}
		if _, err := ParseKind(req.KindName()); !errors.Is(err, errors.ErrCodeUnsupportedKind) {
			t.Errorf("ParseKind for %s = %v, want %v", in, err, errors.ErrCodeUnsupportedKind)
		}
	}

	if _, err := ParseRequest([]byte(`{"type": 3}`)); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("numeric type: got %v, want %v", err, errors.ErrCodeInvalidInput)
	}
}

func TestParseRequestNonStringLabels(t *testing.T) {
	req, err := ParseRequest([]byte(`{"data": {"labels": [2023, "2024", 1.5, true, null], "values": [1, 2, 3, 4, 5]}}`))
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	want := []string{"2023", "2024", "1.5", "true", ""}
	for i, w := range want {
		if req.Data.Labels[i] != w {
			t.Errorf("Labels[%d] = %q, want %q", i, req.Data.Labels[i], w)
		}
	}
}

func TestParseRequestMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not json", "bar chart please"},
		{"truncated", `{"type": "bar"`},
		{"trailing data", `{"type": "bar"} {"type": "pie"}`},
		{"array", `[1, 2, 3]`},
		{"null", `null`},
		{"string values", `{"data": {"labels": ["a"], "values": ["ten"]}}`},
		{"object label", `{"data": {"labels": [{"x": 1}], "values": [1]}}`},
		{"data not object", `{"data": [1, 2]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRequest(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestSeriesValidate(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		series   Series
		wantCode errors.Code
	}{
		{"valid bar", Bar, Series{Labels{"a", "b"}, []float64{1, 2}}, ""},
		{"empty bar", Bar, Series{}, ""},
		{"empty pie", Pie, Series{}, ""},
		{"negative bar", Bar, Series{Labels{"a"}, []float64{-3}}, ""},
		{"more labels", Bar, Series{Labels{"a", "b"}, []float64{1}}, errors.ErrCodeLengthMismatch},
		{"more values", Line, Series{Labels{"a"}, []float64{1, 2}}, errors.ErrCodeLengthMismatch},
		{"area mismatch", Area, Series{Labels{}, []float64{1}}, errors.ErrCodeLengthMismatch},
		{"pie mismatch", Pie, Series{Labels{"a"}, []float64{1, 2}}, errors.ErrCodeLengthMismatch},
		{"pie negative", Pie, Series{Labels{"a", "b"}, []float64{1, -2}}, errors.ErrCodeInvalidInput},
		{"pie zero sum", Pie, Series{Labels{"a", "b"}, []float64{0, 0}}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.series.validate(tt.kind)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("validate() = %v, want code %v", err, tt.wantCode)
			}
		})
	}
}
