package chart

import (
	"bytes"
	"encoding/json"
	"io"
	"math"

	"github.com/matzehuels/chartkit/pkg/errors"
)

// Request is a chart description as read from the chartgen input.
//
//	{
//	  "type": "bar",
//	  "data": {"labels": ["Jan", "Feb"], "values": [1200, 950]},
//	  "title": "Sales",
//	  "xlabel": "Month",
//	  "ylabel": "Units"
//	}
//
// Every field is optional. A missing type means bar; missing data means an
// empty series. A type that is present but empty or null names no kind.
type Request struct {
	Type   string `json:"type"`
	Data   Series `json:"data"`
	Title  string `json:"title"`
	XLabel string `json:"xlabel"`
	YLabel string `json:"ylabel"`

	typeSet bool // "type" key was present in the decoded JSON
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Request) UnmarshalJSON(data []byte) error {
	type plain Request
	aux := struct {
		*plain
		Type json.RawMessage `json:"type"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.Type, r.typeSet = "", aux.Type != nil
	if !r.typeSet || bytes.Equal(aux.Type, []byte("null")) {
		return nil
	}
	return json.Unmarshal(aux.Type, &r.Type)
}

// Series is the paired label/value data of a chart.
type Series struct {
	Labels Labels    `json:"labels"`
	Values []float64 `json:"values"`
}

// Len returns the number of values.
func (s Series) Len() int { return len(s.Values) }

// Labels is an ordered list of category names. JSON numbers and booleans are
// accepted and kept in their literal form, so {"labels": [2023, 2024]} yields
// "2023" and "2024".
type Labels []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *Labels) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*l = nil
		return nil
	}
	out := make(Labels, len(raw))
	for i, r := range raw {
		r = bytes.TrimSpace(r)
		switch {
		case len(r) > 0 && r[0] == '"':
			if err := json.Unmarshal(r, &out[i]); err != nil {
				return err
			}
		case bytes.Equal(r, []byte("null")):
			out[i] = ""
		default:
			var v any
			if err := json.Unmarshal(r, &v); err != nil {
				return err
			}
			switch v.(type) {
			case float64, bool:
				out[i] = string(r)
			default:
				return errors.New(errors.ErrCodeInvalidInput, "label %d must be a string, number or boolean", i)
			}
		}
	}
	*l = out
	return nil
}

// KindName returns the requested kind name. Only an unset type defaults to
// bar; an explicit empty type is returned as is.
func (r Request) KindName() string {
	if r.Type == "" && !r.typeSet {
		return DefaultKind.String()
	}
	return r.Type
}

// ReadRequest reads a complete JSON request from rd.
func ReadRequest(rd io.Reader) (Request, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return Request{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read chart request")
	}
	return ParseRequest(data)
}

// ParseRequest decodes a JSON request. The payload must be exactly one JSON
// object; trailing data is rejected.
func ParseRequest(data []byte) (Request, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] != '{' {
		return Request{}, errors.New(errors.ErrCodeInvalidInput, "decode chart request: input must be a JSON object")
	}
	var req Request
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&req); err != nil {
		return Request{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode chart request")
	}
	if _, err := dec.Token(); err != io.EOF {
		return Request{}, errors.New(errors.ErrCodeInvalidInput, "decode chart request: unexpected data after JSON object")
	}
	return req, nil
}

// validate checks the series against the constraints of kind k.
func (s Series) validate(k Kind) error {
	if len(s.Labels) != len(s.Values) {
		return errors.New(errors.ErrCodeLengthMismatch,
			"%s chart needs one label per value: got %d labels and %d values", k, len(s.Labels), len(s.Values))
	}
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New(errors.ErrCodeInvalidInput, "value %d is not a finite number", i)
		}
	}
	if spec := specFor(k); spec.cartesian {
		if !valueRange(s.Values, spec.zeroBased).plottable() {
			return errors.New(errors.ErrCodeInvalidInput, "values span too wide to plot")
		}
	}
	if k != Pie || len(s.Values) == 0 {
		return nil
	}
	var sum float64
	for i, v := range s.Values {
		if v < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "pie value %d is negative: %g", i, v)
		}
		sum += v
	}
	if sum == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "pie values sum to zero")
	}
	if math.IsInf(sum, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "pie values sum overflows")
	}
	return nil
}
