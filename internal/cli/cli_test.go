package cli

import (
	"bytes"
	stderrors "errors"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/chartkit/pkg/errors"
)

func TestReportError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    []string
		notWant []string
	}{
		{
			name:    "coded with cause",
			err:     errors.Wrap(errors.ErrCodeInvalidInput, stderrors.New("unexpected EOF"), "decode chart request"),
			want:    []string{"decode chart request", "code=INVALID_INPUT", "unexpected EOF"},
			notWant: []string{"INVALID_INPUT: decode chart request"},
		},
		{
			name: "coded without cause",
			err:  errors.New(errors.ErrCodeUnsupportedKind, "unsupported chart kind: %q", "scatter"),
			want: []string{`unsupported chart kind: "scatter"`, "code=UNSUPPORTED_CHART_KIND"},
		},
		{
			name: "plain error",
			err:  stderrors.New(`unknown flag: --nope`),
			want: []string{"unknown flag: --nope"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(&buf, LogInfo).ReportError(tt.err)
			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("diagnostic %q missing %q", out, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("diagnostic %q should not contain %q", out, w)
				}
			}
		})
	}
}

func TestOpenInputStdin(t *testing.T) {
	stdin := strings.NewReader(`{"type":"bar"}`)
	for _, path := range []string{"", stdinPath} {
		r, closeIn, err := openInput(stdin, path)
		if err != nil {
			t.Fatalf("openInput(%q): %v", path, err)
		}
		if r != io.Reader(stdin) {
			t.Errorf("openInput(%q) should return stdin", path)
		}
		if err := closeIn(); err != nil {
			t.Errorf("closing stdin: %v", err)
		}
	}
}
