package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/errors"
)

// runChartCmd executes chartgen with the given stdin and args and returns
// stdout, the log output, and the command error.
func runChartCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	cmd := c.ChartCommand()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&logs)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func TestChartCommandKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bar", `{"type":"bar","data":{"labels":["A","B","C"],"values":[10,20,15]},"title":"Sales"}`},
		{"line", `{"type":"line","data":{"labels":["Jan","Feb"],"values":[1200,3400]}}`},
		{"pie", `{"type":"pie","data":{"labels":["X","Y","Z"],"values":[40,35,25]}}`},
		{"area", `{"type":"area","data":{"labels":["Q1","Q2","Q3"],"values":[5,9,7]},"xlabel":"Quarter"}`},
		{"default kind", `{"data":{"labels":["A"],"values":[1]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runChartCmd(t, tt.input)
			if err != nil {
				t.Fatalf("chartgen: %v", err)
			}
			if strings.Count(out, "\n") != 1 || !strings.HasSuffix(out, "\n") {
				t.Fatalf("output should be exactly one line, got %d bytes", len(out))
			}
			img, err := chart.DecodeBase64(out)
			if err != nil {
				t.Fatalf("output is not a base64 PNG: %v", err)
			}
			if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
				t.Errorf("empty image bounds %v", b)
			}
		})
	}
}

func TestChartCommandFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
		code  errors.Code
	}{
		{"malformed json", `{"type":`, nil, errors.ErrCodeInvalidInput},
		{"empty input", ``, nil, errors.ErrCodeInvalidInput},
		{"unsupported kind", `{"type":"scatter","data":{"labels":[],"values":[]}}`, nil, errors.ErrCodeUnsupportedKind},
		{"empty kind", `{"type":"","data":{"labels":["A"],"values":[1]}}`, nil, errors.ErrCodeUnsupportedKind},
		{"length mismatch", `{"type":"bar","data":{"labels":["A","B"],"values":[1]}}`, nil, errors.ErrCodeLengthMismatch},
		{"missing input file", `{}`, []string{"-i", "does-not-exist.json"}, errors.ErrCodeInvalidPath},
		{"missing config file", `{}`, []string{"--config", "does-not-exist.toml"}, errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runChartCmd(t, tt.input, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %q, want %q (%v)", errors.GetCode(err), tt.code, err)
			}
			if out != "" {
				t.Errorf("stdout should be empty on failure, got %d bytes", len(out))
			}
		})
	}
}

func TestChartCommandLenient(t *testing.T) {
	out, _, err := runChartCmd(t, `{"type":"scatter","data":{"labels":["A"],"values":[1]}}`, "--lenient")
	if err != nil {
		t.Fatalf("lenient chartgen: %v", err)
	}
	if _, err := chart.DecodeBase64(out); err != nil {
		t.Errorf("lenient output not decodable: %v", err)
	}
}

func TestChartCommandInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.json")
	req := `{"type":"pie","data":{"labels":["A","B"],"values":[1,3]},"title":"Split"}`
	if err := os.WriteFile(path, []byte(req), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := runChartCmd(t, "ignored", "--input", path)
	if err != nil {
		t.Fatalf("chartgen --input: %v", err)
	}
	if _, err := chart.DecodeBase64(out); err != nil {
		t.Errorf("output not decodable: %v", err)
	}
}

func TestChartCommandConfig(t *testing.T) {
	req := `{"type":"bar","data":{"labels":["A","B"],"values":[3,4]}}`

	def, _, err := runChartCmd(t, req)
	if err != nil {
		t.Fatalf("default style: %v", err)
	}

	path := filepath.Join(t.TempDir(), "style.toml")
	if err := os.WriteFile(path, []byte("dpi = 50\nbackground_color = \"#FFFFFF\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	small, _, err := runChartCmd(t, req, "--config", path)
	if err != nil {
		t.Fatalf("custom style: %v", err)
	}

	defImg, err := chart.DecodeBase64(def)
	if err != nil {
		t.Fatal(err)
	}
	smallImg, err := chart.DecodeBase64(small)
	if err != nil {
		t.Fatal(err)
	}
	if smallImg.Bounds().Dx() >= defImg.Bounds().Dx() {
		t.Errorf("dpi 50 width %d should be below default width %d", smallImg.Bounds().Dx(), defImg.Bounds().Dx())
	}
}

func TestChartCommandBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.toml")
	if err := os.WriteFile(path, []byte("colour = \"red\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err := runChartCmd(t, `{}`, "--config", path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("unknown style key: got %v, want INVALID_CONFIG", err)
	}
}

func TestChartCommandRejectsArgs(t *testing.T) {
	if _, _, err := runChartCmd(t, `{}`, "extra"); err == nil {
		t.Error("positional arguments should be rejected")
	}
}
