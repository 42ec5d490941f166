package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/chartkit/pkg/errors"
)

func runToneCmd(t *testing.T, args ...string) ([]byte, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	cmd := c.ToneCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&logs)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.Bytes(), logs.String(), err
}

func TestToneCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beep.wav")

	out, logs, err := runToneCmd(t, "-o", path, "-d", "100ms", "-f", "880", "-r", "8000")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, logs, "Wrote "+path)
	assert.Contains(t, logs, "sample_rate=8000")
	assert.Contains(t, logs, "frequency=880")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, 8000, buf.Format.SampleRate)
	assert.Equal(t, 1, buf.Format.NumChannels)
	assert.Len(t, buf.Data, 800)
}

func TestToneCommandStdout(t *testing.T) {
	out, _, err := runToneCmd(t, "-o", "-", "-d", "10ms")
	require.NoError(t, err)
	require.Greater(t, len(out), 44)
	assert.Equal(t, "RIFF", string(out[:4]))
	assert.Equal(t, "WAVE", string(out[8:12]))
	// 441 samples at 16 bits after a 44-byte header.
	assert.Len(t, out, 44+2*441)
}

func TestToneCommandDefaultOutput(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, _, err = runToneCmd(t, "-d", "10ms")
	require.NoError(t, err)

	info, err := os.Stat(defaultToneOutput)
	require.NoError(t, err)
	assert.Equal(t, int64(44+2*441), info.Size())
}

func TestToneCommandInvalid(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"zero frequency", []string{"-f", "0"}, errors.ErrCodeInvalidTone},
		{"above nyquist", []string{"-f", "30000"}, errors.ErrCodeInvalidTone},
		{"negative duration", []string{"--duration=-1s"}, errors.ErrCodeInvalidTone},
		{"zero sample rate", []string{"-r", "0"}, errors.ErrCodeInvalidTone},
		{"hundred hours", []string{"-d", "100h"}, errors.ErrCodeInvalidTone},
		{"loud amplitude", []string{"-a", "1.5"}, errors.ErrCodeInvalidTone},
		{"directory output", []string{"-o", dir + "/"}, errors.ErrCodeInvalidPath},
		{"missing parent", []string{"-o", filepath.Join(dir, "missing", "x.wav"), "-d", "10ms"}, errors.ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := tt.args
			if !containsFlag(args, "-o") {
				args = append(args, "-o", filepath.Join(dir, "out.wav"))
			}
			_, _, err := runToneCmd(t, args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.code), "got %v, want code %s", err, tt.code)
		})
	}
}

func containsFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}
