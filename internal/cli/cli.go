package cli

import (
	stderrors "errors"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// defaultToneOutput is where tonegen writes when -o is not given.
	defaultToneOutput = "test_alarm.wav"

	// stdinPath selects standard input for --input.
	stdinPath = "-"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RegisterHooks routes render and tone events to the CLI logger at debug
// level. Call it once before executing a command.
func (c *CLI) RegisterHooks() {
	h := &logHooks{logger: c.Logger}
	observability.SetRenderHooks(h)
	observability.SetToneHooks(h)
}

// ReportError logs a failed command as the stderr diagnostic. Coded errors
// are reported by message with their code and cause as fields.
func (c *CLI) ReportError(err error) {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		c.Logger.Error(err)
		return
	}
	keyvals := []any{"code", e.Code}
	if e.Cause != nil {
		keyvals = append(keyvals, "cause", e.Cause)
	}
	c.Logger.Error(errors.UserMessage(err), keyvals...)
}

// =============================================================================
// I/O Helpers
// =============================================================================

// openInput returns stdin for "-" or an empty path, else the named file.
// The returned close function is always non-nil.
func openInput(stdin io.Reader, path string) (io.Reader, func() error, error) {
	if path == "" || path == stdinPath {
		return stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open input %s", path)
	}
	return f, f.Close, nil
}
