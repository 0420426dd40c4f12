package runner

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/scriptwatch/exporter.git/internal/customerrors"
)

// Runner executes the configured shell command and captures its output.
type Runner struct {
	command string
	timeout time.Duration
	logger  *zerolog.Logger
}

// New returns a Runner for the given shell command. A timeout of zero
// leaves the execution time unbounded.
func New(command string, timeout time.Duration, logger *zerolog.Logger) *Runner {
	return &Runner{
		command: command,
		timeout: timeout,
		logger:  logger,
	}
}

// Run executes the command through /bin/sh, inheriting the environment, and
// returns its standard output with surrounding whitespace trimmed. A non-zero
// exit, a spawn failure, or hitting the timeout yields a
// *customerrors.ExecError.
func (r *Runner) Run(ctx context.Context) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	r.logger.Debug().Str("command", r.command).Msg("executing script")

	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", r.command)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &customerrors.ExecError{
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(string(exitErr.Stderr)),
			}
		}
		return "", &customerrors.ExecError{
			ExitCode: -1,
			Stderr:   err.Error(),
		}
	}

	return strings.TrimSpace(string(out)), nil
}
