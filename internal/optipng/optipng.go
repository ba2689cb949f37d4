// Package optipng runs the optipng lossless PNG optimizer and remembers,
// process-wide, whether it turned out to be unavailable.
package optipng

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync/atomic"

	"github.com/h2non/filetype"
	"github.com/kballard/go-shellquote"
	"github.com/mattn/go-shellwords"

	"github.com/eriplots/eriplots/internal/logger"
)

// EnvCommand overrides the optimizer command line. It is split like a
// shell would split it; the file name is appended as the last argument.
const EnvCommand = "ERIPLOTS_OPTIPNG"

// DefaultCommand is used when EnvCommand is unset or blank.
const DefaultCommand = "optipng"

var (
	// ErrNotFound is returned when the optimizer executable cannot be
	// found.
	ErrNotFound = errors.New("optipng: command not found")

	// ErrNotPNG is returned for files that are not PNG images.
	ErrNotPNG = errors.New("optipng: not a PNG file")
)

// ExitError reports a non-zero exit status of the optimizer.
type ExitError struct {
	Command string
	Code    int
	Stderr  string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("optipng: %s exited with status %d", e.Command, e.Code)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Availability states.
const (
	unknown int32 = iota
	available
	unavailable
)

var state atomic.Int32

// Unavailable reports whether the optimizer has been marked unavailable.
func Unavailable() bool {
	return state.Load() == unavailable
}

// Available reports whether the optimizer has run successfully before.
func Available() bool {
	return state.Load() == available
}

// MarkUnavailable records that the optimizer cannot be used.
func MarkUnavailable() {
	state.Store(unavailable)
}

// Reset forgets what is known about the optimizer.
func Reset() {
	state.Store(unknown)
}

// Command returns the optimizer command line without the file argument.
func Command() ([]string, error) {
	line := os.Getenv(EnvCommand)
	if strings.TrimSpace(line) == "" {
		return []string{DefaultCommand}, nil
	}
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("optipng: parse %s: %w", EnvCommand, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("optipng: %s=%q has no command", EnvCommand, line)
	}
	return args, nil
}

// Run optimizes the PNG file at path in place. Standard output is
// discarded; standard error is reported in the returned *ExitError.
func Run(ctx context.Context, path string) error {
	kind, err := filetype.MatchFile(path)
	if err != nil {
		return fmt.Errorf("optipng: %w", err)
	}
	if kind.Extension != "png" {
		return fmt.Errorf("%w: %s", ErrNotPNG, path)
	}

	argv, err := Command()
	if err != nil {
		return err
	}
	bin, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, argv[0])
	}

	args := append(argv[1:len(argv):len(argv)], path)
	line := shellquote.Join(append([]string{argv[0]}, args...)...)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	logger.Get().Debug("optipng: running", "cmd", line)
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return &ExitError{
				Command: line,
				Code:    ee.ExitCode(),
				Stderr:  strings.TrimSpace(stderr.String()),
			}
		}
		return fmt.Errorf("optipng: %s: %w", line, err)
	}
	state.Store(available)
	return nil
}
