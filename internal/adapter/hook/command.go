// Package hook runs an external command after a job's items are uploaded,
// for example to warm a CDN or a tag cache for the new namespace.
package hook

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/bnema/mixtaped/internal/infrastructure/logger"
	"github.com/bnema/mixtaped/internal/port"
)

const DefaultTimeout = 5 * time.Minute

// Command runs argv with the namespace location appended as the last argument.
type Command struct {
	argv    []string
	timeout time.Duration
}

// New parses a whitespace-separated command line. It returns nil for an empty
// line so callers can leave the hook unset.
func New(commandLine string, timeout time.Duration) *Command {
	argv := strings.Fields(commandLine)
	if len(argv) == 0 {
		return nil
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Command{argv: argv, timeout: timeout}
}

func (c *Command) Run(ctx context.Context, location string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	args := append(append([]string{}, c.argv[1:]...), location)
	cmd := exec.CommandContext(ctx, c.argv[0], args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("hook %s: %w: %s", c.argv[0], err, logger.SanitizePayload(out.Bytes(), 256))
	}
	logger.Debug.Printf("hook %s finished for %s", c.argv[0], logger.SanitizeForLog(location))
	return nil
}

var _ port.PostUploadHook = (*Command)(nil)
