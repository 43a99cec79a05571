// Package counterfile keeps the upload namespace counter as a text integer
// in a file, guarded by an advisory lock between Next and Commit.
package counterfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/bnema/mixtaped/internal/infrastructure/logger"
	"github.com/bnema/mixtaped/internal/port"
)

var (
	ErrCorrupt          = errors.New("counter file does not hold an integer")
	ErrNoReservation    = errors.New("no counter value reserved")
	ErrReservationTaken = errors.New("counter value already reserved")
)

const lockRetryDelay = 100 * time.Millisecond

type Counter struct {
	mu       sync.Mutex
	path     string
	lock     *flock.Flock
	reserved int64
}

func New(path string) *Counter {
	return &Counter{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Ensure writes 0 when the counter file is missing or unreadable as an integer.
func (c *Counter) Ensure(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.acquire(ctx); err != nil {
		return err
	}
	defer func() { _ = c.lock.Unlock() }()

	_, err := c.read()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, os.ErrNotExist), errors.Is(err, ErrCorrupt):
		logger.Warn.Printf("counter file %s missing or invalid, resetting to 0", c.path)
		return c.write(0)
	default:
		return err
	}
}

// Next locks the counter and reserves the value after the stored one. The
// lock is held until Commit.
func (c *Counter) Next(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.reserved != 0 {
		return 0, ErrReservationTaken
	}
	if err := c.acquire(ctx); err != nil {
		return 0, err
	}

	current, err := c.read()
	if errors.Is(err, os.ErrNotExist) {
		current, err = 0, nil
	}
	if err != nil {
		_ = c.lock.Unlock()
		return 0, err
	}

	c.reserved = current + 1
	return c.reserved, nil
}

// Commit persists the reserved value and releases the lock.
func (c *Counter) Commit(_ context.Context, value int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.reserved == 0 {
		return ErrNoReservation
	}
	if value != c.reserved {
		return fmt.Errorf("commit %d: reserved value is %d", value, c.reserved)
	}

	err := c.write(value)
	c.reserved = 0
	if unlockErr := c.lock.Unlock(); unlockErr != nil && err == nil {
		err = fmt.Errorf("release counter lock: %w", unlockErr)
	}
	return err
}

func (c *Counter) acquire(ctx context.Context) error {
	ok, err := c.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("lock counter: %w", err)
	}
	if !ok {
		return fmt.Errorf("lock counter: %s is held", c.lock.Path())
	}
	return nil
}

func (c *Counter) read() (int64, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s", ErrCorrupt, c.path)
	}
	return n, nil
}

func (c *Counter) write(value int64) error {
	tmpPath := c.path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(strconv.FormatInt(value, 10)), 0o644); err != nil {
		return fmt.Errorf("write counter: %w", err)
	}
	if err := os.Rename(tmpPath, c.path); err != nil {
		return fmt.Errorf("replace counter: %w", err)
	}
	return nil
}

var _ port.NamespaceCounter = (*Counter)(nil)
