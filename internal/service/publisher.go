package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/bnema/mixtaped/internal/domain"
	"github.com/bnema/mixtaped/internal/infrastructure/logger"
	"github.com/bnema/mixtaped/internal/port"
)

const (
	DefaultPublishAttempts   = 20
	DefaultPublishMinBackoff = 500 * time.Millisecond
	DefaultPublishMaxBackoff = 30 * time.Second
)

// RetryPolicy bounds how hard the publisher tries. MaxAttempts of 0 retries
// until the context is done.
type RetryPolicy struct {
	MaxAttempts uint64
	MinBackoff  time.Duration
	MaxBackoff  time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: DefaultPublishAttempts,
		MinBackoff:  DefaultPublishMinBackoff,
		MaxBackoff:  DefaultPublishMaxBackoff,
	}
}

func (p RetryPolicy) backoff() retry.Backoff {
	minBackoff := p.MinBackoff
	if minBackoff <= 0 {
		minBackoff = DefaultPublishMinBackoff
	}
	b := retry.NewExponential(minBackoff)
	b = retry.WithJitterPercent(10, b)
	if p.MaxBackoff > 0 {
		b = retry.WithCappedDuration(p.MaxBackoff, b)
	}
	if p.MaxAttempts > 0 {
		b = retry.WithMaxRetries(p.MaxAttempts-1, b)
	}
	return b
}

// StatusPublisher writes job outcomes back to the metadata store.
type StatusPublisher struct {
	store  port.MetadataStore
	policy RetryPolicy
}

func NewStatusPublisher(store port.MetadataStore, policy RetryPolicy) *StatusPublisher {
	return &StatusPublisher{store: store, policy: policy}
}

// Publish marks the job published at url. Transient store errors are retried
// per the policy; a missing record is not.
func (p *StatusPublisher) Publish(ctx context.Context, jobID int64, url string) error {
	err := p.do(ctx, jobID, "publish", func(ctx context.Context) error {
		return p.store.MarkPublished(ctx, jobID, url)
	})
	if err != nil {
		return err
	}
	logger.Info.Printf("job %d published at %s", jobID, url)
	return nil
}

// MarkFailed records a fatal pipeline error under the same retry policy.
// Callers treat its error as best effort.
func (p *StatusPublisher) MarkFailed(ctx context.Context, jobID int64, reason string) error {
	return p.do(ctx, jobID, "mark failed", func(ctx context.Context) error {
		return p.store.MarkFailed(ctx, jobID, reason)
	})
}

func (p *StatusPublisher) do(ctx context.Context, jobID int64, op string, fn func(context.Context) error) error {
	attempt := 0
	err := retry.Do(ctx, p.policy.backoff(), func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil || errors.Is(err, domain.ErrNotFound) {
			return err
		}
		logger.Warn.Printf("%s job %d attempt %d: %v", op, jobID, attempt, err)
		return retry.RetryableError(err)
	})
	if err != nil {
		return fmt.Errorf("%s job %d after %d attempts: %w", op, jobID, attempt, err)
	}
	return nil
}
