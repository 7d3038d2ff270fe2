package kv

import (
	"context"
	"log/slog"

	"nathanbeddoewebdev/taoquotes/internal/retry"
)

// RetryingStore retries transient backend failures with backoff.
type RetryingStore struct {
	next   Store
	config retry.Config
	logger *slog.Logger
}

// Retrying wraps next so that Get and Set are retried on transient errors.
func Retrying(next Store, config retry.Config, logger *slog.Logger) *RetryingStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &RetryingStore{next: next, config: config, logger: logger}
}

func (r *RetryingStore) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	err = retry.Do(ctx, r.config, retry.IsTransient, func(attempt int) error {
		if attempt > 1 {
			r.logger.Debug("retrying kv get", "key", key, "attempt", attempt)
		}
		var getErr error
		value, ok, getErr = r.next.Get(ctx, key)
		return getErr
	})
	return value, ok, err
}

func (r *RetryingStore) Set(ctx context.Context, key, value string) error {
	return retry.Do(ctx, r.config, retry.IsTransient, func(attempt int) error {
		if attempt > 1 {
			r.logger.Debug("retrying kv set", "key", key, "attempt", attempt)
		}
		return r.next.Set(ctx, key, value)
	})
}

func (r *RetryingStore) Close() error {
	return r.next.Close()
}
