package jobcontext

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

type contextKey int

const (
	keyJobID contextKey = iota
	keyJobType
	keyStartTime
	keyAttempts
)

const (
	// jobTimeout caps one background job, including all retries. A stuck
	// provider call must not hang the submission path forever.
	jobTimeout = 10 * time.Minute

	maxRetries = 3
)

// JobMetadata describes one background job execution for logging
type JobMetadata struct {
	JobID        uuid.UUID
	JobType      string
	StartTime    time.Time
	RetryAttempt int
}

// JobBegin derives a context for one background job tied to an entity,
// e.g. transcribing one interview recording. The returned cancel must be
// called when the job is done.
func JobBegin(parentCtx context.Context, jobID uuid.UUID, jobType string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parentCtx, jobTimeout)

	ctx = context.WithValue(ctx, keyJobID, jobID)
	ctx = context.WithValue(ctx, keyJobType, jobType)
	ctx = context.WithValue(ctx, keyStartTime, time.Now())
	ctx = context.WithValue(ctx, keyAttempts, new(atomic.Int32))

	return ctx, cancel
}

// JobEnd runs the job function with panic recovery and exponential backoff.
// Transient failures are retried up to the retry cap; anything else returns
// immediately.
func JobEnd(ctx context.Context, jobFunc func(context.Context) error) error {
	attempts, _ := ctx.Value(keyAttempts).(*atomic.Int32)

	run := func() (err error) {
		defer func() {
			if p := recover(); p != nil {
				err = backoff.Permanent(fmt.Errorf("panic recovered: %v", p))
			}
		}()
		if attempts != nil {
			attempts.Add(1)
		}

		if err := jobFunc(ctx); err != nil {
			if IsRetryableError(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.WithContext(backoff.NewExponentialBackOff(), ctx), maxRetries)
	return backoff.Retry(run, policy)
}

// GetJobID extracts the job id from context
func GetJobID(ctx context.Context) (uuid.UUID, bool) {
	jobID, ok := ctx.Value(keyJobID).(uuid.UUID)
	return jobID, ok
}

// GetJobType extracts the job type from context
func GetJobType(ctx context.Context) (string, bool) {
	jobType, ok := ctx.Value(keyJobType).(string)
	return jobType, ok
}

// GetJobStartTime extracts the job start time from context
func GetJobStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyStartTime).(time.Time)
	return startTime, ok
}

// GetJobMetadata assembles the job's logging metadata from context
func GetJobMetadata(ctx context.Context) *JobMetadata {
	meta := &JobMetadata{}
	meta.JobID, _ = GetJobID(ctx)
	meta.JobType, _ = GetJobType(ctx)
	meta.StartTime, _ = GetJobStartTime(ctx)
	if attempts, ok := ctx.Value(keyAttempts).(*atomic.Int32); ok {
		meta.RetryAttempt = int(attempts.Load())
	}
	return meta
}

// Transient failure markers: network faults, Postgres lock conflicts,
// provider rate limits and 5xx responses.
var retryableMarkers = []string{
	"connection refused",
	"connection reset",
	"network unreachable",
	"no such host",
	"i/o timeout",
	"deadlock",
	"40001", // serialization_failure
	"40p01", // deadlock_detected
	"rate limit",
	"too many requests",
	"429",
	"status 5",
	"internal server error",
	"service unavailable",
	"bad gateway",
}

// IsRetryableError reports whether an error is worth retrying
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	for _, marker := range retryableMarkers {
		if strings.Contains(errStr, marker) {
			return true
		}
	}
	return false
}
