package weaviate

import (
	"context"
	"fmt"
)

// poll waits until terminal(last) holds. initial is the status returned
// by the call that started the job and counts as the first observation.
// Before each status check it sleeps for cfg.Interval.
//
// A failing check aborts the wait with that error. Running out of
// cfg.MaxAttempts returns the last status with ErrPollAttemptsExceeded,
// and a done ctx returns the last status with ctx.Err().
func poll[T any](
	ctx context.Context,
	cfg PollConfig,
	obs *clientObserver,
	job string,
	initial T,
	terminal func(T) bool,
	check func(context.Context) (T, error),
) (T, error) {
	last := initial
	for attempt := 0; !terminal(last); attempt++ {
		if cfg.MaxAttempts > 0 && attempt >= cfg.MaxAttempts {
			return last, fmt.Errorf("%w: %s after %d status checks", ErrPollAttemptsExceeded, job, attempt)
		}
		if err := sleep(ctx, cfg.Interval); err != nil {
			return last, err
		}

		obs.pollAttempt(job)
		next, err := check(ctx)
		if err != nil {
			return last, err
		}
		last = next
	}
	return last, nil
}
