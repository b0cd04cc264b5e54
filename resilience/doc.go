// Package resilience provides retry and rate limiting primitives for
// outbound calls to remote services.
//
// Retry runs an operation up to a configured number of attempts, retrying
// only errors the RetryIf predicate accepts. Backoff between attempts is
// optional: with InitialBackoff left at zero, attempts run back to back,
// which suits callers whose retry policy is purely attempt-bounded.
//
//	result, err := resilience.Retry(ctx, resilience.RetryConfig{
//	    MaxAttempts: 3,
//	    RetryIf:     func(err error) bool { return isConnectionError(err) },
//	}, func() (*Response, error) {
//	    return client.Do(ctx, req)
//	})
//
// RateLimiter is a token bucket for client-side request rate caps:
//
//	rl := resilience.NewRateLimiter(resilience.RateLimiterConfig{Rate: 5, Burst: 5})
//	if err := rl.Wait(ctx); err != nil {
//	    return err
//	}
package resilience
