package redkit

import (
	"context"
	"time"
)

/*
BLPOP is the one place the original Rust prototype shipped only a stub
(storage/list_left_blocking_pop_storage.rs always returned a canned
"hello, world!!!" value). This file implements the real acquire-then-wait
protocol described for the blocking pop: register intent to wait before
checking for emptiness, so a push that lands between the check and the
registration can never be missed.

Steps, run from the connection goroutine rather than inside any shard:
 1. Register a waiter ticket on each key's shard.
 2. Try an immediate single-element LPOP against every requested key, in
    order; the first key with a value wins, and the ticket is then
    unregistered from every key.
 3. If every key came back empty, wait for any ticket to fire, the
    timeout to elapse, or the connection's context to cancel.
 4. On wake, unregister the ticket from every key (a woken shard already
    dropped it, the others still hold a stale reference) and go back to
    step 1 - another waiter or a different connection entirely may have
    already taken the value.
*/

// blockingLeftPop returns either a (key, value) pair, timedOut == true,
// or a typed protocol error (errText, already formatted for the wire
// with no further wrapping) - distinct from err, which signals a
// transport/context failure the caller should wrap itself.
func blockingLeftPop(ctx context.Context, engine *Engine, keys []string, timeout time.Duration) (key, value string, timedOut bool, errText string, err error) {
	var deadline <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	ticket := make(chan struct{}, 1)

	for {
		for _, k := range keys {
			if _, execErr := engine.Execute(ctx, &registerWaiterOp{key: k, ticket: ticket}); execErr != nil {
				unregisterAll(engine, keys, ticket)
				return "", "", false, "", execErr
			}
		}

		for _, k := range keys {
			count := 1
			resp, execErr := engine.Execute(ctx, &lpopOp{key: k, count: &count})
			if execErr != nil {
				unregisterAll(engine, keys, ticket)
				return "", "", false, "", execErr
			}
			if resp.kind == respError {
				unregisterAll(engine, keys, ticket)
				return "", "", false, resp.err, nil
			}
			if resp.kind == respArray && len(resp.list) == 1 {
				unregisterAll(engine, keys, ticket)
				return k, resp.list[0], false, "", nil
			}
		}

		select {
		case <-ticket:
			unregisterAll(engine, keys, ticket)
		case <-deadline:
			unregisterAll(engine, keys, ticket)
			return "", "", true, "", nil
		case <-ctx.Done():
			unregisterAll(engine, keys, ticket)
			return "", "", false, "", ctx.Err()
		}
	}
}

func unregisterAll(engine *Engine, keys []string, ticket chan struct{}) {
	// Best-effort cleanup; the shard goroutines are still alive and this
	// is not on the hot path, so a short-lived background context is fine.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for _, k := range keys {
		_, _ = engine.Execute(ctx, &unregisterWaiterOp{key: k, ticket: ticket})
	}
}
