package redkit

import (
	"context"

	"github.com/cespare/xxhash/v2"
)

/*
Engine is the storage front door: it hashes a request's routing key to a
shard index and hands the op to that shard's inbox, mirroring
StorageEngine::execute/find_shard_for_key in the original Rust prototype
(storage/engine.rs). Routing is a plain modulo over a stable 64-bit hash,
never consistent hashing - shard membership is fixed for the process
lifetime, so there is nothing to rebalance.
*/

type Engine struct {
	shards []chan envelope
}

// NewEngine starts one goroutine per shard and returns an Engine ready to
// route requests to them. A shardCount below 1 is treated as 1.
func NewEngine(shardCount int) *Engine {
	if shardCount < 1 {
		shardCount = 1
	}
	e := &Engine{shards: make([]chan envelope, shardCount)}
	for i := range e.shards {
		inbox := make(chan envelope, 256)
		e.shards[i] = inbox
		go runShard(inbox)
	}
	return e
}

// ShardCount reports how many shards this engine was built with.
func (e *Engine) ShardCount() int {
	return len(e.shards)
}

// shardFor hashes key to a shard index using xxHash64, modulo the shard
// count.
func (e *Engine) shardFor(key string) int {
	return int(xxhash.Sum64String(key) % uint64(len(e.shards)))
}

// Execute routes op to the shard that owns its key and waits for a
// reply, or for ctx to be canceled first.
func (e *Engine) Execute(ctx context.Context, op storageOp) (response, error) {
	idx := e.shardFor(op.routingKey())
	reply := make(chan response, 1)
	select {
	case e.shards[idx] <- envelope{op: op, reply: reply}:
	case <-ctx.Done():
		return response{}, ctx.Err()
	}
	select {
	case r := <-reply:
		return r, nil
	case <-ctx.Done():
		return response{}, ctx.Err()
	}
}
