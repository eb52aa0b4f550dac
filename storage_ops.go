package redkit

import "time"

/*
Storage operations are the request half of the shard protocol. Each op
knows which key it routes on and how to mutate/read shard-local state;
the shard goroutine that owns that key is the only thing that ever calls
apply, so no locking is needed inside it.

Grounded on the per-command StorageRequest implementations of the
original Rust prototype (storage/{set,get,list_*}_storage.rs): one
struct per command, a shard_key/key accessor, and a handle method against
the shard's local map.
*/

type storageOp interface {
	routingKey() string
	apply(s *shardState) response
}

// getOp implements GET: returns the string at key, or a nil bulk string
// if key is absent or holds a non-string kind. Wrong kind under GET is
// treated as absent, not as an error - get_storage.rs agrees.
type getOp struct{ key string }

func (o *getOp) routingKey() string { return o.key }

func (o *getOp) apply(s *shardState) response {
	v, ok := s.data[o.key]
	if !ok || v.kind != kindString {
		return response{kind: respNilBulk}
	}
	return response{kind: respBulk, str: v.str}
}

// setOp implements SET key value [EX seconds | PX milliseconds]. A
// positive ttl schedules the key's removal and cancels any previously
// scheduled expiration for the same key, mirroring set_storage.rs's
// abort-and-replace behavior.
type setOp struct {
	key   string
	value string
	ttl   time.Duration // 0 means no expiration
}

func (o *setOp) routingKey() string { return o.key }

func (o *setOp) apply(s *shardState) response {
	s.cancelTTL(o.key)
	s.data[o.key] = storedValue{kind: kindString, str: o.value}
	if o.ttl > 0 {
		s.scheduleExpiry(o.key, o.ttl)
	}
	return response{kind: respOK}
}

// rpushOp implements RPUSH key value [value ...]: append to the tail.
type rpushOp struct {
	key    string
	values []string
}

func (o *rpushOp) routingKey() string { return o.key }

func (o *rpushOp) apply(s *shardState) response {
	v, ok := s.data[o.key]
	if !ok {
		v = storedValue{kind: kindList}
	} else if v.kind != kindList {
		return response{kind: respError, err: pushWrongKindError("Right")}
	}
	v.list = append(v.list, o.values...)
	s.data[o.key] = v
	s.wakeWaiters(o.key)
	return response{kind: respInt, i: int64(len(v.list))}
}

// lpushOp implements LPUSH key value [value ...]: each argument is
// inserted at the head in the order given, so the last argument ends up
// closest to the head - matching list_left_push_storage.rs.
type lpushOp struct {
	key    string
	values []string
}

func (o *lpushOp) routingKey() string { return o.key }

func (o *lpushOp) apply(s *shardState) response {
	v, ok := s.data[o.key]
	if !ok {
		v = storedValue{kind: kindList}
	} else if v.kind != kindList {
		return response{kind: respError, err: pushWrongKindError("Left")}
	}
	combined := make([]string, 0, len(v.list)+len(o.values))
	for i := len(o.values) - 1; i >= 0; i-- {
		combined = append(combined, o.values[i])
	}
	combined = append(combined, v.list...)
	v.list = combined
	s.data[o.key] = v
	s.wakeWaiters(o.key)
	return response{kind: respInt, i: int64(len(v.list))}
}

// lpopOp implements LPOP key [count]. count == nil pops a single element
// and returns a nil bulk string when the list is empty/missing; a
// non-nil count pops up to that many and returns a nil array instead.
type lpopOp struct {
	key   string
	count *int
}

func (o *lpopOp) routingKey() string { return o.key }

func (o *lpopOp) apply(s *shardState) response {
	v, ok := s.data[o.key]
	if !ok {
		if o.count != nil {
			return response{kind: respNilArray}
		}
		return response{kind: respNilBulk}
	}
	if v.kind != kindList {
		return response{kind: respError, err: notAListError(o.key)}
	}

	if o.count == nil {
		if len(v.list) == 0 {
			delete(s.data, o.key)
			return response{kind: respNilBulk}
		}
		popped := v.list[0]
		v.list = v.list[1:]
		if len(v.list) == 0 {
			delete(s.data, o.key)
		} else {
			s.data[o.key] = v
		}
		return response{kind: respBulk, str: popped}
	}

	count := *o.count
	if count <= 0 {
		return response{kind: respArray, list: []string{}}
	}
	n := count
	if n > len(v.list) {
		n = len(v.list)
	}
	out := append([]string{}, v.list[:n]...)
	v.list = v.list[n:]
	if len(v.list) == 0 {
		delete(s.data, o.key)
	} else {
		s.data[o.key] = v
	}
	return response{kind: respArray, list: out}
}

// lrangeOp implements LRANGE key start stop with Redis's inclusive,
// negative-index-from-the-end semantics.
type lrangeOp struct {
	key        string
	start, end int
}

func (o *lrangeOp) routingKey() string { return o.key }

func normalizeListRangeIndex(index, length int, isStart bool) int {
	if index < 0 {
		index += length
		if index < 0 {
			index = 0
		}
		return index
	}
	if isStart {
		if index > length {
			index = length
		}
		return index
	}
	if index > length-1 {
		index = length - 1
	}
	return index
}

func (o *lrangeOp) apply(s *shardState) response {
	v, ok := s.data[o.key]
	if !ok {
		return response{kind: respError, err: "ERR no such key"}
	}
	if v.kind != kindList {
		return response{kind: respError, err: notAListError(o.key)}
	}
	if len(v.list) == 0 {
		return response{kind: respArray, list: []string{}}
	}

	start := normalizeListRangeIndex(o.start, len(v.list), true)
	end := normalizeListRangeIndex(o.end, len(v.list), false)

	if start >= len(v.list) || start > end {
		return response{kind: respArray, list: []string{}}
	}

	out := append([]string{}, v.list[start:end+1]...)
	return response{kind: respArray, list: out}
}

// llenOp implements LLEN key: 0 for a missing key, "'key' is not a
// list." for a string key.
type llenOp struct{ key string }

func (o *llenOp) routingKey() string { return o.key }

func (o *llenOp) apply(s *shardState) response {
	v, ok := s.data[o.key]
	if !ok {
		return response{kind: respInt, i: 0}
	}
	if v.kind != kindList {
		return response{kind: respError, err: notAListError(o.key)}
	}
	return response{kind: respInt, i: int64(len(v.list))}
}

// registerWaiterOp and unregisterWaiterOp are internal coordination ops
// used by BLPOP (waiter.go), never issued directly by a client command.
// Routing them through the owning shard's single goroutine serializes
// waiter-queue mutation with the push ops that wake it, which is what
// makes the acquire-then-wait protocol race-free.
type registerWaiterOp struct {
	key    string
	ticket chan struct{}
}

func (o *registerWaiterOp) routingKey() string { return o.key }

func (o *registerWaiterOp) apply(s *shardState) response {
	s.waiters[o.key] = append(s.waiters[o.key], o.ticket)
	return response{kind: respOK}
}

type unregisterWaiterOp struct {
	key    string
	ticket chan struct{}
}

func (o *unregisterWaiterOp) routingKey() string { return o.key }

func (o *unregisterWaiterOp) apply(s *shardState) response {
	tickets := s.waiters[o.key]
	for i, t := range tickets {
		if t == o.ticket {
			s.waiters[o.key] = append(tickets[:i], tickets[i+1:]...)
			break
		}
	}
	if len(s.waiters[o.key]) == 0 {
		delete(s.waiters, o.key)
	}
	return response{kind: respOK}
}
