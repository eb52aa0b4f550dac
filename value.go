package redkit

// valueKind discriminates what a shard-local key currently stores.
type valueKind int

const (
	kindString valueKind = iota
	kindList
)

// storedValue is the shard-local representation of a key's value. Only one
// of str/list is meaningful, selected by kind - mirroring the wire-level
// RedisValue variant struct in types.go.
type storedValue struct {
	kind valueKind
	str  string
	list []string // head at index 0; LPUSH prepends, RPUSH appends
}

// notAListError matches list_left_pop_storage.rs/list_length_storage.rs/
// list_range_storage.rs: every read-side list command fails the same way
// when key holds a string.
func notAListError(key string) string {
	return "'" + key + "' is not a list."
}

// pushWrongKindError matches list_left_push_storage.rs/
// list_right_push_storage.rs: direction is "Left" or "Right".
func pushWrongKindError(direction string) string {
	return "Can't execute " + direction + " Push for a String value, should be List"
}
