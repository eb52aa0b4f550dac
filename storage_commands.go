package redkit

import (
	"strconv"
	"strings"
	"time"
)

/*
Storage-backed command handlers: GET, SET, RPUSH, LPUSH, LPOP, LLEN,
LRANGE, BLPOP and the no-op COMMAND introspection reply. Each parse
step and its error text is grounded line-by-line on the corresponding
command/*.rs file of the original Rust prototype; PING/ECHO/QUIT/HELP
stay as registerDefaultHandlers already wrote them in commands.go.

EnableStorage wires these into a Server on top of an Engine, so a plain
NewServer still behaves exactly like the teacher's bare connection
demo until storage is explicitly turned on.
*/

// EnableStorage creates a shardCount-shard Engine and registers the
// GET/SET/list/BLPOP command handlers against it.
func (s *Server) EnableStorage(shardCount int) {
	s.Engine = NewEngine(shardCount)
	s.RegisterStorageHandlers()
}

// UseEngine attaches an already-running Engine (typically shared across
// several acceptor-mode Servers) and registers the storage command
// handlers against it.
func (s *Server) UseEngine(e *Engine) {
	s.Engine = e
	s.RegisterStorageHandlers()
}

// RegisterStorageHandlers wires GET/SET/list/BLPOP/COMMAND onto s.
// s.Engine must already be set (see EnableStorage/UseEngine).
func (s *Server) RegisterStorageHandlers() {
	s.RegisterCommandFunc(string(GET), s.handleGet)
	s.RegisterCommandFunc(string(SET), s.handleSet)
	s.RegisterCommandFunc(string(RPUSH), s.handleRPush)
	s.RegisterCommandFunc(string(LPUSH), s.handleLPush)
	s.RegisterCommandFunc(string(LPOP), s.handleLPop)
	s.RegisterCommandFunc(string(LLEN), s.handleLLen)
	s.RegisterCommandFunc(string(LRANGE), s.handleLRange)
	s.RegisterCommandFunc(string(BLPOP), s.handleBLPop)
	s.RegisterCommandFunc("COMMAND", s.handleCommandIntrospection)
}

func errReply(msg string) RedisValue {
	return RedisValue{Type: ErrorReply, Str: msg}
}

// handleCommandIntrospection answers the COMMAND introspection call
// clients (including go-redis) issue on connect with an empty array,
// matching command_meta.rs's CommandCommand.
func (s *Server) handleCommandIntrospection(conn *Connection, cmd *Command) RedisValue {
	return RedisValue{Type: Array, Array: []RedisValue{}}
}

// handleGet implements GET key.
func (s *Server) handleGet(conn *Connection, cmd *Command) RedisValue {
	if len(cmd.Args) < 1 {
		return errReply("ERR No enough arguments for GET command")
	}
	resp, err := s.Engine.Execute(conn.Context(), &getOp{key: cmd.Args[0]})
	if err != nil {
		return errReply("ERR " + err.Error())
	}
	return resp.toRedisValue()
}

// handleSet implements SET key value [EX seconds | PX milliseconds].
func (s *Server) handleSet(conn *Connection, cmd *Command) RedisValue {
	if len(cmd.Args) < 2 {
		return errReply("ERR Not enough arguments for SET command")
	}
	key, value := cmd.Args[0], cmd.Args[1]

	var ttl time.Duration
	if len(cmd.Args) >= 4 {
		option := strings.ToUpper(cmd.Args[2])
		amount, convErr := strconv.ParseInt(cmd.Args[3], 10, 64)
		if convErr != nil {
			return errReply("ERR Can't convert " + option + " value '" + cmd.Args[3] + "' to number")
		}
		switch option {
		case "EX":
			ttl = time.Duration(amount) * time.Second
		case "PX":
			ttl = time.Duration(amount) * time.Millisecond
		}
	}

	resp, err := s.Engine.Execute(conn.Context(), &setOp{key: key, value: value, ttl: ttl})
	if err != nil {
		return errReply("ERR " + err.Error())
	}
	return resp.toRedisValue()
}

// handleRPush implements RPUSH key value [value ...].
func (s *Server) handleRPush(conn *Connection, cmd *Command) RedisValue {
	if len(cmd.Args) < 2 {
		return errReply("ERR Not enough arguments for RPUSH command")
	}
	resp, err := s.Engine.Execute(conn.Context(), &rpushOp{key: cmd.Args[0], values: cmd.Args[1:]})
	if err != nil {
		return errReply("ERR " + err.Error())
	}
	return resp.toRedisValue()
}

// handleLPush implements LPUSH key value [value ...].
func (s *Server) handleLPush(conn *Connection, cmd *Command) RedisValue {
	if len(cmd.Args) < 2 {
		return errReply("ERR Not enough arguments for LPUSH command")
	}
	resp, err := s.Engine.Execute(conn.Context(), &lpushOp{key: cmd.Args[0], values: cmd.Args[1:]})
	if err != nil {
		return errReply("ERR " + err.Error())
	}
	return resp.toRedisValue()
}

// handleLPop implements LPOP key [count].
func (s *Server) handleLPop(conn *Connection, cmd *Command) RedisValue {
	if len(cmd.Args) < 1 {
		return errReply("ERR Not enough arguments for LPOP command")
	}

	var count *int
	if len(cmd.Args) >= 2 {
		n, convErr := strconv.Atoi(cmd.Args[1])
		if convErr != nil || n < 0 {
			return errReply("ERR Failed to parse LPOP count parameter '" + cmd.Args[1] + "' as unsigned integer")
		}
		count = &n
	}

	resp, err := s.Engine.Execute(conn.Context(), &lpopOp{key: cmd.Args[0], count: count})
	if err != nil {
		return errReply("ERR " + err.Error())
	}
	return resp.toRedisValue()
}

// handleLLen implements LLEN key.
func (s *Server) handleLLen(conn *Connection, cmd *Command) RedisValue {
	if len(cmd.Args) < 1 {
		return errReply("ERR Not enough arguments for LLEN command")
	}
	resp, err := s.Engine.Execute(conn.Context(), &llenOp{key: cmd.Args[0]})
	if err != nil {
		return errReply("ERR " + err.Error())
	}
	return resp.toRedisValue()
}

// handleLRange implements LRANGE key start stop.
func (s *Server) handleLRange(conn *Connection, cmd *Command) RedisValue {
	if len(cmd.Args) < 3 {
		return errReply("ERR Not enough arguments for LRANGE command")
	}
	start, errStart := strconv.Atoi(cmd.Args[1])
	if errStart != nil {
		return errReply("ERR Failed to parse LRANGE start parameter '" + cmd.Args[1] + "' as integer")
	}
	end, errEnd := strconv.Atoi(cmd.Args[2])
	if errEnd != nil {
		return errReply("ERR Failed to parse LRANGE end parameter '" + cmd.Args[2] + "' as integer")
	}

	resp, err := s.Engine.Execute(conn.Context(), &lrangeOp{key: cmd.Args[0], start: start, end: end})
	if err != nil {
		return errReply("ERR " + err.Error())
	}
	return resp.toRedisValue()
}

// handleBLPop implements BLPOP key [key ...] timeout, the blocking
// variant of LPOP. timeout is in whole seconds per the Redis wire
// protocol; 0 means wait indefinitely.
func (s *Server) handleBLPop(conn *Connection, cmd *Command) RedisValue {
	if len(cmd.Args) < 2 {
		return errReply("ERR Incomplete BLPOP command, expected at least 2 values: 'BLPOP key timeout'")
	}

	keys := cmd.Args[:len(cmd.Args)-1]
	timeoutStr := cmd.Args[len(cmd.Args)-1]
	timeoutSecs, convErr := strconv.ParseInt(timeoutStr, 10, 64)
	if convErr != nil || timeoutSecs < 0 {
		return errReply("ERR BLPOP 'timeout' is not an unsigned integer")
	}

	key, value, timedOut, errText, err := blockingLeftPop(conn.Context(), s.Engine, keys, time.Duration(timeoutSecs)*time.Second)
	if err != nil {
		return errReply("ERR " + err.Error())
	}
	if errText != "" {
		return errReply(errText)
	}
	if timedOut {
		return RedisValue{Type: NullArray}
	}

	return RedisValue{
		Type: Array,
		Array: []RedisValue{
			{Type: BulkString, Bulk: []byte(key)},
			{Type: BulkString, Bulk: []byte(value)},
		},
	}
}
