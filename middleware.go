package redkit

import "go.uber.org/zap"

/*
Middleware lets callers wrap command dispatch with cross-cutting behavior
(logging, metrics, rate limiting, auth) without touching the registered
CommandHandler implementations themselves.

A MiddlewareChain composes middlewares in onion order: the first added
middleware runs first on the way in and last on the way out. A middleware
that does not call next.Handle short-circuits the chain and every
middleware and handler after it never runs.
*/

// Middleware intercepts a command before it reaches its handler.
// Calling next.Handle continues the chain; returning without calling it
// short-circuits the request.
type Middleware interface {
	Process(conn *Connection, cmd *Command, next CommandHandler) RedisValue
}

// MiddlewareFunc adapts a plain function to the Middleware interface.
type MiddlewareFunc func(conn *Connection, cmd *Command, next CommandHandler) RedisValue

// Process implements Middleware for function types.
func (f MiddlewareFunc) Process(conn *Connection, cmd *Command, next CommandHandler) RedisValue {
	return f(conn, cmd, next)
}

// MiddlewareChain holds an ordered list of middlewares and wraps a final
// CommandHandler with all of them.
type MiddlewareChain struct {
	middlewares []Middleware
}

// NewMiddlewareChain creates an empty chain.
func NewMiddlewareChain() *MiddlewareChain {
	return &MiddlewareChain{}
}

// Add appends a middleware to the chain. Middlewares run in Add order on
// the way in and reverse Add order on the way out.
func (c *MiddlewareChain) Add(m Middleware) {
	c.middlewares = append(c.middlewares, m)
}

// chainedHandler wraps a middleware and the remainder of the chain so it
// satisfies CommandHandler and can be passed as `next`.
type chainedHandler struct {
	mw   Middleware
	next CommandHandler
}

func (h chainedHandler) Handle(conn *Connection, cmd *Command) RedisValue {
	return h.mw.Process(conn, cmd, h.next)
}

// Execute runs cmd through the chain, terminating at handler if every
// middleware calls next.Handle.
func (c *MiddlewareChain) Execute(conn *Connection, cmd *Command, handler CommandHandler) RedisValue {
	wrapped := handler
	for i := len(c.middlewares) - 1; i >= 0; i-- {
		wrapped = chainedHandler{mw: c.middlewares[i], next: wrapped}
	}
	return wrapped.Handle(conn, cmd)
}

// Use registers a middleware to run around every dispatched command.
func (s *Server) Use(m Middleware) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.middlewares = append(s.middlewares, m)
}

// UseFunc registers a middleware function, mirroring RegisterCommandFunc's
// func-to-interface convenience for handlers.
func (s *Server) UseFunc(f func(conn *Connection, cmd *Command, next CommandHandler) RedisValue) {
	s.Use(MiddlewareFunc(f))
}

// NewLoggingMiddleware builds a middleware that records the dispatched
// command name and the reply's wire type through logger.
func NewLoggingMiddleware(logger *zap.SugaredLogger) Middleware {
	return MiddlewareFunc(func(conn *Connection, cmd *Command, next CommandHandler) RedisValue {
		result := next.Handle(conn, cmd)
		logger.Debugw("command dispatched", "command", cmd.Name, "replyType", result.Type)
		return result
	})
}
