package redkit

import (
	"context"
	"fmt"
	"net"
	"syscall"

	"golang.org/x/sys/unix"
)

/*
Ingress fabric: two ways to spread accepted connections across a fleet of
worker Servers, grounded on network/reuse.rs and network/dispatcher.rs of
the original Rust prototype.

Reuse-port mode (Linux): every worker opens its own listener on the same
address with SO_REUSEPORT, so the kernel load-balances accepted
connections across workers with no handoff between them.

Dispatcher mode (portable fallback): a single real listener accepts every
connection and hands each one to a worker's inbox channel, chosen by
hashing the client's ephemeral port - cheap, deterministic, and needs no
SO_REUSEPORT support from the OS.
*/

// ListenReusePort opens s.Address with SO_REUSEPORT set (Linux) so that
// multiple Server instances in the same process (or across processes)
// can each Accept from the same address independently.
func (s *Server) ListenReusePort() error {
	lc := net.ListenConfig{
		Control: func(network, address string, c syscall.RawConn) error {
			var controlErr error
			err := c.Control(func(fd uintptr) {
				controlErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
				if controlErr != nil {
					return
				}
				controlErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
			})
			if err != nil {
				return err
			}
			return controlErr
		},
	}

	listener, err := lc.Listen(context.Background(), "tcp", s.Address)
	if err != nil {
		return fmt.Errorf("reuseport listen on %s: %w", s.Address, err)
	}
	s.listener = listener
	s.ErrorLog.Printf("RedKit server (reuseport) listening on %s", s.Address)
	return nil
}

// chanListener adapts a channel of already-accepted connections to the
// net.Listener interface so a dispatcher worker can keep using the
// ordinary Server.Serve accept loop unmodified.
type chanListener struct {
	addr  net.Addr
	conns chan net.Conn
	done  chan struct{}
}

func newChanListener(addr net.Addr) *chanListener {
	return &chanListener{addr: addr, conns: make(chan net.Conn, 128), done: make(chan struct{})}
}

func (l *chanListener) Accept() (net.Conn, error) {
	select {
	case c, ok := <-l.conns:
		if !ok {
			return nil, fmt.Errorf("dispatcher listener closed")
		}
		return c, nil
	case <-l.done:
		return nil, fmt.Errorf("dispatcher listener closed")
	}
}

func (l *chanListener) Close() error {
	select {
	case <-l.done:
	default:
		close(l.done)
	}
	return nil
}

func (l *chanListener) Addr() net.Addr { return l.addr }

// RunDispatcher accepts every connection on address itself and dispatches
// each one to workers[peerPort % len(workers)], then blocks every
// worker's Serve loop over its own chanListener. It returns once the
// real listener's Accept loop exits (normally via ctx cancellation).
func RunDispatcher(ctx context.Context, address string, workers []*Server) error {
	if len(workers) == 0 {
		return fmt.Errorf("dispatcher requires at least one worker")
	}

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("dispatcher listen on %s: %w", address, err)
	}

	listeners := make([]*chanListener, len(workers))
	for i, w := range workers {
		cl := newChanListener(listener.Addr())
		listeners[i] = cl
		w.listener = cl
		go func(worker *Server) {
			_ = worker.Serve()
		}(w)
	}

	go func() {
		<-ctx.Done()
		listener.Close()
		for _, cl := range listeners {
			cl.Close()
		}
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			return nil
		}
		idx := dispatchIndex(conn, len(listeners))
		select {
		case listeners[idx].conns <- conn:
		case <-ctx.Done():
			conn.Close()
			return nil
		}
	}
}

// dispatchIndex hashes the client's ephemeral port to a worker index,
// matching dispatcher.rs's peer_port % worker_count scheme.
func dispatchIndex(conn net.Conn, workerCount int) int {
	addr, ok := conn.RemoteAddr().(*net.TCPAddr)
	if !ok {
		return 0
	}
	return addr.Port % workerCount
}
