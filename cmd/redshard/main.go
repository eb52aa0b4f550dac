// Command redshard runs a sharded, Redis-wire-compatible key/value and
// list server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	_ "go.uber.org/automaxprocs"

	"github.com/valkyrie-kv/valkyrie"
)

var (
	flagAddress     string
	flagTCPHandlers int
	flagShards      int
	flagDispatcher  bool
)

func main() {
	root := &cobra.Command{
		Use:   "redshard",
		Short: "Sharded in-memory Redis-wire server",
		RunE:  run,
	}

	root.Flags().StringVar(&flagAddress, "address", "127.0.0.1:6379", "address to bind and listen on")
	root.Flags().IntVar(&flagTCPHandlers, "tcp-handlers", 0, "number of connection-accepting workers (default: half of available CPUs)")
	root.Flags().IntVar(&flagShards, "shards", 0, "number of storage shards (default: half of available CPUs)")
	root.Flags().BoolVar(&flagDispatcher, "dispatcher", false, "use single-acceptor dispatcher mode instead of SO_REUSEPORT")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func clampToHalfCPUs(requested int) int {
	half := runtime.NumCPU() / 2
	if half < 1 {
		half = 1
	}
	if requested <= 0 || requested > half {
		return half
	}
	return requested
}

func newLogger() *zap.Logger {
	level := os.Getenv("LOG_LEVEL")
	cfg := zap.NewProductionConfig()
	switch level {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger
}

func run(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()
	sugar := logger.Sugar()

	shards := clampToHalfCPUs(flagShards)
	handlers := clampToHalfCPUs(flagTCPHandlers)

	sugar.Infow("starting redshard", "address", flagAddress, "shards", shards, "tcpHandlers", handlers, "dispatcher", flagDispatcher)

	engine := redkit.NewEngine(shards)

	workers := make([]*redkit.Server, handlers)
	for i := range workers {
		s := redkit.NewServer(flagAddress)
		s.UseEngine(engine)
		s.Use(redkit.NewLoggingMiddleware(sugar))
		workers[i] = s
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		sugar.Info("shutdown signal received")
		cancel()
	}()

	errCh := make(chan error, 1)

	if flagDispatcher {
		go func() {
			errCh <- redkit.RunDispatcher(ctx, flagAddress, workers)
		}()
	} else {
		for _, w := range workers {
			w := w
			go func() {
				if err := w.ListenReusePort(); err != nil {
					errCh <- err
					return
				}
				errCh <- w.Serve()
			}()
		}
	}

	select {
	case err := <-errCh:
		if err != nil {
			sugar.Errorw("server exited with error", "error", err)
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	for _, w := range workers {
		_ = w.Shutdown(shutdownCtx)
	}

	sugar.Info("shutdown complete")
	return nil
}
