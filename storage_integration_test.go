package redkit

import (
	"context"
	"fmt"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// startStorageTestServer brings up a real Server with storage enabled,
// listening on a free loopback port, and a go-redis v9 client pointed at
// it - the same pattern server_test.go/redis_client_test.go use, extended
// to exercise the storage engine end to end instead of a toy map.
func startStorageTestServer(t *testing.T) (*goredis.Client, func()) {
	t.Helper()

	port, err := getFreePort()
	if err != nil {
		t.Fatalf("failed to get free port: %v", err)
	}

	server := NewServer(fmt.Sprintf("127.0.0.1:%d", port))
	server.EnableStorage(4)

	go func() {
		_ = server.Serve()
	}()
	time.Sleep(50 * time.Millisecond)

	client := goredis.NewClient(&goredis.Options{Addr: fmt.Sprintf("127.0.0.1:%d", port)})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("failed to connect: %v", err)
	}

	cleanup := func() {
		client.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}

	return client, cleanup
}

func TestStoragePingEcho(t *testing.T) {
	client, cleanup := startStorageTestServer(t)
	defer cleanup()
	ctx := context.Background()

	if got, err := client.Ping(ctx).Result(); err != nil || got != "PONG" {
		t.Fatalf("PING: got (%q, %v)", got, err)
	}
	if got, err := client.Echo(ctx, "hello").Result(); err != nil || got != "hello" {
		t.Fatalf("ECHO: got (%q, %v)", got, err)
	}
}

func TestStorageSetGetWithExpiry(t *testing.T) {
	client, cleanup := startStorageTestServer(t)
	defer cleanup()
	ctx := context.Background()

	if err := client.Set(ctx, "k", "v", 100*time.Millisecond).Err(); err != nil {
		t.Fatalf("SET: %v", err)
	}
	if got, err := client.Get(ctx, "k").Result(); err != nil || got != "v" {
		t.Fatalf("GET before expiry: got (%q, %v)", got, err)
	}

	time.Sleep(250 * time.Millisecond)

	if _, err := client.Get(ctx, "k").Result(); err != goredis.Nil {
		t.Fatalf("expected key to have expired, got err=%v", err)
	}
}

func TestStorageRPushAndLRange(t *testing.T) {
	client, cleanup := startStorageTestServer(t)
	defer cleanup()
	ctx := context.Background()

	if err := client.RPush(ctx, "list", "a", "b", "c").Err(); err != nil {
		t.Fatalf("RPUSH: %v", err)
	}
	got, err := client.LRange(ctx, "list", 0, -1).Result()
	if err != nil {
		t.Fatalf("LRANGE: %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("LRANGE: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("LRANGE: got %v, want %v", got, want)
		}
	}
}

func TestStorageLPopWithCountEmptiesKey(t *testing.T) {
	client, cleanup := startStorageTestServer(t)
	defer cleanup()
	ctx := context.Background()

	if err := client.RPush(ctx, "list", "a", "b").Err(); err != nil {
		t.Fatalf("RPUSH: %v", err)
	}

	got, err := client.LPopCount(ctx, "list", 2).Result()
	if err != nil {
		t.Fatalf("LPOP count: %v", err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("LPOP count: got %v", got)
	}

	if err := client.LRange(ctx, "list", 0, -1).Err(); err == nil || err.Error() != "ERR no such key" {
		t.Fatalf("expected list key to be removed, LRANGE err=%v", err)
	}
}

func TestStorageBLPopWakesOnPush(t *testing.T) {
	client, cleanup := startStorageTestServer(t)
	defer cleanup()
	ctx := context.Background()

	resultCh := make(chan []string, 1)
	errCh := make(chan error, 1)
	go func() {
		res, err := client.BLPop(ctx, 2*time.Second, "queue").Result()
		if err != nil {
			errCh <- err
			return
		}
		resultCh <- res
	}()

	time.Sleep(100 * time.Millisecond)
	if err := client.RPush(ctx, "queue", "work-item").Err(); err != nil {
		t.Fatalf("RPUSH: %v", err)
	}

	select {
	case res := <-resultCh:
		if len(res) != 2 || res[0] != "queue" || res[1] != "work-item" {
			t.Fatalf("BLPOP: got %v", res)
		}
	case err := <-errCh:
		t.Fatalf("BLPOP failed: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("BLPOP did not wake up within timeout")
	}
}

func TestStorageBLPopTimesOut(t *testing.T) {
	client, cleanup := startStorageTestServer(t)
	defer cleanup()
	ctx := context.Background()

	_, err := client.BLPop(ctx, 1*time.Second, "nokey").Result()
	if err != goredis.Nil {
		t.Fatalf("expected redis.Nil on timeout, got %v", err)
	}
}

func TestStorageBLPopOnStringKeyFailsImmediately(t *testing.T) {
	client, cleanup := startStorageTestServer(t)
	defer cleanup()
	ctx := context.Background()

	if err := client.Set(ctx, "strkey", "v", 0).Err(); err != nil {
		t.Fatalf("SET: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := client.BLPop(ctx, 5*time.Second, "strkey").Result()
		done <- err
	}()

	select {
	case err := <-done:
		want := "'strkey' is not a list."
		if err == nil || err.Error() != want {
			t.Fatalf("expected %q, got %v", want, err)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("BLPOP on a string key blocked instead of failing immediately")
	}
}

func TestStorageWrongTypeErrors(t *testing.T) {
	client, cleanup := startStorageTestServer(t)
	defer cleanup()
	ctx := context.Background()

	if err := client.Set(ctx, "strkey", "v", 0).Err(); err != nil {
		t.Fatalf("SET: %v", err)
	}
	if err := client.RPush(ctx, "strkey", "x").Err(); err == nil {
		t.Fatal("expected an error pushing onto a string key")
	} else if want := "Can't execute Right Push for a String value, should be List"; err.Error() != want {
		t.Fatalf("RPUSH wrong-kind error: got %q, want %q", err.Error(), want)
	}

	if err := client.LLen(ctx, "strkey").Err(); err == nil {
		t.Fatal("expected an error on LLEN of a string key")
	} else if want := "'strkey' is not a list."; err.Error() != want {
		t.Fatalf("LLEN wrong-kind error: got %q, want %q", err.Error(), want)
	}

	if err := client.RPush(ctx, "listkey", "x").Err(); err != nil {
		t.Fatalf("RPUSH: %v", err)
	}
	if got, err := client.Get(ctx, "listkey").Result(); err != goredis.Nil {
		t.Fatalf("expected GET on a list key to report a nil bulk, got (%q, %v)", got, err)
	}
}
