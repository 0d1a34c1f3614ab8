package grpc

import (
	"context"
	"testing"
	"time"
)

func startHealth(t *testing.T) *HealthServer {
	t.Helper()
	server, err := ListenHealth("127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen health: %v", err)
	}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve()
	}()
	t.Cleanup(func() {
		server.Stop(time.Second)
		if err := <-serveErr; err != nil {
			t.Errorf("serve: %v", err)
		}
	})
	return server
}

func TestWaitForHealthOverallServing(t *testing.T) {
	server := startHealth(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := WaitForHealth(ctx, server.Addr().String(), "", nil); err != nil {
		t.Fatalf("wait for health: %v", err)
	}
}

func TestWaitForHealthTransitionsToServing(t *testing.T) {
	server := startHealth(t)

	go func() {
		time.Sleep(200 * time.Millisecond)
		server.SetServing("scoreboard.engine")
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := WaitForHealth(ctx, server.Addr().String(), "scoreboard.engine", nil); err != nil {
		t.Fatalf("wait for health after transition: %v", err)
	}
}

func TestWaitForHealthRespectsContext(t *testing.T) {
	server := startHealth(t)

	var logged int
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	err := WaitForHealth(ctx, server.Addr().String(), "scoreboard.engine", func(string, ...any) { logged++ })
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if logged == 0 {
		t.Fatal("expected wait progress to be logged")
	}
}

func TestListenHealthRejectsBadAddress(t *testing.T) {
	if _, err := ListenHealth("not-an-address"); err == nil {
		t.Fatal("expected listen error")
	}
}
