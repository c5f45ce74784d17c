package queue

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/gatekeep/auth-service/internal/core/ports"
)

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(4, zerolog.Nop())

	first := d.shardIndex("alice@example.com")
	for i := 0; i < 10; i++ {
		if d.shardIndex("alice@example.com") != first {
			t.Fatalf("shard index changed between calls")
		}
	}
}

func TestDispatcher_EnqueueBuffers(t *testing.T) {
	d := NewDispatcher(1, zerolog.Nop())

	d.Enqueue(ports.AuthEvent{Type: ports.EventLoginOK, Email: "alice@example.com", At: time.Now()})
	if len(d.workers[0]) != 1 {
		t.Fatalf("expected one buffered event, got %d", len(d.workers[0]))
	}
}

func TestDispatcher_DiscardsAfterShutdown(t *testing.T) {
	d := NewDispatcher(1, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	cancel()

	d.Enqueue(ports.AuthEvent{Type: ports.EventLoginFailed, Email: "alice@example.com", At: time.Now()})
	if len(d.workers[0]) != 0 {
		t.Fatalf("expected late event to be discarded, got %d buffered", len(d.workers[0]))
	}
}
