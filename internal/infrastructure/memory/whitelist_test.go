package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestWhitelist_FreshInstanceEmpty(t *testing.T) {
	w := NewWhitelist()

	ok, err := w.Contains(context.Background(), "tok123")
	if err != nil {
		t.Fatalf("contains failed: %v", err)
	}
	if ok {
		t.Fatalf("fresh whitelist must be empty")
	}
}

func TestWhitelist_AddAndContains(t *testing.T) {
	w := NewWhitelist()

	if err := w.Add(context.Background(), "tok123"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	ok, err := w.Contains(context.Background(), "tok123")
	if err != nil {
		t.Fatalf("contains failed: %v", err)
	}
	if !ok {
		t.Fatalf("expected membership after add")
	}

	ok, _ = w.Contains(context.Background(), "other")
	if ok {
		t.Fatalf("unexpected membership for unknown token")
	}
}

func TestWhitelist_AddIdempotent(t *testing.T) {
	w := NewWhitelist()

	for i := 0; i < 3; i++ {
		if err := w.Add(context.Background(), "tok123"); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}
	if len(w.tokens) != 1 {
		t.Fatalf("expected one entry, got %d", len(w.tokens))
	}
}

func TestWhitelist_ConcurrentAccess(t *testing.T) {
	w := NewWhitelist()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		token := fmt.Sprintf("tok_%d", i)
		go func() {
			defer wg.Done()
			_ = w.Add(context.Background(), token)
		}()
		go func() {
			defer wg.Done()
			_, _ = w.Contains(context.Background(), token)
		}()
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		ok, _ := w.Contains(context.Background(), fmt.Sprintf("tok_%d", i))
		if !ok {
			t.Fatalf("expected tok_%d to be present", i)
		}
	}
}
