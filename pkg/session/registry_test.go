package session

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/meetlayout/pkg/errors"
	"github.com/matzehuels/meetlayout/pkg/layout"
	"github.com/matzehuels/meetlayout/pkg/throttle"
)

func TestRegistry(t *testing.T) {
	clk := throttle.NewManualClock(epoch)
	r := NewRegistry(WithRegistryClock(clk))
	defer r.Close()
	ctx := context.Background()

	a, err := r.Create(ctx, layout.Desktop, laptop)
	if err != nil {
		t.Fatal(err)
	}
	clk.Advance(time.Second)
	b, err := r.Create(ctx, layout.Mobile, laptop)
	if err != nil {
		t.Fatal(err)
	}

	got, err := r.Get(a.ID)
	if err != nil || got != a {
		t.Fatalf("Get(%s) = %v, %v", a.ID, got, err)
	}

	list := r.List()
	if len(list) != 2 || list[0] != a || list[1] != b {
		t.Errorf("List() should return sessions oldest first")
	}

	if err := r.Delete(a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := r.Get(a.ID); !errors.Is(err, errors.ErrCodeSessionNotFound) {
		t.Errorf("Get(deleted) error = %v, want SESSION_NOT_FOUND", err)
	}
	if err := r.Delete(a.ID); !errors.Is(err, errors.ErrCodeSessionNotFound) {
		t.Errorf("Delete(deleted) error = %v, want SESSION_NOT_FOUND", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistryCleanup(t *testing.T) {
	clk := throttle.NewManualClock(epoch)
	r := NewRegistry(WithRegistryClock(clk), WithTTL(time.Minute))
	defer r.Close()
	ctx := context.Background()

	idle, err := r.Create(ctx, layout.Desktop, laptop)
	if err != nil {
		t.Fatal(err)
	}
	busy, err := r.Create(ctx, layout.Desktop, laptop)
	if err != nil {
		t.Fatal(err)
	}

	clk.Advance(40 * time.Second)
	if _, err := r.Get(busy.ID); err != nil {
		t.Fatal(err)
	}
	clk.Advance(40 * time.Second)

	if n := r.Cleanup(); n != 1 {
		t.Fatalf("Cleanup() = %d, want 1", n)
	}
	if _, err := r.Get(idle.ID); !errors.Is(err, errors.ErrCodeSessionNotFound) {
		t.Errorf("idle session should have expired, got %v", err)
	}
	if _, err := r.Get(busy.ID); err != nil {
		t.Errorf("busy session should survive: %v", err)
	}
}

func TestRegistryNoExpiry(t *testing.T) {
	clk := throttle.NewManualClock(epoch)
	r := NewRegistry(WithRegistryClock(clk), WithTTL(0))
	defer r.Close()

	if _, err := r.Create(context.Background(), layout.Desktop, laptop); err != nil {
		t.Fatal(err)
	}
	clk.Advance(365 * 24 * time.Hour)
	if n := r.Cleanup(); n != 0 {
		t.Errorf("Cleanup() = %d with expiry disabled", n)
	}
}

func TestRegistryRunStops(t *testing.T) {
	r := NewRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
