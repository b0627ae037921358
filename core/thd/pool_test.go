// File: pool_test.go
// Title: Worker Pool Tests

package thd

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stdx-go/stdx/core/fault"
)

func TestNewPoolDefaults(t *testing.T) {
	p := NewPool(0)
	defer p.Close()

	if p.Workers() <= 0 {
		t.Errorf("Workers() = %d, want > 0", p.Workers())
	}
}

func TestSubmitRunsTask(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	f, err := Submit(p, 0, func() (int, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	got, err := f.MustWait()
	if err != nil {
		t.Fatalf("MustWait() error = %v", err)
	}
	if got != 42 {
		t.Errorf("result = %d, want 42", got)
	}
}

func TestPriorityOrdering(t *testing.T) {
	p := NewPool(1)

	// occupy the single worker so submissions below queue up
	started := make(chan struct{})
	gate := make(chan struct{})
	blocker, err := Go(p, func() (struct{}, error) {
		close(started)
		<-gate
		return struct{}{}, nil
	})
	if err != nil {
		t.Fatalf("Go() error = %v", err)
	}
	<-started

	var mu sync.Mutex
	var order []string

	submit := func(name string, prio uint8) *Future[struct{}] {
		f, err := Submit(p, prio, func() (struct{}, error) {
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
			return struct{}{}, nil
		})
		if err != nil {
			t.Fatalf("Submit(%s) error = %v", name, err)
		}
		return f
	}

	low1 := submit("low-1", 10)
	high := submit("high", 200)
	mid := submit("mid", 100)
	low2 := submit("low-2", 10)

	close(gate)
	blocker.MustWait()
	for _, f := range []*Future[struct{}]{low1, high, mid, low2} {
		f.MustWait()
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	want := []string{"high", "mid", "low-1", "low-2"}
	if len(order) != len(want) {
		t.Fatalf("ran %d tasks, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestCloseDrainsQueue(t *testing.T) {
	p := NewPool(2)

	var ran atomic.Int32
	const n = 50

	futures := make([]*Future[struct{}], 0, n)
	for i := 0; i < n; i++ {
		f, err := Go(p, func() (struct{}, error) {
			ran.Add(1)
			return struct{}{}, nil
		})
		if err != nil {
			t.Fatalf("Go() error = %v", err)
		}
		futures = append(futures, f)
	}

	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if got := ran.Load(); got != n {
		t.Errorf("ran %d tasks, want %d", got, n)
	}
	for _, f := range futures {
		select {
		case <-f.Done():
		default:
			t.Fatal("future unresolved after Close")
		}
	}
}

func TestSubmitAfterClose(t *testing.T) {
	p := NewPool(1)
	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	_, err := Go(p, func() (int, error) { return 0, nil })
	if !fault.HasCode(err, fault.CodeClosed) {
		t.Errorf("error code = %v, want %v", fault.CodeOf(err), fault.CodeClosed)
	}
}

func TestDoubleClose(t *testing.T) {
	p := NewPool(1)
	if err := p.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := p.Close(); !fault.HasCode(err, fault.CodeClosed) {
		t.Errorf("second Close() code = %v, want %v", fault.CodeOf(err), fault.CodeClosed)
	}
}

func TestPending(t *testing.T) {
	p := NewPool(1)

	started := make(chan struct{})
	gate := make(chan struct{})
	blocker, err := Go(p, func() (struct{}, error) {
		close(started)
		<-gate
		return struct{}{}, nil
	})
	if err != nil {
		t.Fatalf("Go() error = %v", err)
	}
	<-started

	queued, err := Go(p, func() (struct{}, error) {
		return struct{}{}, nil
	})
	if err != nil {
		t.Fatalf("Go() error = %v", err)
	}

	if got := p.Pending(); got != 1 {
		t.Errorf("Pending() = %d, want 1", got)
	}

	close(gate)
	blocker.MustWait()
	queued.MustWait()
	p.Close()
}
