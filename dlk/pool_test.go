package dlk

import (
	"context"
	"sync"
	"testing"
)

type countingAuth struct {
	mu       sync.Mutex
	connects int
}

func (a *countingAuth) Connect(ctx context.Context, creds Credentials, store string) (Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.connects++
	return InMemory(), nil
}

func TestPoolCachesPerWorker(t *testing.T) {
	auth := &countingAuth{}
	pool := NewSessionPool(auth, Credentials{}, "account/lake")

	ctx := WithWorker(context.Background(), "worker-a")

	first, err := pool.Session(ctx)
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}
	second, err := pool.Session(ctx)
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}

	if first != second {
		t.Error("same worker received two different sessions")
	}
	if auth.connects != 1 {
		t.Errorf("connects = %d, want 1", auth.connects)
	}
}

func TestPoolIsolatesWorkers(t *testing.T) {
	auth := &countingAuth{}
	pool := NewSessionPool(auth, Credentials{}, "account/lake")

	var wg sync.WaitGroup
	sessions := make([]Session, 2)
	for i, id := range []string{"worker-a", "worker-b"} {
		i, id := i, id
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx := WithWorker(context.Background(), id)
			session, err := pool.Session(ctx)
			if err != nil {
				t.Errorf("Session failed: %v", err)
				return
			}
			sessions[i] = session
		}()
	}
	wg.Wait()

	if sessions[0] == nil || sessions[1] == nil {
		t.Fatal("missing sessions")
	}
	if sessions[0] == sessions[1] {
		t.Error("two workers shared one session")
	}
	if auth.connects != 2 {
		t.Errorf("connects = %d, want 2", auth.connects)
	}
}

func TestPoolDefaultWorker(t *testing.T) {
	auth := &countingAuth{}
	pool := NewSessionPool(auth, Credentials{}, "account/lake")

	// Contexts without a worker identity share the default slot.
	first, err := pool.Session(context.Background())
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}
	second, err := pool.Session(context.Background())
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}

	if first != second {
		t.Error("default workers received different sessions")
	}
}

func TestNewWorkerContextIsUnique(t *testing.T) {
	auth := &countingAuth{}
	pool := NewSessionPool(auth, Credentials{}, "account/lake")

	first, err := pool.Session(NewWorkerContext(context.Background()))
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}
	second, err := pool.Session(NewWorkerContext(context.Background()))
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}

	if first == second {
		t.Error("distinct worker contexts shared one session")
	}
}
