package dlk

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type workerKey struct{}

// WithWorker binds a worker identity to the context. Sessions are cached per
// worker identity, so callers that want isolated sessions run under distinct
// worker contexts.
func WithWorker(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, workerKey{}, id)
}

// NewWorkerContext binds a fresh, unique worker identity to the context.
func NewWorkerContext(ctx context.Context) context.Context {
	return WithWorker(ctx, uuid.Must(uuid.NewV7()).String())
}

func workerID(ctx context.Context) string {
	if id, ok := ctx.Value(workerKey{}).(string); ok {
		return id
	}
	return ""
}

// SessionPool caches one authenticated session per worker identity. The
// handshake runs on first use; later calls under the same identity return
// the cached session. Identities never share sessions.
type SessionPool struct {
	mu       sync.Mutex
	auth     Authenticator
	creds    Credentials
	store    string
	sessions map[string]Session
}

func NewSessionPool(auth Authenticator, creds Credentials, store string) *SessionPool {
	return &SessionPool{
		auth:     auth,
		creds:    creds,
		store:    store,
		sessions: make(map[string]Session),
	}
}

// Session returns the cached session for the calling worker, authenticating
// on first use. When two calls under one identity race the handshake, the
// first writer wins and both see the same session afterwards.
func (p *SessionPool) Session(ctx context.Context) (Session, error) {
	id := workerID(ctx)

	p.mu.Lock()
	if session, ok := p.sessions[id]; ok {
		p.mu.Unlock()
		return session, nil
	}
	p.mu.Unlock()

	session, err := p.auth.Connect(ctx, p.creds, p.store)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if cached, ok := p.sessions[id]; ok {
		return cached, nil
	}
	p.sessions[id] = session
	return session, nil
}
