// Package dlk defines the capability surface the filesystem adapter consumes
// from the remote data-lake store: authenticated sessions that can look up
// and list flat store keys. The wire protocol and token lifecycle live behind
// the Session and Authenticator seams.
package dlk

import "context"

// Credentials hold the inputs for the client-secret authentication handshake.
type Credentials struct {
	TenantID     string
	ClientID     string
	ClientSecret string
}

// Session is an authenticated connection to one store. Implementations own
// token lifecycle and transport; they report failures using the sentinel
// error categories of this package.
type Session interface {
	// Info returns the raw record for a single key.
	Info(ctx context.Context, key string) (Record, error)

	// List returns the raw records of the entries directly below key.
	// With detail set, records carry the full field vocabulary; without
	// it, implementations may return names only.
	List(ctx context.Context, key string, detail bool) ([]Record, error)
}

// Authenticator performs the authentication handshake and opens a session
// against the named store.
type Authenticator interface {
	Connect(ctx context.Context, creds Credentials, store string) (Session, error)
}

// Static returns an Authenticator that hands out the given session without
// any handshake. Useful for tests and offline consumers.
func Static(session Session) Authenticator {
	return staticAuth{session: session}
}

type staticAuth struct {
	session Session
}

func (a staticAuth) Connect(ctx context.Context, creds Credentials, store string) (Session, error) {
	return a.session, nil
}
