package dlkfs

import (
	"github.com/mwantia/dlkfs/dlk"
	"github.com/mwantia/dlkfs/log"
)

// Config carries the construction-time settings for a DataLakeFS.
type Config struct {
	// DirPath scopes all operations to a sub-tree of the store. Defaults
	// to "/", the whole store.
	DirPath string

	// Store identifies the target store. The Azure authenticator expects
	// "<account>/<filesystem>".
	Store string

	// Credentials for the authentication handshake, performed lazily on
	// the first store call of each worker.
	Credentials dlk.Credentials
}

type Options struct {
	Authenticator dlk.Authenticator
	Logger        *log.Logger
}

type Option func(*Options) error

func newDefaultOptions() *Options {
	return &Options{
		Authenticator: &dlk.AzureAuthenticator{},
		Logger:        log.Discard(),
	}
}

// WithAuthenticator replaces the store authenticator. Tests and offline
// consumers pair this with dlk.Static and an in-memory session.
func WithAuthenticator(auth dlk.Authenticator) Option {
	return func(o *Options) error {
		o.Authenticator = auth
		return nil
	}
}

// WithLogger routes adapter logging to the given logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) error {
		o.Logger = logger
		return nil
	}
}

// WithLogLevel installs a stdout logger at the given level.
func WithLogLevel(level log.Level) Option {
	return func(o *Options) error {
		o.Logger = log.New("dlkfs", level)
		return nil
	}
}
