// Package session owns the two long-lived protocol sessions of the process:
// one IMAP connection and one SMTP connection. Each manager hands the session
// to exactly one operation at a time and reconnects transparently when the
// session has gone stale.
package session

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"sync"

	"github.com/emersion/go-imap"
	imapclient "github.com/emersion/go-imap/client"
	"github.com/pkg/errors"

	"github.com/mailgate/mailgate/internal/config"
	"github.com/mailgate/mailgate/pkg/base"
)

// IMAPManager guards the single IMAP session. The mutex is held for the
// whole acquire-then-use sequence, not just reconnection, because folder
// selection state lives on the connection: a SELECT issued by a second
// operation would silently renumber the first operation's identifiers.
type IMAPManager struct {
	mu         sync.Mutex
	client     base.Client
	generation uint64

	dialTLS   func(address string, tlsConfig *tls.Config) (base.Client, error)
	loadEnv   func() (config.IMAPEnv, error)
	tlsConfig *tls.Config
	logger    *slog.Logger
}

type IMAPOption func(*IMAPManager) error

func NewIMAPManager(opts ...IMAPOption) (*IMAPManager, error) {
	var mgr IMAPManager
	for _, opt := range opts {
		if err := opt(&mgr); err != nil {
			return nil, err
		}
	}

	if mgr.logger == nil {
		return nil, errors.New("requires logger")
	}

	if mgr.dialTLS == nil {
		mgr.dialTLS = func(address string, tlsConfig *tls.Config) (base.Client, error) {
			c, err := imapclient.DialTLS(address, tlsConfig)
			if err != nil {
				return nil, err
			}
			return c, nil
		}
	}

	if mgr.loadEnv == nil {
		mgr.loadEnv = config.IMAPFromEnv
	}

	return &mgr, nil
}

func WithIMAPLogger(logger *slog.Logger) IMAPOption {
	return func(mgr *IMAPManager) error {
		mgr.logger = logger
		return nil
	}
}

func WithIMAPDialTLS(d func(address string, tlsConfig *tls.Config) (base.Client, error)) IMAPOption {
	return func(mgr *IMAPManager) error {
		mgr.dialTLS = d
		return nil
	}
}

func WithIMAPEnv(load func() (config.IMAPEnv, error)) IMAPOption {
	return func(mgr *IMAPManager) error {
		mgr.loadEnv = load
		return nil
	}
}

func WithIMAPTLSConfig(tlsConfig *tls.Config) IMAPOption {
	return func(mgr *IMAPManager) error {
		mgr.tlsConfig = tlsConfig
		return nil
	}
}

// IMAPSession is the view of the shared connection handed to one operation.
// Identifiers obtained after Select are valid only until the callback
// returns; the generation stamp tracks each reselect.
type IMAPSession struct {
	mgr        *IMAPManager
	client     base.Client
	generation uint64
}

func (s *IMAPSession) Client() base.Client { return s.client }

// Generation identifies the current SELECT; it increments on every reselect
// so stale identifier reuse is detectable in logs.
func (s *IMAPSession) Generation() uint64 { return s.generation }

// Select establishes the active folder for this session. A rejected SELECT
// surfaces as a ProtocolError carrying the server's response text.
func (s *IMAPSession) Select(folder string) (*imap.MailboxStatus, error) {
	status, err := s.client.Select(folder, false)
	if err != nil {
		return nil, &base.ProtocolError{
			Command:  fmt.Sprintf("SELECT %s", folder),
			Response: err.Error(),
		}
	}

	s.mgr.generation++
	s.generation = s.mgr.generation
	return status, nil
}

// Do runs fn against an authenticated session, holding the session lock for
// the duration so the operation's select-act sequence is never interleaved
// with another operation's.
func (m *IMAPManager) Do(ctx context.Context, fn func(s *IMAPSession) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	client, err := m.acquire(ctx)
	if err != nil {
		return err
	}

	return fn(&IMAPSession{mgr: m, client: client, generation: m.generation})
}

// acquire returns a usable authenticated session, reconnecting if the
// current one is missing or no longer authenticated-or-deeper. Any failure
// discards the session reference so the next call retries from scratch.
func (m *IMAPManager) acquire(ctx context.Context) (base.Client, error) {
	if m.client != nil && m.client.State()&imap.AuthenticatedState != 0 {
		return m.client, nil
	}

	env, err := m.loadEnv()
	if err != nil {
		return nil, err
	}

	// Stale or never connected: drop the old connection first. Close
	// failures are swallowed; the server side may already be gone.
	if m.client != nil {
		if err := m.client.Logout(); err != nil {
			m.logger.InfoContext(ctx, "discarding stale IMAP session", slog.Any("error", err))
		}
		m.client = nil
	}

	addr := env.Addr()
	m.logger.InfoContext(ctx, "connecting to IMAP server", slog.String("addr", addr))

	client, err := m.dialTLS(addr, m.tlsConfig)
	if err != nil {
		return nil, &base.ConnectionError{Server: addr, Cause: err}
	}

	if err := client.Login(env.User, env.Pass); err != nil {
		_ = client.Logout()
		return nil, &base.AuthenticationError{Server: addr, Response: err.Error()}
	}

	if client.State()&imap.AuthenticatedState == 0 {
		_ = client.Logout()
		return nil, &base.AuthenticationError{Server: addr, Response: "login accepted but session is not authenticated"}
	}

	m.logger.InfoContext(ctx, "authenticated with IMAP server", slog.String("addr", addr))
	m.client = client
	return m.client, nil
}

// Close logs out and clears the session, if any.
func (m *IMAPManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil
	}
	err := m.client.Logout()
	m.client = nil
	return err
}
