package session

import (
	"context"
	"crypto/tls"
	"log/slog"
	"sync"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"

	"github.com/mailgate/mailgate/internal/config"
	"github.com/mailgate/mailgate/pkg/base"
)

// SMTPManager guards the single SMTP session. Mirrors IMAPManager: one
// mutex scoping the whole acquire-then-use sequence, reconnect on staleness,
// discard the session reference on any acquire failure.
type SMTPManager struct {
	mu      sync.Mutex
	session base.SMTPSession

	dial    func(env config.SMTPEnv) (base.SMTPSession, error)
	loadEnv func() (config.SMTPEnv, error)
	logger  *slog.Logger
}

type SMTPOption func(*SMTPManager) error

func NewSMTPManager(opts ...SMTPOption) (*SMTPManager, error) {
	var mgr SMTPManager
	for _, opt := range opts {
		if err := opt(&mgr); err != nil {
			return nil, err
		}
	}

	if mgr.logger == nil {
		return nil, errors.New("requires logger")
	}

	if mgr.dial == nil {
		mgr.dial = dialStartTLS
	}

	if mgr.loadEnv == nil {
		mgr.loadEnv = config.SMTPFromEnv
	}

	return &mgr, nil
}

func WithSMTPLogger(logger *slog.Logger) SMTPOption {
	return func(mgr *SMTPManager) error {
		mgr.logger = logger
		return nil
	}
}

func WithSMTPDial(d func(env config.SMTPEnv) (base.SMTPSession, error)) SMTPOption {
	return func(mgr *SMTPManager) error {
		mgr.dial = d
		return nil
	}
}

func WithSMTPEnv(load func() (config.SMTPEnv, error)) SMTPOption {
	return func(mgr *SMTPManager) error {
		mgr.loadEnv = load
		return nil
	}
}

// dialStartTLS opens a plaintext connection, upgrades it with STARTTLS and
// authenticates with SASL PLAIN.
func dialStartTLS(env config.SMTPEnv) (base.SMTPSession, error) {
	addr := env.Addr()

	client, err := smtp.DialStartTLS(addr, &tls.Config{ServerName: env.Host})
	if err != nil {
		return nil, &base.ConnectionError{Server: addr, Cause: err}
	}

	if err := client.Auth(sasl.NewPlainClient("", env.User, env.Pass)); err != nil {
		_ = client.Quit()
		return nil, &base.AuthenticationError{Server: addr, Response: err.Error()}
	}

	return client, nil
}

// Do runs fn against an authenticated SMTP session, holding the session
// lock so concurrent sends are serialized onto the one connection.
func (m *SMTPManager) Do(ctx context.Context, fn func(s base.SMTPSession) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, err := m.acquire(ctx)
	if err != nil {
		return err
	}

	return fn(session)
}

// acquire returns a connected, authenticated session. Liveness is probed
// with NOOP; a dead session is quit best-effort and replaced.
func (m *SMTPManager) acquire(ctx context.Context) (base.SMTPSession, error) {
	if m.session != nil {
		if err := m.session.Noop(); err == nil {
			return m.session, nil
		}
		_ = m.session.Quit()
		m.session = nil
	}

	env, err := m.loadEnv()
	if err != nil {
		return nil, err
	}

	m.logger.InfoContext(ctx, "connecting to SMTP server", slog.String("addr", env.Addr()))

	session, err := m.dial(env)
	if err != nil {
		// The dial function already wraps its failures; keep the
		// session reference clear so the next call retries.
		return nil, err
	}

	m.logger.InfoContext(ctx, "authenticated with SMTP server", slog.String("addr", env.Addr()))
	m.session = session
	return m.session, nil
}

// Close quits and clears the session, if any.
func (m *SMTPManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return nil
	}
	err := m.session.Quit()
	m.session = nil
	return err
}
