package mailops

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/emersion/go-imap"
	"github.com/pkg/errors"

	"github.com/mailgate/mailgate/pkg/base"
	"github.com/mailgate/mailgate/pkg/session"
)

// Mailboxes implements the folder operations on top of the IMAP session.
type Mailboxes struct {
	session *session.IMAPManager
	logger  *slog.Logger
}

func NewMailboxes(mgr *session.IMAPManager, logger *slog.Logger) (*Mailboxes, error) {
	if mgr == nil {
		return nil, errors.New("requires session manager")
	}
	if logger == nil {
		return nil, errors.New("requires logger")
	}
	return &Mailboxes{session: mgr, logger: logger}, nil
}

// List returns every folder name in the account, in server order.
func (m *Mailboxes) List(ctx context.Context) ([]string, error) {
	names := []string{}

	err := m.session.Do(ctx, func(s *session.IMAPSession) error {
		mailboxes := make(chan *imap.MailboxInfo, 10)
		done := make(chan error, 1)
		go func() {
			done <- s.Client().List("", "*", mailboxes)
		}()

		for info := range mailboxes {
			names = append(names, info.Name)
		}

		if err := <-done; err != nil {
			return &base.ProtocolError{Command: "LIST", Response: err.Error()}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.logger.InfoContext(ctx, "listed mailboxes", slog.Int("count", len(names)))
	return names, nil
}

// Create makes a new folder.
func (m *Mailboxes) Create(ctx context.Context, name string) (Status, error) {
	err := m.session.Do(ctx, func(s *session.IMAPSession) error {
		if err := s.Client().Create(name); err != nil {
			return &base.ProtocolError{
				Command:  fmt.Sprintf("CREATE %s", name),
				Response: err.Error(),
			}
		}
		return nil
	})
	if err != nil {
		return Status{}, err
	}

	return OK("Created mailbox %s", name), nil
}

// Delete removes a folder. Deleting a folder that does not exist surfaces
// the server's response text, not a crash.
func (m *Mailboxes) Delete(ctx context.Context, name string) (Status, error) {
	err := m.session.Do(ctx, func(s *session.IMAPSession) error {
		if err := s.Client().Delete(name); err != nil {
			return &base.ProtocolError{
				Command:  fmt.Sprintf("DELETE %s", name),
				Response: err.Error(),
			}
		}
		return nil
	})
	if err != nil {
		return Status{}, err
	}

	return OK("Deleted mailbox %s", name), nil
}
