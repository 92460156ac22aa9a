package mailops

import (
	"context"
	"crypto/tls"
	"log/slog"
	"os"
	"testing"

	"github.com/emersion/go-imap"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mailgate/mailgate/internal/config"
	"github.com/mailgate/mailgate/pkg/base"
	"github.com/mailgate/mailgate/pkg/mock"
	"github.com/mailgate/mailgate/pkg/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

// testIMAPManager wires a session manager to the mock client and primes the
// login expectations every acquire needs.
func testIMAPManager(t *testing.T, mockClient *mock.MockClient) *session.IMAPManager {
	t.Helper()

	mockClient.EXPECT().Login("user@example.com", "hunter2").Return(nil)
	mockClient.EXPECT().State().Return(imap.ConnState(imap.AuthenticatedState)).AnyTimes()

	mgr, err := session.NewIMAPManager(
		session.WithIMAPLogger(testLogger()),
		session.WithIMAPEnv(func() (config.IMAPEnv, error) {
			return config.IMAPEnv{Host: "imap.example.com", Port: 993, User: "user@example.com", Pass: "hunter2"}, nil
		}),
		session.WithIMAPDialTLS(func(string, *tls.Config) (base.Client, error) {
			return mockClient, nil
		}),
	)
	require.NoError(t, err)
	return mgr
}

func TestNewMailboxes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mgr, err := session.NewIMAPManager(session.WithIMAPLogger(testLogger()))
	require.NoError(t, err)

	t.Run("requires session manager", func(t *testing.T) {
		_, err := NewMailboxes(nil, testLogger())
		assert.Error(t, err)
	})

	t.Run("requires logger", func(t *testing.T) {
		_, err := NewMailboxes(mgr, nil)
		assert.Error(t, err)
	})

	t.Run("successful creation", func(t *testing.T) {
		mailboxes, err := NewMailboxes(mgr, testLogger())
		require.NoError(t, err)
		assert.NotNil(t, mailboxes)
	})
}

func TestMailboxesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock.NewMockClient(ctrl)
	mockClient.EXPECT().
		List("", "*", gomock.Any()).
		DoAndReturn(func(_, _ string, ch chan *imap.MailboxInfo) error {
			defer close(ch)
			for _, name := range []string{"INBOX", "INBOX.Sent", "Archive"} {
				ch <- &imap.MailboxInfo{Name: name}
			}
			return nil
		})

	mailboxes, err := NewMailboxes(testIMAPManager(t, mockClient), testLogger())
	require.NoError(t, err)

	names, err := mailboxes.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"INBOX", "INBOX.Sent", "Archive"}, names, "server order is preserved")
}

func TestMailboxesListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock.NewMockClient(ctrl)
	mockClient.EXPECT().
		List("", "*", gomock.Any()).
		DoAndReturn(func(_, _ string, ch chan *imap.MailboxInfo) error {
			close(ch)
			return errors.New("NO LIST rejected")
		})

	mailboxes, err := NewMailboxes(testIMAPManager(t, mockClient), testLogger())
	require.NoError(t, err)

	_, err = mailboxes.List(context.Background())
	var protoErr *base.ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, "LIST", protoErr.Command)
}

func TestMailboxesCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock.NewMockClient(ctrl)
	mockClient.EXPECT().Create("Projects").Return(nil)

	mailboxes, err := NewMailboxes(testIMAPManager(t, mockClient), testLogger())
	require.NoError(t, err)

	status, err := mailboxes.Create(context.Background(), "Projects")
	require.NoError(t, err)
	assert.Equal(t, Status{Status: "success", Message: "Created mailbox Projects"}, status)
}

func TestMailboxesDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock.NewMockClient(ctrl)
	mockClient.EXPECT().Delete("Projects").Return(nil)
	mockClient.EXPECT().Delete("Nope").Return(errors.New("NO Mailbox does not exist"))

	mailboxes, err := NewMailboxes(testIMAPManager(t, mockClient), testLogger())
	require.NoError(t, err)

	ctx := context.Background()

	status, err := mailboxes.Delete(ctx, "Projects")
	require.NoError(t, err)
	assert.Equal(t, "Deleted mailbox Projects", status.Message)

	_, err = mailboxes.Delete(ctx, "Nope")
	var protoErr *base.ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, "DELETE Nope failed: NO Mailbox does not exist", err.Error())
}
