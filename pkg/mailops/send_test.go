package mailops

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mailgate/mailgate/internal/config"
	"github.com/mailgate/mailgate/pkg/base"
	"github.com/mailgate/mailgate/pkg/mock"
	"github.com/mailgate/mailgate/pkg/session"
)

type captureCloser struct {
	bytes.Buffer
	closed bool
}

func (c *captureCloser) Close() error {
	c.closed = true
	return nil
}

func testSMTPEnv() (config.SMTPEnv, error) {
	return config.SMTPEnv{Host: "smtp.example.com", Port: 587, User: "account@example.com", Pass: "hunter2"}, nil
}

func testSender(t *testing.T, mockSession base.SMTPSession, opts ...SenderOption) (*Sender, *int) {
	t.Helper()

	dials := 0
	mgr, err := session.NewSMTPManager(
		session.WithSMTPLogger(testLogger()),
		session.WithSMTPEnv(testSMTPEnv),
		session.WithSMTPDial(func(config.SMTPEnv) (base.SMTPSession, error) {
			dials++
			return mockSession, nil
		}),
	)
	require.NoError(t, err)

	opts = append([]SenderOption{WithSenderEnv(testSMTPEnv)}, opts...)
	sender, err := NewSender(mgr, testLogger(), opts...)
	require.NoError(t, err)
	return sender, &dials
}

func TestSenderSend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	capture := &captureCloser{}
	mockSession := mock.NewMockSMTPSession(ctrl)
	gomock.InOrder(
		mockSession.EXPECT().Mail("account@example.com", gomock.Nil()).Return(nil),
		mockSession.EXPECT().Rcpt("dest@example.com", gomock.Nil()).Return(nil),
		mockSession.EXPECT().Data().Return(capture, nil),
	)

	sender, dials := testSender(t, mockSession)

	status, err := sender.Send(context.Background(), SendRequest{
		To:      "dest@example.com",
		Subject: "Hello",
		Body:    "A short note.",
		Cc:      "null",
	})
	require.NoError(t, err)

	assert.Equal(t, Status{Status: "success", Message: "Email sent successfully"}, status)
	assert.Equal(t, 1, *dials)
	assert.True(t, capture.closed)

	// The submitted payload round-trips through the same MIME parsing the
	// read path uses.
	body, attachments := parseStructure(bytes.NewReader(capture.Bytes()))
	assert.Equal(t, "A short note.", body)
	assert.Empty(t, attachments)

	raw := capture.String()
	assert.Contains(t, raw, "Subject: Hello")
	assert.Contains(t, raw, "From: <account@example.com>")
	assert.Contains(t, raw, "To: <dest@example.com>")
	assert.NotContains(t, raw, "Cc:")
}

func TestSenderSendWithCcAndBcc(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	capture := &captureCloser{}
	mockSession := mock.NewMockSMTPSession(ctrl)
	gomock.InOrder(
		mockSession.EXPECT().Mail("account@example.com", gomock.Nil()).Return(nil),
		mockSession.EXPECT().Rcpt("dest@example.com", gomock.Nil()).Return(nil),
		mockSession.EXPECT().Rcpt("cc@example.com", gomock.Nil()).Return(nil),
		mockSession.EXPECT().Rcpt("bcc@example.com", gomock.Nil()).Return(nil),
		mockSession.EXPECT().Data().Return(capture, nil),
	)

	sender, _ := testSender(t, mockSession)

	_, err := sender.Send(context.Background(), SendRequest{
		To:      "dest@example.com",
		Subject: "Hello",
		Body:    "copies",
		Cc:      "cc@example.com",
		Bcc:     "bcc@example.com",
	})
	require.NoError(t, err)
}

func TestSenderSendWithAttachment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("meeting notes"), 0o600))

	capture := &captureCloser{}
	mockSession := mock.NewMockSMTPSession(ctrl)
	mockSession.EXPECT().Mail(gomock.Any(), gomock.Nil()).Return(nil)
	mockSession.EXPECT().Rcpt(gomock.Any(), gomock.Nil()).Return(nil)
	mockSession.EXPECT().Data().Return(capture, nil)

	sender, _ := testSender(t, mockSession)

	_, err := sender.Send(context.Background(), SendRequest{
		To:      "dest@example.com",
		Subject: "Notes",
		Body:    "Attached.",
		Attachments: []AttachmentRef{
			{Path: path, Filename: "notes.txt"},
		},
	})
	require.NoError(t, err)

	body, attachments := parseStructure(bytes.NewReader(capture.Bytes()))
	assert.Equal(t, "Attached.", body)
	require.Len(t, attachments, 1)
	assert.Equal(t, "notes.txt", attachments[0].Filename)
	assert.Equal(t, "application/octet-stream", attachments[0].Type)
}

func TestSenderRejectsInvalidAddresses(t *testing.T) {
	cases := []struct {
		name  string
		req   SendRequest
		field string
	}{
		{name: "bad to", req: SendRequest{To: "not-an-address"}, field: "to"},
		{name: "empty to", req: SendRequest{To: ""}, field: "to"},
		{name: "bad cc", req: SendRequest{To: "dest@example.com", Cc: "not-an-address"}, field: "cc"},
		{name: "bad bcc", req: SendRequest{To: "dest@example.com", Bcc: "not-an-address"}, field: "bcc"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sender, dials := testSender(t, nil)

			_, err := sender.Send(context.Background(), tc.req)

			var validationErr *base.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
			assert.Equal(t, 0, *dials, "validation failures must not touch the connection")
		})
	}
}

func TestSenderUnreadableAttachmentFailsBeforeSubmission(t *testing.T) {
	sender, dials := testSender(t, nil, WithSenderReadFile(func(name string) ([]byte, error) {
		return nil, errors.New("permission denied")
	}))

	_, err := sender.Send(context.Background(), SendRequest{
		To:          "dest@example.com",
		Subject:     "Notes",
		Body:        "Attached.",
		Attachments: []AttachmentRef{{Path: "/secret/notes.txt", Filename: "notes.txt"}},
	})

	var attachErr *base.AttachmentError
	require.ErrorAs(t, err, &attachErr)
	assert.Equal(t, "/secret/notes.txt", attachErr.Path)
	assert.Equal(t, 0, *dials)
}

func TestSenderRcptFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSession := mock.NewMockSMTPSession(ctrl)
	mockSession.EXPECT().Mail(gomock.Any(), gomock.Nil()).Return(nil)
	mockSession.EXPECT().Rcpt("dest@example.com", gomock.Nil()).Return(errors.New("550 mailbox unavailable"))

	sender, _ := testSender(t, mockSession)

	_, err := sender.Send(context.Background(), SendRequest{
		To:   "dest@example.com",
		Body: "hello",
	})

	var protoErr *base.ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, "RCPT TO dest@example.com", protoErr.Command)
	assert.Contains(t, protoErr.Response, "550")
}
