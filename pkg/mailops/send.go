package mailops

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	netmail "net/mail"
	"os"
	"time"

	"github.com/emersion/go-message/mail"
	"github.com/pkg/errors"

	"github.com/mailgate/mailgate/internal/config"
	"github.com/mailgate/mailgate/pkg/base"
	"github.com/mailgate/mailgate/pkg/session"
)

// SendRequest describes an outbound message. To is required; Cc and Bcc are
// optional single addresses. Each attachment names a readable local file and
// the filename to present to the recipient.
type SendRequest struct {
	To          string          `json:"to"`
	Subject     string          `json:"subject"`
	Body        string          `json:"body"`
	Cc          string          `json:"cc,omitempty"`
	Bcc         string          `json:"bcc,omitempty"`
	Attachments []AttachmentRef `json:"attachments,omitempty"`
}

type AttachmentRef struct {
	Path     string `json:"path"`
	Filename string `json:"filename"`
}

// Sender implements send on top of the SMTP session. The From address is
// always the configured account user.
type Sender struct {
	session  *session.SMTPManager
	loadEnv  func() (config.SMTPEnv, error)
	readFile func(name string) ([]byte, error)
	logger   *slog.Logger
}

type SenderOption func(*Sender)

func NewSender(mgr *session.SMTPManager, logger *slog.Logger, opts ...SenderOption) (*Sender, error) {
	if mgr == nil {
		return nil, errors.New("requires session manager")
	}
	if logger == nil {
		return nil, errors.New("requires logger")
	}

	sender := &Sender{
		session:  mgr,
		loadEnv:  config.SMTPFromEnv,
		readFile: os.ReadFile,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(sender)
	}
	return sender, nil
}

func WithSenderEnv(load func() (config.SMTPEnv, error)) SenderOption {
	return func(s *Sender) { s.loadEnv = load }
}

func WithSenderReadFile(read func(name string) ([]byte, error)) SenderOption {
	return func(s *Sender) { s.readFile = read }
}

// Send validates the addresses, builds the multipart message, and submits
// it over the SMTP session. Validation failures return before any
// connection attempt; an unreadable attachment fails the whole send.
func (s *Sender) Send(ctx context.Context, req SendRequest) (Status, error) {
	to, err := parseAddress("to", req.To)
	if err != nil {
		return Status{}, err
	}

	cc, err := parseOptionalAddress("cc", req.Cc)
	if err != nil {
		return Status{}, err
	}

	bcc, err := parseOptionalAddress("bcc", req.Bcc)
	if err != nil {
		return Status{}, err
	}

	env, err := s.loadEnv()
	if err != nil {
		return Status{}, err
	}

	msg, err := buildMessage(env.User, to, cc, bcc, req, s.readFile)
	if err != nil {
		return Status{}, err
	}

	recipients := []string{to.Address}
	if cc != nil {
		recipients = append(recipients, cc.Address)
	}
	if bcc != nil {
		recipients = append(recipients, bcc.Address)
	}

	err = s.session.Do(ctx, func(c base.SMTPSession) error {
		if err := c.Mail(env.User, nil); err != nil {
			return &base.ProtocolError{Command: "MAIL FROM", Response: err.Error()}
		}

		for _, rcpt := range recipients {
			if err := c.Rcpt(rcpt, nil); err != nil {
				return &base.ProtocolError{Command: "RCPT TO " + rcpt, Response: err.Error()}
			}
		}

		wc, err := c.Data()
		if err != nil {
			return &base.ProtocolError{Command: "DATA", Response: err.Error()}
		}
		if _, err := wc.Write(msg); err != nil {
			_ = wc.Close()
			return &base.ProtocolError{Command: "DATA", Response: err.Error()}
		}
		return wc.Close()
	})
	if err != nil {
		return Status{}, err
	}

	s.logger.InfoContext(ctx, "sent email",
		slog.String("to", to.Address), slog.Int("attachments", len(req.Attachments)))
	return OK("Email sent successfully"), nil
}

func parseAddress(field, value string) (*netmail.Address, error) {
	addr, err := netmail.ParseAddress(value)
	if err != nil {
		return nil, &base.ValidationError{Field: field, Reason: value}
	}
	return addr, nil
}

// parseOptionalAddress treats empty and the literal "null" as absent; some
// tool callers serialize unset parameters that way.
func parseOptionalAddress(field, value string) (*netmail.Address, error) {
	if value == "" || value == "null" {
		return nil, nil
	}
	return parseAddress(field, value)
}

// buildMessage assembles a multipart MIME message: a text/plain body part
// plus one attachment part per reference.
func buildMessage(from string, to, cc, bcc *netmail.Address, req SendRequest, readFile func(string) ([]byte, error)) ([]byte, error) {
	var buf bytes.Buffer

	var h mail.Header
	h.SetDate(time.Now())
	h.SetSubject(req.Subject)
	h.SetAddressList("From", []*mail.Address{{Address: from}})
	h.SetAddressList("To", []*mail.Address{to})
	if cc != nil {
		h.SetAddressList("Cc", []*mail.Address{cc})
	}
	if bcc != nil {
		h.SetAddressList("Bcc", []*mail.Address{bcc})
	}

	mw, err := mail.CreateWriter(&buf, h)
	if err != nil {
		return nil, errors.Wrap(err, "creating message writer")
	}

	var th mail.InlineHeader
	th.SetContentType("text/plain", map[string]string{"charset": "utf-8"})
	tw, err := mw.CreateSingleInline(th)
	if err != nil {
		return nil, errors.Wrap(err, "creating body part")
	}
	if _, err := io.WriteString(tw, req.Body); err != nil {
		return nil, errors.Wrap(err, "writing body part")
	}
	if err := tw.Close(); err != nil {
		return nil, errors.Wrap(err, "closing body part")
	}

	for _, ref := range req.Attachments {
		data, err := readFile(ref.Path)
		if err != nil {
			return nil, &base.AttachmentError{Path: ref.Path, Cause: err}
		}

		var ah mail.AttachmentHeader
		ah.SetFilename(ref.Filename)
		ah.SetContentType("application/octet-stream", nil)

		aw, err := mw.CreateAttachment(ah)
		if err != nil {
			return nil, errors.Wrap(err, "creating attachment part")
		}
		if _, err := aw.Write(data); err != nil {
			return nil, errors.Wrap(err, "writing attachment part")
		}
		if err := aw.Close(); err != nil {
			return nil, errors.Wrap(err, "closing attachment part")
		}
	}

	if err := mw.Close(); err != nil {
		return nil, errors.Wrap(err, "closing message writer")
	}

	return buf.Bytes(), nil
}
