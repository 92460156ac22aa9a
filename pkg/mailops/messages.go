package mailops

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/emersion/go-imap"
	"github.com/pkg/errors"

	"github.com/mailgate/mailgate/pkg/base"
	"github.com/mailgate/mailgate/pkg/session"
)

// Messages implements the per-message operations. Each one acquires the
// IMAP session, selects the target folder, and runs its protocol script
// while holding the session for the whole sequence.
type Messages struct {
	session *session.IMAPManager
	logger  *slog.Logger
}

func NewMessages(mgr *session.IMAPManager, logger *slog.Logger) (*Messages, error) {
	if mgr == nil {
		return nil, errors.New("requires session manager")
	}
	if logger == nil {
		return nil, errors.New("requires logger")
	}
	return &Messages{session: mgr, logger: logger}, nil
}

// ListRecent returns header summaries for the last limit messages of the
// folder, ascending by sequence number. A non-positive limit returns all.
func (m *Messages) ListRecent(ctx context.Context, folder string, limit int) ([]MessageSummary, error) {
	summaries := []MessageSummary{}

	err := m.session.Do(ctx, func(s *session.IMAPSession) error {
		if _, err := s.Select(folder); err != nil {
			return err
		}

		seqNums, err := s.Client().Search(&imap.SearchCriteria{})
		if err != nil {
			return &base.ProtocolError{Command: "SEARCH ALL", Response: err.Error()}
		}

		// SEARCH returns ascending sequence numbers; the most recently
		// delivered messages are at the end.
		if limit > 0 && len(seqNums) > limit {
			seqNums = seqNums[len(seqNums)-limit:]
		}

		summaries, err = fetchSummaries(s.Client(), seqNums)
		return err
	})
	if err != nil {
		return nil, err
	}

	m.logger.InfoContext(ctx, "listed messages",
		slog.String("folder", folder), slog.Int("count", len(summaries)))
	return summaries, nil
}

// Search returns header summaries for every message in the folder whose
// text matches the query. No limit is applied.
func (m *Messages) Search(ctx context.Context, folder, query string) ([]MessageSummary, error) {
	summaries := []MessageSummary{}

	err := m.session.Do(ctx, func(s *session.IMAPSession) error {
		if _, err := s.Select(folder); err != nil {
			return err
		}

		seqNums, err := s.Client().Search(&imap.SearchCriteria{Text: []string{query}})
		if err != nil {
			return &base.ProtocolError{Command: "SEARCH TEXT", Response: err.Error()}
		}

		summaries, err = fetchSummaries(s.Client(), seqNums)
		return err
	})
	if err != nil {
		return nil, err
	}

	m.logger.InfoContext(ctx, "searched messages",
		slog.String("folder", folder), slog.Int("count", len(summaries)))
	return summaries, nil
}

// Read fetches the full message and parses its MIME structure into a plain
// text body and attachment metadata.
func (m *Messages) Read(ctx context.Context, folder, id string) (*MessageContent, error) {
	seqNum, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var content *MessageContent
	err = m.session.Do(ctx, func(s *session.IMAPSession) error {
		if _, err := s.Select(folder); err != nil {
			return err
		}

		seqset := new(imap.SeqSet)
		seqset.AddNum(seqNum)

		section := &imap.BodySectionName{}
		items := []imap.FetchItem{section.FetchItem(), imap.FetchEnvelope}

		ch := make(chan *imap.Message, 1)
		done := make(chan error, 1)
		go func() {
			done <- s.Client().Fetch(seqset, items, ch)
		}()

		var msg *imap.Message
		for fetched := range ch {
			msg = fetched
		}

		if err := <-done; err != nil {
			return &base.ProtocolError{
				Command:  fmt.Sprintf("FETCH %s", id),
				Response: err.Error(),
			}
		}
		if msg == nil {
			return &base.ProtocolError{
				Command:  fmt.Sprintf("FETCH %s", id),
				Response: "no message returned",
			}
		}

		body, attachments := parseStructure(msg.GetBody(section))
		content = &MessageContent{
			ID:          id,
			Body:        body,
			Attachments: attachments,
		}
		if env := msg.Envelope; env != nil {
			content.Subject = env.Subject
			content.From = formatAddresses(env.From)
			content.To = formatAddresses(env.To)
			content.Date = formatDate(env.Date)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return content, nil
}

// Move copies the message to the target folder, then deletes it from the
// source. The three protocol steps are not transactional: a failure after
// COPY leaves the message present in both folders (at-least-once copy).
func (m *Messages) Move(ctx context.Context, folder, id, targetFolder string) (Status, error) {
	seqNum, err := parseID(id)
	if err != nil {
		return Status{}, err
	}

	err = m.session.Do(ctx, func(s *session.IMAPSession) error {
		if _, err := s.Select(folder); err != nil {
			return err
		}

		seqset := new(imap.SeqSet)
		seqset.AddNum(seqNum)

		if err := s.Client().Copy(seqset, targetFolder); err != nil {
			return &base.ProtocolError{
				Command:  fmt.Sprintf("COPY %s %s", id, targetFolder),
				Response: err.Error(),
			}
		}

		return deleteAndExpunge(s.Client(), seqset, id)
	})
	if err != nil {
		return Status{}, err
	}

	return OK("Moved message %s to %s", id, targetFolder), nil
}

// Delete marks the message deleted and expunges the folder.
func (m *Messages) Delete(ctx context.Context, folder, id string) (Status, error) {
	seqNum, err := parseID(id)
	if err != nil {
		return Status{}, err
	}

	err = m.session.Do(ctx, func(s *session.IMAPSession) error {
		if _, err := s.Select(folder); err != nil {
			return err
		}

		seqset := new(imap.SeqSet)
		seqset.AddNum(seqNum)

		return deleteAndExpunge(s.Client(), seqset, id)
	})
	if err != nil {
		return Status{}, err
	}

	return OK("Deleted message %s", id), nil
}

// Mark applies the flag to the message. The flag carries its own protocol
// flag and direction; validation happened before any session use.
func (m *Messages) Mark(ctx context.Context, folder, id string, flag Flag) (Status, error) {
	seqNum, err := parseID(id)
	if err != nil {
		return Status{}, err
	}

	err = m.session.Do(ctx, func(s *session.IMAPSession) error {
		if _, err := s.Select(folder); err != nil {
			return err
		}

		seqset := new(imap.SeqSet)
		seqset.AddNum(seqNum)

		if err := s.Client().Store(seqset, flag.storeItem(), flag.storeValue(), nil); err != nil {
			return &base.ProtocolError{
				Command:  fmt.Sprintf("STORE %s", id),
				Response: err.Error(),
			}
		}
		return nil
	})
	if err != nil {
		return Status{}, err
	}

	return OK("Marked message %s as %s", id, flag.Name), nil
}

func deleteAndExpunge(c base.Client, seqset *imap.SeqSet, id string) error {
	item := imap.FormatFlagsOp(imap.AddFlags, true)
	value := []interface{}{imap.DeletedFlag}
	if err := c.Store(seqset, item, value, nil); err != nil {
		return &base.ProtocolError{
			Command:  fmt.Sprintf("STORE %s +FLAGS \\Deleted", id),
			Response: err.Error(),
		}
	}

	if err := c.Expunge(nil); err != nil {
		return &base.ProtocolError{Command: "EXPUNGE", Response: err.Error()}
	}
	return nil
}

func fetchSummaries(c base.Client, seqNums []uint32) ([]MessageSummary, error) {
	if len(seqNums) == 0 {
		return []MessageSummary{}, nil
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(seqNums...)

	ch := make(chan *imap.Message, 10)
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqset, []imap.FetchItem{imap.FetchEnvelope}, ch)
	}()

	summaries := []MessageSummary{}
	for msg := range ch {
		summary := MessageSummary{
			ID: strconv.FormatUint(uint64(msg.SeqNum), 10),
		}
		if env := msg.Envelope; env != nil {
			summary.Subject = env.Subject
			summary.From = formatAddresses(env.From)
			summary.To = formatAddresses(env.To)
			summary.Date = formatDate(env.Date)
		}
		summaries = append(summaries, summary)
	}

	if err := <-done; err != nil {
		return nil, &base.ProtocolError{Command: "FETCH", Response: err.Error()}
	}

	sort.Slice(summaries, func(i, j int) bool {
		a, _ := strconv.ParseUint(summaries[i].ID, 10, 32)
		b, _ := strconv.ParseUint(summaries[j].ID, 10, 32)
		return a < b
	})
	return summaries, nil
}

// parseID converts the caller-supplied identifier into a sequence number.
// Identifiers are only valid within the SELECT issued by the same
// operation; they are not durable keys.
func parseID(id string) (uint32, error) {
	seqNum, err := strconv.ParseUint(id, 10, 32)
	if err != nil || seqNum == 0 {
		return 0, &base.ValidationError{Field: "id", Reason: id}
	}
	return uint32(seqNum), nil
}

func formatAddresses(addrs []*imap.Address) string {
	out := ""
	for _, addr := range addrs {
		formatted := addr.Address()
		if addr.PersonalName != "" {
			formatted = fmt.Sprintf("%s <%s>", addr.PersonalName, addr.Address())
		}
		if out != "" {
			out += ", "
		}
		out += formatted
	}
	return out
}

func formatDate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(time.RFC1123Z)
}
