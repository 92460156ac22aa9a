package base

import (
	"io"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-smtp"
)

const ServiceName = "mailgate"

// Client is an interface to abstract the go-imap client methods used
type Client interface {
	Copy(seqset *imap.SeqSet, dest string) error
	Create(name string) error
	Delete(name string) error
	Expunge(ch chan uint32) error
	Fetch(seqset *imap.SeqSet, items []imap.FetchItem, ch chan *imap.Message) error
	List(ref, name string, ch chan *imap.MailboxInfo) error
	Login(username string, password string) error
	Logout() error
	Search(criteria *imap.SearchCriteria) (seqNums []uint32, err error)
	Select(name string, readOnly bool) (*imap.MailboxStatus, error)
	State() imap.ConnState
	Store(seqset *imap.SeqSet, item imap.StoreItem, value interface{}, ch chan *imap.Message) error
}

// SMTPSession is an interface to abstract the go-smtp client methods used.
// The session it describes is already authenticated; dialing and AUTH happen
// before a value of this type is handed out.
type SMTPSession interface {
	Noop() error
	Mail(from string, opts *smtp.MailOptions) error
	Rcpt(to string, opts *smtp.RcptOptions) error
	Data() (io.WriteCloser, error)
	Quit() error
}
