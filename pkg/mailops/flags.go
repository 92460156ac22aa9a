package mailops

import (
	"github.com/emersion/go-imap"

	"github.com/mailgate/mailgate/pkg/base"
)

// Flag is a mark operation expressed as data: the underlying protocol flag
// plus the direction it is applied in. The four valid names map onto the two
// two-state IMAP flags Seen and Flagged.
type Flag struct {
	Name     string
	imapFlag string
	remove   bool
}

var knownFlags = map[string]Flag{
	"read":      {Name: "read", imapFlag: imap.SeenFlag},
	"unread":    {Name: "unread", imapFlag: imap.SeenFlag, remove: true},
	"flagged":   {Name: "flagged", imapFlag: imap.FlaggedFlag},
	"unflagged": {Name: "unflagged", imapFlag: imap.FlaggedFlag, remove: true},
}

// ParseFlag resolves a caller-supplied flag name. Unknown names fail
// validation before any protocol traffic is issued.
func ParseFlag(name string) (Flag, error) {
	flag, ok := knownFlags[name]
	if !ok {
		return Flag{}, &base.ValidationError{Field: "flag", Reason: name}
	}
	return flag, nil
}

func (f Flag) storeItem() imap.StoreItem {
	op := imap.FlagsOp(imap.AddFlags)
	if f.remove {
		op = imap.RemoveFlags
	}
	return imap.FormatFlagsOp(op, true)
}

func (f Flag) storeValue() []interface{} {
	return []interface{}{f.imapFlag}
}
