// Package mailops implements the folder and message operations of the tool
// surface as short IMAP/SMTP protocol scripts. Every message operation
// selects its target folder immediately before acting, inside a single
// session-manager callback, because sequence identifiers are only meaningful
// within the current selection.
package mailops

import "fmt"

// Status is the success envelope returned by mutating operations.
type Status struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func OK(format string, args ...interface{}) Status {
	return Status{Status: "success", Message: fmt.Sprintf(format, args...)}
}

// MessageSummary is the header-only view returned by list and search.
type MessageSummary struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	From    string `json:"from"`
	Date    string `json:"date"`
	To      string `json:"to"`
}

// Attachment describes an attachment by metadata only; content is not
// decoded on read.
type Attachment struct {
	Filename string `json:"filename"`
	Type     string `json:"type"`
}

// MessageContent is the full view returned by read.
type MessageContent struct {
	ID          string       `json:"id"`
	Subject     string       `json:"subject"`
	From        string       `json:"from"`
	To          string       `json:"to"`
	Date        string       `json:"date"`
	Body        string       `json:"body"`
	Attachments []Attachment `json:"attachments"`
}
