package mailops

import (
	"bytes"
	"io"
	"strings"

	"github.com/emersion/go-message/mail"
)

// parseStructure walks the MIME structure of a raw message. The first
// text/plain part becomes the body (default empty); every other leaf part
// contributes an attachment descriptor. Attachment content is not decoded,
// only filename and content type are kept.
func parseStructure(r io.Reader) (string, []Attachment) {
	attachments := []Attachment{}
	if r == nil {
		return "", attachments
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return "", attachments
	}

	mr, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		// Not parseable as a MIME message; treat the payload as the body.
		return string(raw), attachments
	}
	defer mr.Close()

	body := ""
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		switch h := part.Header.(type) {
		case *mail.InlineHeader:
			contentType, params, _ := h.ContentType()
			if strings.HasPrefix(contentType, "text/plain") {
				if body == "" {
					if data, readErr := io.ReadAll(part.Body); readErr == nil {
						body = string(data)
					}
				}
				continue
			}
			attachments = append(attachments, Attachment{
				Filename: params["name"],
				Type:     contentType,
			})

		case *mail.AttachmentHeader:
			filename, _ := h.Filename()
			contentType, _, _ := h.ContentType()
			attachments = append(attachments, Attachment{
				Filename: filename,
				Type:     contentType,
			})
		}
	}

	return body, attachments
}
