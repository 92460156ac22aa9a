package mailops

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStructureSinglePart(t *testing.T) {
	raw := "Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		"Just the body."

	body, attachments := parseStructure(strings.NewReader(raw))
	assert.Equal(t, "Just the body.", body)
	assert.Equal(t, []Attachment{}, attachments)
}

func TestParseStructureKeepsFirstTextPart(t *testing.T) {
	raw := "Content-Type: multipart/alternative; boundary=b\r\n" +
		"\r\n" +
		"--b\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"first\r\n" +
		"--b\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"second\r\n" +
		"--b--\r\n"

	body, attachments := parseStructure(strings.NewReader(raw))
	assert.Equal(t, "first", body)
	assert.Empty(t, attachments)
}

func TestParseStructureCollectsAttachments(t *testing.T) {
	raw := "Content-Type: multipart/mixed; boundary=b\r\n" +
		"\r\n" +
		"--b\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"see attachments\r\n" +
		"--b\r\n" +
		"Content-Type: application/pdf\r\n" +
		"Content-Disposition: attachment; filename=\"report.pdf\"\r\n" +
		"\r\n" +
		"%PDF-1.4\r\n" +
		"--b\r\n" +
		"Content-Type: image/png; name=\"chart.png\"\r\n" +
		"Content-Disposition: inline\r\n" +
		"\r\n" +
		"PNG\r\n" +
		"--b--\r\n"

	body, attachments := parseStructure(strings.NewReader(raw))
	assert.Equal(t, "see attachments", body)
	require.Len(t, attachments, 2)
	assert.Equal(t, Attachment{Filename: "report.pdf", Type: "application/pdf"}, attachments[0])
	assert.Equal(t, Attachment{Filename: "chart.png", Type: "image/png"}, attachments[1])
}

func TestParseStructureFallsBackToRawPayload(t *testing.T) {
	body, attachments := parseStructure(strings.NewReader("not a mime message"))
	assert.Equal(t, "not a mime message", body)
	assert.Equal(t, []Attachment{}, attachments)
}

func TestParseStructureNilReader(t *testing.T) {
	body, attachments := parseStructure(nil)
	assert.Equal(t, "", body)
	assert.Equal(t, []Attachment{}, attachments)
}
