// Package config loads the email account settings from the process
// environment. The same user/password pair authenticates both protocols;
// hosts and ports are per-protocol with the conventional defaults.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/mailgate/mailgate/pkg/base"
)

const (
	envEmailUser = "EMAIL_USER"
	envEmailPass = "EMAIL_PASSWORD"
	envIMAPHost  = "IMAP_HOST"
	envIMAPPort  = "IMAP_PORT"
	envSMTPHost  = "SMTP_HOST"
	envSMTPPort  = "SMTP_PORT"

	defaultIMAPPort = 993
	defaultSMTPPort = 587
)

// IMAPEnv holds the IMAP connection details from environment variables.
type IMAPEnv struct {
	Host string
	Port int
	User string
	Pass string
}

// SMTPEnv holds the SMTP connection details from environment variables.
type SMTPEnv struct {
	Host string
	Port int
	User string
	Pass string
}

func (e IMAPEnv) Addr() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

func (e SMTPEnv) Addr() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// IMAPFromEnv loads IMAP connection details and validates required entries.
func IMAPFromEnv() (IMAPEnv, error) {
	missing := []string{}

	host := strings.TrimSpace(os.Getenv(envIMAPHost))
	if host == "" {
		missing = append(missing, envIMAPHost)
	}

	user, pass, userMissing := credsFromEnv()
	missing = append(missing, userMissing...)

	if len(missing) > 0 {
		return IMAPEnv{}, &base.ConfigurationError{Missing: missing}
	}

	port, err := portFromEnv(envIMAPPort, defaultIMAPPort)
	if err != nil {
		return IMAPEnv{}, err
	}

	return IMAPEnv{Host: host, Port: port, User: user, Pass: pass}, nil
}

// SMTPFromEnv loads SMTP connection details and validates required entries.
func SMTPFromEnv() (SMTPEnv, error) {
	missing := []string{}

	host := strings.TrimSpace(os.Getenv(envSMTPHost))
	if host == "" {
		missing = append(missing, envSMTPHost)
	}

	user, pass, userMissing := credsFromEnv()
	missing = append(missing, userMissing...)

	if len(missing) > 0 {
		return SMTPEnv{}, &base.ConfigurationError{Missing: missing}
	}

	port, err := portFromEnv(envSMTPPort, defaultSMTPPort)
	if err != nil {
		return SMTPEnv{}, err
	}

	return SMTPEnv{Host: host, Port: port, User: user, Pass: pass}, nil
}

func credsFromEnv() (user, pass string, missing []string) {
	user = strings.TrimSpace(os.Getenv(envEmailUser))
	if user == "" {
		missing = append(missing, envEmailUser)
	}

	pass = os.Getenv(envEmailPass)
	if pass == "" {
		missing = append(missing, envEmailPass)
	}

	return user, pass, missing
}

func portFromEnv(name string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}

	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}

	return port, nil
}

// Summary returns a concise description of the configured account for
// validation runs. Secrets are reported as set/unset only.
func Summary() string {
	return fmt.Sprintf(
		"Email account configuration\n"+
			"- %s: %s\n"+
			"- %s: %s\n"+
			"- IMAP: %s:%s\n"+
			"- SMTP: %s:%s",
		envEmailUser, setOrNot(os.Getenv(envEmailUser) != ""),
		envEmailPass, setOrNot(os.Getenv(envEmailPass) != ""),
		defaultIfEmpty(os.Getenv(envIMAPHost), "(not set)"),
		defaultIfEmpty(os.Getenv(envIMAPPort), strconv.Itoa(defaultIMAPPort)),
		defaultIfEmpty(os.Getenv(envSMTPHost), "(not set)"),
		defaultIfEmpty(os.Getenv(envSMTPPort), strconv.Itoa(defaultSMTPPort)),
	)
}

func setOrNot(set bool) string {
	if set {
		return "set"
	}
	return "(not set)"
}

func defaultIfEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
