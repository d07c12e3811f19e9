package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/mail.v2"
)

// The relay endpoint is fixed; only the account comes from configuration.
const (
	SMTPHost = "smtp.gmail.com"
	SMTPPort = 587
	// SenderName is the display name on every outgoing contact email
	SenderName = "Synctom Contact Form"
)

// ErrNotConfigured is returned when a mail parameter is missing.
var ErrNotConfigured = errors.New("email service is not configured")

// Credentials identify the mail account used for relaying.
type Credentials struct {
	User string
	Pass string
}

// Message is an outgoing HTML email. The sender is always the transport's account.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Transport delivers messages through an SMTP server.
type Transport interface {
	// Verify connects and authenticates without sending anything
	Verify(ctx context.Context) error
	// Send delivers msg and returns its Message-ID
	Send(ctx context.Context, msg *Message) (string, error)
}

// TransportFactory builds a fresh transport for one request.
type TransportFactory func(creds Credentials) Transport

// SMTPTransport sends email with gopkg.in/mail.v2
type SMTPTransport struct {
	dialer *mail.Dialer
	from   string
}

// NewSMTPTransport configures a transport for the fixed relay endpoint.
// STARTTLS is used when offered and the server certificate is not verified.
func NewSMTPTransport(creds Credentials) Transport {
	return newSMTPTransport(SMTPHost, SMTPPort, creds)
}

func newSMTPTransport(host string, port int, creds Credentials) *SMTPTransport {
	d := mail.NewDialer(host, port, creds.User, creds.Pass)
	d.StartTLSPolicy = mail.OpportunisticStartTLS
	d.TLSConfig = &tls.Config{
		ServerName:         host,
		InsecureSkipVerify: true, //nolint:gosec // relay accepts self-signed certificates
	}
	// Failures are reported to the caller once, never retried
	d.RetryFailure = false

	return &SMTPTransport{
		dialer: d,
		from:   creds.User,
	}
}

func (t *SMTPTransport) Verify(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	conn, err := t.dialer.Dial()
	if err != nil {
		return fmt.Errorf("smtp verify: %w", err)
	}
	return conn.Close()
}

func (t *SMTPTransport) Send(ctx context.Context, msg *Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := newMessageID(t.from)

	m := mail.NewMessage()
	m.SetAddressHeader("From", t.from, SenderName)
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", id)
	m.SetBody("text/html", msg.HTML)

	if err := t.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}
	return id, nil
}

// newMessageID builds an RFC 5322 message id on the sender's domain.
func newMessageID(from string) string {
	domain := "localhost"
	if at := strings.LastIndex(from, "@"); at >= 0 && at < len(from)-1 {
		domain = from[at+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}
