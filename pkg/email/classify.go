package email

import (
	"context"
	"errors"
	"net"
	"net/textproto"
	"os"
	"strings"
)

// Client-facing failure messages.
const (
	MsgAuthFailed    = "Email authentication failed. Please check your credentials."
	MsgHostNotFound  = "Email server connection failed."
	MsgTimeout       = "Email server timeout. Please try again."
	MsgSendFailed    = "Failed to send email"
	MsgNotConfigured = "Email configuration error"
	MsgVerifyFailed  = "Email service configuration error"
)

type errorClass struct {
	message string
	markers []string
	match   func(error) bool
}

// errorClasses are checked in order. markers are substrings of the error text.
var errorClasses = []errorClass{
	{
		message: MsgAuthFailed,
		markers: []string{"Invalid login"},
		match:   isAuthError,
	},
	{
		message: MsgHostNotFound,
		markers: []string{"ENOTFOUND", "no such host"},
		match:   isHostNotFound,
	},
	{
		message: MsgTimeout,
		markers: []string{"ETIMEDOUT", "i/o timeout"},
		match:   isTimeout,
	},
}

// ClassifyError maps a delivery error to the message shown to the client.
func ClassifyError(err error) string {
	if err == nil {
		return MsgSendFailed
	}
	text := err.Error()
	for _, class := range errorClasses {
		if class.match(err) {
			return class.message
		}
		for _, marker := range class.markers {
			if strings.Contains(text, marker) {
				return class.message
			}
		}
	}
	return MsgSendFailed
}

// isAuthError matches SMTP 535 (credentials rejected) and 534 (auth mechanism refused).
func isAuthError(err error) bool {
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		return protoErr.Code == 535 || protoErr.Code == 534
	}
	return false
}

func isHostNotFound(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr) && dnsErr.IsNotFound
}

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
