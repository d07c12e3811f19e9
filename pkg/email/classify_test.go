package email

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/textproto"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"invalid login text", errors.New("Invalid login: 535-5.7.8 Username and Password not accepted"), MsgAuthFailed},
		{"smtp 535 reply", fmt.Errorf("smtp verify: %w", &textproto.Error{Code: 535, Msg: "5.7.8 Authentication failed"}), MsgAuthFailed},
		{"smtp 550 reply", &textproto.Error{Code: 550, Msg: "mailbox unavailable"}, MsgSendFailed},
		{"enotfound text", errors.New("getaddrinfo ENOTFOUND smtp.gmail.com"), MsgHostNotFound},
		{"dns not found", &net.OpError{Op: "dial", Net: "tcp", Err: &net.DNSError{Name: "smtp.gmail.com", Err: "no such host", IsNotFound: true}}, MsgHostNotFound},
		{"etimedout text", errors.New("connect ETIMEDOUT 142.250.0.1:587"), MsgTimeout},
		{"deadline exceeded", fmt.Errorf("read: %w", os.ErrDeadlineExceeded), MsgTimeout},
		{"context deadline", context.DeadlineExceeded, MsgTimeout},
		{"unknown", errors.New("connection reset by peer"), MsgSendFailed},
		{"nil", nil, MsgSendFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyError(tc.err))
		})
	}
}

func TestClassifyErrorPrefersAuth(t *testing.T) {
	err := errors.New("Invalid login after ETIMEDOUT")
	assert.Equal(t, MsgAuthFailed, ClassifyError(err))
}
