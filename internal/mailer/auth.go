package mailer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/wneessen/go-mail/smtp"
)

// authPreference is the order mechanisms are tried in, strongest first.
var authPreference = []string{"SCRAM-SHA-256", "SCRAM-SHA-1", "CRAM-MD5", "PLAIN", "LOGIN"}

// negotiatingAuth picks the first mechanism from authPreference that the
// server advertises after EHLO. Unlike go-mail's autodiscovery it also
// offers PLAIN and LOGIN on connections without TLS, since an empty
// secure mode means the administrator chose an unencrypted relay.
type negotiatingAuth struct {
	username string
	password string
	host     string

	chosen smtp.Auth
}

func newNegotiatingAuth(username, password, host string) *negotiatingAuth {
	return &negotiatingAuth{username: username, password: password, host: host}
}

func (a *negotiatingAuth) Start(server *smtp.ServerInfo) (string, []byte, error) {
	for _, mech := range authPreference {
		if !slices.ContainsFunc(server.Auth, func(s string) bool { return strings.EqualFold(s, mech) }) {
			continue
		}
		a.chosen = a.mechanism(mech)
		return a.chosen.Start(server)
	}

	return "", nil, fmt.Errorf("%w: server offers %q", ErrNoAuthMechanism, strings.Join(server.Auth, " "))
}

func (a *negotiatingAuth) Next(fromServer []byte, more bool) ([]byte, error) {
	if a.chosen == nil {
		return nil, ErrNoAuthMechanism
	}
	return a.chosen.Next(fromServer, more)
}

func (a *negotiatingAuth) mechanism(name string) smtp.Auth {
	switch name {
	case "SCRAM-SHA-256":
		return smtp.ScramSHA256Auth(a.username, a.password)
	case "SCRAM-SHA-1":
		return smtp.ScramSHA1Auth(a.username, a.password)
	case "CRAM-MD5":
		return smtp.CRAMMD5Auth(a.username, a.password)
	case "PLAIN":
		return smtp.PlainAuth("", a.username, a.password, a.host, true)
	default:
		return smtp.LoginAuth(a.username, a.password, a.host, true)
	}
}
