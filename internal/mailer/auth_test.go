package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail/smtp"
)

func TestNegotiatingAuth_Start(t *testing.T) {
	tests := []struct {
		name       string
		advertised []string
		tls        bool
		wantMech   string
		wantErr    error
	}{
		{name: "login only", advertised: []string{"LOGIN"}, wantMech: "LOGIN"},
		{name: "login only, lowercase", advertised: []string{"login"}, wantMech: "LOGIN"},
		{name: "plain preferred over login", advertised: []string{"LOGIN", "PLAIN"}, wantMech: "PLAIN"},
		{name: "cram-md5 preferred over plain", advertised: []string{"PLAIN", "CRAM-MD5"}, wantMech: "CRAM-MD5"},
		{name: "scram preferred", advertised: []string{"PLAIN", "SCRAM-SHA-1", "SCRAM-SHA-256"}, wantMech: "SCRAM-SHA-256"},
		{name: "plain over tls", advertised: []string{"PLAIN"}, tls: true, wantMech: "PLAIN"},
		{name: "nothing usable", advertised: []string{"XOAUTH2"}, wantErr: ErrNoAuthMechanism},
		{name: "nothing advertised", wantErr: ErrNoAuthMechanism},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newNegotiatingAuth("user", "s3cret", "smtp.example.com")

			mech, _, err := a.Start(&smtp.ServerInfo{Name: "smtp.example.com", TLS: tt.tls, Auth: tt.advertised})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMech, mech)
		})
	}
}

func TestNegotiatingAuth_LoginExchange(t *testing.T) {
	a := newNegotiatingAuth("user", "s3cret", "smtp.example.com")

	mech, initial, err := a.Start(&smtp.ServerInfo{Name: "smtp.example.com", Auth: []string{"LOGIN"}})
	require.NoError(t, err)
	assert.Equal(t, "LOGIN", mech)
	assert.Empty(t, initial)

	resp, err := a.Next([]byte("Username:"), true)
	require.NoError(t, err)
	assert.Equal(t, "user", string(resp))

	resp, err = a.Next([]byte("Password:"), true)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", string(resp))

	resp, err = a.Next(nil, false)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestNegotiatingAuth_NextBeforeStart(t *testing.T) {
	_, err := newNegotiatingAuth("u", "p", "h").Next(nil, true)
	assert.ErrorIs(t, err, ErrNoAuthMechanism)
}
