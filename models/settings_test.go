package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_OptionsRoundTrip(t *testing.T) {
	s := Settings{
		Host:       "smtp.example.com",
		Port:       587,
		Auth:       true,
		Username:   "user@example.com",
		Secure:     SecureTLS,
		FromEmail:  "noreply@example.com",
		FromName:   "Example",
		Debug:      2,
		Password:   "Y2lwaGVy",
		PasswordIV: "aXY=",
	}

	got := SettingsFromOptions(s.Options())

	assert.Equal(t, s, got)
}

func TestSettingsFromOptions_MissingKeysAreZero(t *testing.T) {
	got := SettingsFromOptions(Options{})

	assert.Equal(t, Settings{}, got)
}

func TestSettingsFromOptions_NegativePortIsZero(t *testing.T) {
	got := SettingsFromOptions(Options{OptionPort: "-25"})

	assert.Zero(t, got.Port)
}

func TestSettings_Redacted(t *testing.T) {
	s := Settings{Host: "h", Password: "c", PasswordIV: "i"}

	r := s.Redacted()

	assert.Empty(t, r.Password)
	assert.Empty(t, r.PasswordIV)
	assert.True(t, r.PasswordSet)
	assert.Equal(t, "h", r.Host)

	assert.False(t, Settings{}.Redacted().PasswordSet)
}

func TestOptions_Bool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"ON", true},
		{"yes", true},
		{"0", false},
		{"", false},
		{"false", false},
		{"garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			o := Options{"k": tt.value}
			assert.Equal(t, tt.want, o.Bool("k"))
		})
	}
}

func TestOptions_IntAndHas(t *testing.T) {
	o := Options{"port": " 465 ", "bad": "x", "empty": ""}

	assert.Equal(t, 465, o.Int("port"))
	assert.Equal(t, 0, o.Int("bad"))
	assert.Equal(t, 0, o.Int("absent"))
	assert.True(t, o.Has("empty"))
	assert.False(t, o.Has("absent"))
}

func TestOptions_CloneIsIndependent(t *testing.T) {
	o := Options{"a": "1"}
	c := o.Clone()
	c["a"] = "2"

	assert.Equal(t, "1", o["a"])
}

func TestSplitEnvelope(t *testing.T) {
	e, ok := SplitEnvelope("Y2lwaGVy::aXY=")
	require.True(t, ok)
	assert.Equal(t, Envelope{Ciphertext: "Y2lwaGVy", IV: "aXY="}, e)
	assert.Equal(t, "Y2lwaGVy::aXY=", e.String())

	_, ok = SplitEnvelope("no-separator")
	assert.False(t, ok)

	_, ok = SplitEnvelope("a::b::c")
	assert.False(t, ok)
}

func TestSecureMode_IsValid(t *testing.T) {
	assert.True(t, SecureNone.IsValid())
	assert.True(t, SecureSSL.IsValid())
	assert.True(t, SecureTLS.IsValid())
	assert.False(t, SecureMode("starttls").IsValid())
}

func TestSecretsBundle_MissingAndConcat(t *testing.T) {
	b := SecretsBundle{
		SecretAuthKey:       "a",
		SecretSecureAuthKey: "b",
	}

	missing := b.Missing()
	assert.Len(t, missing, len(SecretNames)-2)
	assert.NotContains(t, missing, SecretAuthKey)
	assert.Contains(t, missing, SecretNonceSalt)

	assert.Equal(t, "ab", b.Concat(SecretAuthKey, SecretSecureAuthKey, SecretNonceKey))
	assert.Equal(t, "ba", b.Concat(SecretSecureAuthKey, SecretAuthKey))
}
