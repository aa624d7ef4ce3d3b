package utils

import (
	"testing"
	"time"
)

func TestGenerateAndValidateJWTToken(t *testing.T) {
	token, err := GenerateJWTToken("go-smtp-mailer", "admin", time.Hour, "sign-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Fatal("expected non-empty SignedString")
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "sign-key", "go-smtp-mailer")
	if err != nil {
		t.Fatalf("expected token to validate, got: %v", err)
	}
	if parsed.Login != "admin" {
		t.Errorf("expected login admin, got %q", parsed.Login)
	}
	if parsed.Issuer != "go-smtp-mailer" {
		t.Errorf("expected issuer go-smtp-mailer, got %q", parsed.Issuer)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		login    string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "admin", time.Hour, "key"},
		{"empty login", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "admin", 0, "key"},
		{"empty key", "iss", "admin", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, tt.login, tt.duration, tt.key); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken("iss", "admin", time.Hour, "key")
	if err != nil {
		t.Fatal(err)
	}
	expired, err := GenerateJWTToken("iss", "admin", time.Nanosecond, "key")
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Second)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other", "iss"},
		{"wrong issuer", valid.SignedString, "key", "other"},
		{"expired", expired.SignedString, "key", "iss"},
		{"garbage", "not.a.token", "key", "iss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	got, err := ParseBearerToken("Bearer abc.def.ghi")
	if err != nil || got != "abc.def.ghi" {
		t.Fatalf("got %q, %v", got, err)
	}

	for _, h := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		if _, err := ParseBearerToken(h); err == nil {
			t.Errorf("expected error for %q", h)
		}
	}
}

func TestParseSubjectFromJWT(t *testing.T) {
	token, err := GenerateJWTToken("iss", "operator", time.Hour, "key")
	if err != nil {
		t.Fatal(err)
	}

	sub, err := ParseSubjectFromJWT(token.SignedString)
	if err != nil || sub != "operator" {
		t.Fatalf("got %q, %v", sub, err)
	}
}
