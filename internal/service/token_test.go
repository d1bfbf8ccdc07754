package service

import (
	"errors"
	"testing"
	"time"
)

func TestTokenCodecRoundTrip(t *testing.T) {
	codec := NewTokenCodec("super-secret", time.Hour)

	token, err := codec.Sign("user-123")
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}

	user, err := codec.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if user.ID != "user-123" {
		t.Fatalf("Parse() user id = %q, want %q", user.ID, "user-123")
	}
}

func TestTokenCodecWrongSecret(t *testing.T) {
	signer := NewTokenCodec("secret-a", time.Hour)
	verifier := NewTokenCodec("secret-b", time.Hour)

	token, err := signer.Sign("u1")
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}

	_, err = verifier.Parse(token)
	if !errors.Is(err, ErrTokenSignature) {
		t.Fatalf("Parse() error = %v, want ErrTokenSignature", err)
	}
}

func TestTokenCodecExpired(t *testing.T) {
	codec := NewTokenCodec("secret", -time.Second)

	token, err := codec.Sign("u1")
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}

	_, err = codec.Parse(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("Parse() error = %v, want ErrTokenExpired", err)
	}
}

func TestTokenCodecMalformed(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
		{name: "two-segments", token: "aaaa.bbbb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := codec.Parse(tt.token); !errors.Is(err, ErrTokenMalformed) {
				t.Fatalf("Parse(%q) error = %v, want ErrTokenMalformed", tt.token, err)
			}
		})
	}
}

func TestTokenCodecTruncated(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	token, err := codec.Sign("u1")
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}

	if _, err := codec.Parse(token[:len(token)-1]); err == nil {
		t.Fatal("Parse() accepted a truncated token")
	}
}
