package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewJWTService("test-secret", "data-diggers", "data-diggers-api")

	token, err := service.GenerateAccessToken("jane", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.Username != "jane" {
		t.Errorf("expected username jane, got %q", claims.Username)
	}
	if claims.Issuer != "data-diggers" {
		t.Errorf("issuer mismatch: %q", claims.Issuer)
	}
}

func TestExpiredToken(t *testing.T) {
	service := NewJWTService("test-secret", "data-diggers", "data-diggers-api")

	token, err := service.GenerateAccessToken("jane", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	_, err = service.ValidateToken(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestInvalidTokens(t *testing.T) {
	service := NewJWTService("test-secret", "data-diggers", "data-diggers-api")

	if _, err := service.ValidateToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token: expected ErrInvalidToken, got %v", err)
	}

	other := NewJWTService("different-secret", "data-diggers", "data-diggers-api")
	token, err := other.GenerateAccessToken("jane", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := service.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("wrong key: expected ErrInvalidToken, got %v", err)
	}
}

func TestExtractUsernameFromAuthHeader(t *testing.T) {
	service := NewJWTService("test-secret", "data-diggers", "data-diggers-api")
	token, err := service.GenerateAccessToken("jane", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer " + token, "jane", false},
		{"missing header", "", "", true},
		{"no bearer prefix", token, "", true},
		{"bearer with garbage", "Bearer nope", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := service.ExtractUsernameFromAuthHeader(tc.header)
			if tc.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("password stored in clear")
	}
	if !CheckPassword(hash, "hunter2") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "hunter3") {
		t.Error("wrong password accepted")
	}
}
