package auth

import (
	"errors"
	"testing"
)

func TestLoginSuccess(t *testing.T) {
	svc := NewService("admin", HashPassword("admin123"))
	if err := svc.Login("admin", "admin123"); err != nil {
		t.Fatalf("expected login success, got: %v", err)
	}
}

func TestLoginTrimsUsername(t *testing.T) {
	svc := NewService("admin", HashPassword("admin123"))
	if err := svc.Login("  admin ", "admin123"); err != nil {
		t.Fatalf("expected login success with padded username, got: %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewService("admin", HashPassword("admin123"))
	cases := []struct {
		name string
		user string
		pass string
	}{
		{"wrong password", "admin", "admin124"},
		{"wrong username", "root", "admin123"},
		{"both wrong", "root", "toor"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Login(tc.user, tc.pass)
			if err == nil || !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
			}
		})
	}
}

func TestHashPasswordIsStable(t *testing.T) {
	if HashPassword("admin123") != HashPassword("admin123") {
		t.Fatal("hash must be deterministic")
	}
	if HashPassword("admin123") == HashPassword("admin124") {
		t.Fatal("distinct passwords must not collide")
	}
}
