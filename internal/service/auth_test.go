package service

import (
	"context"
	"strings"
	"testing"

	"github.com/spotifaux/spotifaux-go/internal/crypto"
	"github.com/spotifaux/spotifaux-go/internal/model"
)

func TestSignup_Success(t *testing.T) {
	svc, repo := newTestAuthService(t)

	resp, err := svc.Signup(context.Background(), model.SignupRequest{
		Email:    "a@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}

	want := model.UserResponse{ID: 1, Email: "a@x.com", Name: "a", Role: "user"}
	if resp.User != want {
		t.Errorf("Signup() user = %+v, want %+v", resp.User, want)
	}
	if resp.TokenType != "bearer" {
		t.Errorf("TokenType = %q, want bearer", resp.TokenType)
	}

	uid, err := crypto.UserIDFromToken(resp.AccessToken, "test-secret")
	if err != nil || uid != 1 {
		t.Errorf("token subject = %d, %v; want 1", uid, err)
	}

	stored, err := repo.GetByEmail(context.Background(), "A@X.COM")
	if err != nil {
		t.Fatalf("GetByEmail() unexpected error: %v", err)
	}
	if stored.PasswordHash == "secret1" || !crypto.VerifyPassword("secret1", stored.PasswordHash) {
		t.Error("stored password hash does not verify")
	}
}

func TestSignup_NormalizesEmailAndKeepsName(t *testing.T) {
	svc, _ := newTestAuthService(t)

	resp, err := svc.Signup(context.Background(), model.SignupRequest{
		Email:    "  Mixed.Case@Example.COM ",
		Password: "secret1",
		Name:     "Mixed",
	})
	if err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}
	if resp.User.Email != "mixed.case@example.com" {
		t.Errorf("Email = %q, want normalized", resp.User.Email)
	}
	if resp.User.Name != "Mixed" {
		t.Errorf("Name = %q, want %q", resp.User.Name, "Mixed")
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, model.SignupRequest{Email: "a@x.com", Password: "secret1"}); err != nil {
		t.Fatal(err)
	}
	_, err := svc.Signup(ctx, model.SignupRequest{Email: "A@x.com", Password: "another1"})
	if err != ErrEmailTaken {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
	if repo.Count() != 1 {
		t.Errorf("Count() = %d, want 1", repo.Count())
	}
}

func TestSignup_ShortPassword(t *testing.T) {
	svc, repo := newTestAuthService(t)

	for _, pw := range []string{"", "12345", "ñañañ"} {
		_, err := svc.Signup(context.Background(), model.SignupRequest{Email: "a@x.com", Password: pw})
		if err != ErrPasswordTooShort {
			t.Errorf("Signup(%q) error = %v, want ErrPasswordTooShort", pw, err)
		}
	}
	if repo.Count() != 0 {
		t.Error("rejected signup stored a user")
	}

	// Six characters, more than six bytes.
	if _, err := svc.Signup(context.Background(), model.SignupRequest{Email: "a@x.com", Password: "ñañaña"}); err != nil {
		t.Errorf("Signup() with 6-rune password error = %v", err)
	}
}

func TestSignup_AssignsSequentialIDs(t *testing.T) {
	svc, _ := newTestAuthService(t)

	for i, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		resp, err := svc.Signup(context.Background(), model.SignupRequest{Email: email, Password: "secret1"})
		if err != nil {
			t.Fatal(err)
		}
		if resp.User.ID != int64(i+1) {
			t.Errorf("user %s got id %d, want %d", email, resp.User.ID, i+1)
		}
	}
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, model.SignupRequest{Email: "a@x.com", Password: "secret1"}); err != nil {
		t.Fatal(err)
	}

	resp, err := svc.Login(ctx, model.LoginRequest{Email: "A@X.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if resp.User.ID != 1 || resp.AccessToken == "" {
		t.Errorf("Login() = %+v", resp)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, model.SignupRequest{Email: "a@x.com", Password: "secret1"}); err != nil {
		t.Fatal(err)
	}

	cases := []model.LoginRequest{
		{Email: "a@x.com", Password: "secret2"},
		{Email: "a@x.com", Password: strings.ToUpper("secret1")},
		{Email: "nobody@x.com", Password: "secret1"},
	}
	for _, req := range cases {
		if _, err := svc.Login(ctx, req); err != ErrInvalidCredentials {
			t.Errorf("Login(%+v) error = %v, want ErrInvalidCredentials", req, err)
		}
	}
}
