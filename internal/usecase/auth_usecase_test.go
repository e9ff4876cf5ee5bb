package usecase

import (
	"context"
	"errors"
	"testing"

	"career-coach/internal/domain/user"
	"career-coach/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockJWT struct {
	claims      jwt.Claims
	validateErr error
	generateErr error
}

func (m *mockJWT) GenerateAccessToken(userID uuid.UUID, _ string) (string, error) {
	if m.generateErr != nil {
		return "", m.generateErr
	}
	return "access-" + userID.String(), nil
}

func (m *mockJWT) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	if m.generateErr != nil {
		return "", m.generateErr
	}
	return "refresh-" + userID.String(), nil
}

func (m *mockJWT) ValidateToken(_ string) (jwt.Claims, error) {
	if m.validateErr != nil {
		return jwt.Claims{}, m.validateErr
	}
	return m.claims, nil
}

func (m *mockJWT) IsRefreshToken(claims jwt.Claims) bool {
	return claims.TokenType == jwt.TokenTypeRefresh
}

func TestRegister_Success(t *testing.T) {
	users := newMockUserRepo()
	auth := NewAuthUsecase(users, &mockJWT{})

	usr, access, refresh, err := auth.Register(context.Background(), RegisterInput{
		Email:    "  Dev@Example.com ",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.Email != "dev@example.com" {
		t.Fatalf("email not normalized: %q", usr.Email)
	}
	if usr.PasswordHash != "" {
		t.Fatal("password hash must not leak")
	}
	if access == "" || refresh == "" {
		t.Fatal("expected both tokens")
	}

	stored, err := users.GetByEmail(context.Background(), "dev@example.com")
	if err != nil {
		t.Fatalf("stored user lookup: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")) != nil {
		t.Fatal("stored hash does not match the password")
	}
}

func TestRegister_Validation(t *testing.T) {
	auth := NewAuthUsecase(newMockUserRepo(), &mockJWT{})

	cases := map[string]RegisterInput{
		"empty email":    {Email: "  ", Password: "s3cret-pass"},
		"short password": {Email: "dev@example.com", Password: "short"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, _, _, err := auth.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	users := newMockUserRepo()
	users.existsByEmail = true
	auth := NewAuthUsecase(users, &mockJWT{})

	_, _, _, err := auth.Register(context.Background(), RegisterInput{Email: "dev@example.com", Password: "s3cret-pass"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_SignupRaceOnUniqueEmail(t *testing.T) {
	users := newMockUserRepo()
	users.createErr = errors.New("duplicate key value violates unique constraint")
	users.existsByEmail = true
	auth := NewAuthUsecase(users, &mockJWT{})

	_, _, _, err := auth.Register(context.Background(), RegisterInput{Email: "dev@example.com", Password: "s3cret-pass"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered after losing the race, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	existing := user.User{ID: uuid.New(), Email: "dev@example.com", PasswordHash: string(hash)}
	auth := NewAuthUsecase(newMockUserRepo(existing), &mockJWT{})

	usr, access, refresh, err := auth.Login(context.Background(), LoginInput{Email: "Dev@Example.com", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.ID != existing.ID {
		t.Fatal("wrong user returned")
	}
	if usr.PasswordHash != "" {
		t.Fatal("password hash must not leak")
	}
	if access == "" || refresh == "" {
		t.Fatal("expected both tokens")
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	existing := user.User{ID: uuid.New(), Email: "dev@example.com", PasswordHash: string(hash)}
	auth := NewAuthUsecase(newMockUserRepo(existing), &mockJWT{})

	cases := map[string]LoginInput{
		"wrong password": {Email: "dev@example.com", Password: "wrong-pass"},
		"unknown email":  {Email: "ghost@example.com", Password: "s3cret-pass"},
		"empty password": {Email: "dev@example.com", Password: ""},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, _, _, err := auth.Login(context.Background(), in); !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestRefresh_Success(t *testing.T) {
	existing := user.User{ID: uuid.New(), Email: "dev@example.com"}
	jwtSvc := &mockJWT{claims: jwt.Claims{UserID: existing.ID, TokenType: jwt.TokenTypeRefresh}}
	auth := NewAuthUsecase(newMockUserRepo(existing), jwtSvc)

	access, refresh, err := auth.Refresh(context.Background(), "some-refresh-token")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("expected fresh token pair")
	}
}

func TestRefresh_Failures(t *testing.T) {
	existing := user.User{ID: uuid.New(), Email: "dev@example.com"}

	t.Run("empty token", func(t *testing.T) {
		auth := NewAuthUsecase(newMockUserRepo(existing), &mockJWT{})
		if _, _, err := auth.Refresh(context.Background(), ""); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		auth := NewAuthUsecase(newMockUserRepo(existing), &mockJWT{validateErr: jwt.ErrTokenExpired})
		if _, _, err := auth.Refresh(context.Background(), "tok"); !errors.Is(err, ErrRefreshTokenExpired) {
			t.Fatalf("expected ErrRefreshTokenExpired, got %v", err)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		auth := NewAuthUsecase(newMockUserRepo(existing), &mockJWT{validateErr: jwt.ErrTokenInvalid})
		if _, _, err := auth.Refresh(context.Background(), "tok"); !errors.Is(err, ErrInvalidRefreshToken) {
			t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
		}
	})

	t.Run("access token passed as refresh", func(t *testing.T) {
		jwtSvc := &mockJWT{claims: jwt.Claims{UserID: existing.ID, TokenType: jwt.TokenTypeAccess}}
		auth := NewAuthUsecase(newMockUserRepo(existing), jwtSvc)
		if _, _, err := auth.Refresh(context.Background(), "tok"); !errors.Is(err, ErrInvalidRefreshToken) {
			t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
		}
	})
}
