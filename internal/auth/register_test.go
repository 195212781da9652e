package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/mercie-ux/mkulima-cooperative/internal/users"
	pkgauth "github.com/mercie-ux/mkulima-cooperative/pkg/auth"
	"github.com/mercie-ux/mkulima-cooperative/pkg/config"
	"github.com/mercie-ux/mkulima-cooperative/pkg/db"
	"github.com/mercie-ux/mkulima-cooperative/pkg/db/models"
	"github.com/mercie-ux/mkulima-cooperative/pkg/enums"
	pkgerrors "github.com/mercie-ux/mkulima-cooperative/pkg/errors"
	"github.com/mercie-ux/mkulima-cooperative/pkg/security"
	"github.com/shopspring/decimal"
)

func openTestDB(t *testing.T) *db.Client {
	t.Helper()
	cfg := config.DBConfig{
		Driver: "sqlite",
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}
	client, err := db.New(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := client.DB().AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newTestRegisterService(t *testing.T, client *db.Client) RegisterService {
	t.Helper()
	svc, err := NewRegisterService(RegisterServiceParams{
		DB:             client,
		PasswordConfig: config.PasswordConfig{BcryptCost: 4},
	})
	if err != nil {
		t.Fatalf("new register service: %v", err)
	}
	return svc
}

func TestRegisterCreatesFarmer(t *testing.T) {
	client := openTestDB(t)
	svc := newTestRegisterService(t, client)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Mercy Wanjiku",
		Email:    "Mercy@X.com",
		Password: "pw123456",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.User.Email != "mercy@x.com" {
		t.Fatalf("email should be normalized, got %q", resp.User.Email)
	}
	if resp.User.Role != "farmer" {
		t.Fatalf("new accounts must be farmers, got %q", resp.User.Role)
	}

	var stored models.User
	if err := client.DB().First(&stored, "email = ?", "mercy@x.com").Error; err != nil {
		t.Fatalf("load stored user: %v", err)
	}
	if stored.PasswordHash == "pw123456" {
		t.Fatal("password must not be stored in plaintext")
	}
	ok, err := security.VerifyPassword("pw123456", stored.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("stored hash should verify: ok=%v err=%v", ok, err)
	}
}

func TestRegisterThenLoginRoundTrip(t *testing.T) {
	client := openTestDB(t)
	svc := newTestRegisterService(t, client)

	if _, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Mercy",
		Email:    "mercy@x.com",
		Password: "pw123456",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	login, err := NewService(ServiceParams{
		UserRepo:  users.NewRepository(client.DB()),
		JWTConfig: testJWTConfig(),
	})
	if err != nil {
		t.Fatalf("new login service: %v", err)
	}

	resp, err := login.Login(context.Background(), LoginRequest{Email: "mercy@x.com", Password: "pw123456"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := pkgauth.ParseAccessToken(testJWTConfig(), resp.Token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Role != enums.UserRoleFarmer {
		t.Fatalf("registered role should ride in the token, got %s", claims.Role)
	}

	_, err = login.Login(context.Background(), LoginRequest{Email: "mercy@x.com", Password: "wrong-pw"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("wrong password should be unauthorized, got %v", err)
	}

	_, err = login.Login(context.Background(), LoginRequest{Email: "nobody@x.com", Password: "pw123456"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unknown email should be not found, got %v", err)
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	client := openTestDB(t)
	svc := newTestRegisterService(t, client)

	req := RegisterRequest{Name: "Mercy", Email: "mercy@x.com", Password: "pw123456"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(context.Background(), req)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRegisterRejectsNegativeFarmSize(t *testing.T) {
	client := openTestDB(t)
	svc := newTestRegisterService(t, client)

	negative := decimal.NewFromInt(-2)
	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Mercy",
		Email:    "mercy@x.com",
		Password: "pw123456",
		FarmSize: &negative,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
