package service

import (
	"Agora/internal/api/dto"
	"Agora/internal/pkg/security"
	"context"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)
	ctx := context.Background()

	err := svc.Register(ctx, &dto.RegisterDTO{Username: "alice", Password: "secret1", Notifications: true})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err = svc.Register(ctx, &dto.RegisterDTO{Username: "alice", Password: "other12"}); err != ErrUserExist {
		t.Fatalf("err = %v, want ErrUserExist", err)
	}

	user, _ := userRepo.GetUserByUsername(ctx, "alice")
	if user.Password == "secret1" {
		t.Error("password must be stored hashed")
	}
	if !user.Notifications {
		t.Error("notifications opt-in should persist")
	}

	token, err := svc.Login(ctx, &dto.CredentialDTO{Username: "alice", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := security.ValidateToken(token.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("claims.UserID = %d, want %d", claims.UserID, user.ID)
	}
	if claims.HasRole(security.RoleModerator) {
		t.Error("regular user must not carry the moderator role")
	}
}

func TestLoginFailures(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)
	ctx := context.Background()

	if _, err := svc.Login(ctx, &dto.CredentialDTO{Username: "ghost", Password: "x"}); err != ErrUserNotFound {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}

	if err := svc.Register(ctx, &dto.RegisterDTO{Username: "bob", Password: "secret1"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Login(ctx, &dto.CredentialDTO{Username: "bob", Password: "wrong"}); err != ErrPasswordIncorrect {
		t.Fatalf("err = %v, want ErrPasswordIncorrect", err)
	}

	user, _ := userRepo.GetUserByUsername(ctx, "bob")
	user.IsBan = true
	if _, err := svc.Login(ctx, &dto.CredentialDTO{Username: "bob", Password: "secret1"}); err != ErrUserBan {
		t.Fatalf("err = %v, want ErrUserBan", err)
	}
}

func TestLoginModeratorRole(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)
	ctx := context.Background()

	if err := svc.Register(ctx, &dto.RegisterDTO{Username: "mod", Password: "secret1"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	user, _ := userRepo.GetUserByUsername(ctx, "mod")
	user.Moderator = true

	token, err := svc.Login(ctx, &dto.CredentialDTO{Username: "mod", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, _ := security.ValidateToken(token.Token)
	if !claims.HasRole(security.RoleModerator) {
		t.Error("moderator role missing from claims")
	}
}
