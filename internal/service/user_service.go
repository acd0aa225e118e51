package service

import (
	"Agora/internal/api/dto"
	"Agora/internal/model"
	"Agora/internal/pkg/redis"
	"Agora/internal/pkg/security"
	"Agora/internal/repository"
	"context"
)

type UserService interface {
	Register(ctx context.Context, registerDTO *dto.RegisterDTO) error
	Login(ctx context.Context, credentialDTO *dto.CredentialDTO) (*dto.TokenDTO, error)
	Logout(ctx context.Context, tokenString string) error
}

type userServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) Register(ctx context.Context, registerDTO *dto.RegisterDTO) error {
	existing, err := s.userRepo.GetUserByUsername(ctx, registerDTO.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserExist
	}

	hashed, err := security.HashPassword(registerDTO.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:      registerDTO.Username,
		Password:      hashed,
		Email:         registerDTO.Email,
		Notifications: registerDTO.Notifications,
	}
	return s.userRepo.CreateUser(ctx, user)
}

func (s *userServiceImpl) Login(ctx context.Context, credentialDTO *dto.CredentialDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, credentialDTO.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.IsBan {
		return nil, ErrUserBan
	}
	if err = security.CheckPasswordHash(credentialDTO.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	roles := make([]string, 0, 1)
	if user.Moderator {
		roles = append(roles, security.RoleModerator)
	}
	token, err := security.GenerateToken(user.ID, roles)
	if err != nil {
		return nil, err
	}
	return &dto.TokenDTO{Token: token}, nil
}

// Logout 把 token 签名写进 Redis 吊销名单，有效期与 token 一致
func (s *userServiceImpl) Logout(ctx context.Context, tokenString string) error {
	signature, err := security.ExtractSignature(tokenString)
	if err != nil {
		return ErrParamInvalid
	}
	return redis.SetWithExpiration(ctx, signature, "revoked", security.JWTExpirationTime)
}
