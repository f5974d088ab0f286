package user

import (
	"context"
	"fmt"
	"strings"

	"agrimart-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, name, email, password, phone string, role Role) (User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, id uint, name, email, password string) (User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, name, email, password, phone string, role Role) (User, error) {
	log := logger.FromCtx(ctx)

	if !ValidRole(string(role)) {
		role = RoleCustomer
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return User{}, err
	}

	u := &User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     role,
		Phone:    phone,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return User{}, ErrEmailExists
		}
		return User{}, err
	}

	log.Info("user registered",
		zap.String("user_id", fmt.Sprint(u.ID)),
		zap.String("role", string(u.Role)),
	)

	return *u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", User{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		return "", User{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, u.Role, u.Email)
	return token, u, err
}

func (s *service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) UpdateProfile(ctx context.Context, id uint, name, email, password string) (User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	if name != "" {
		u.Name = name
	}
	if email != "" {
		u.Email = email
	}
	if password != "" {
		hashed, err := HashPassword(password)
		if err != nil {
			return User{}, err
		}
		u.Password = hashed
	}

	if err := s.repo.UpdateProfile(ctx, &u); err != nil {
		return User{}, err
	}

	return u, nil
}
