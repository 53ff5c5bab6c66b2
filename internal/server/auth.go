package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	loansv1 "github.com/edulend/loanassist/gen/proto/loans/v1"
	"github.com/edulend/loanassist/internal/auth"
	"github.com/edulend/loanassist/internal/common"
)

type AuthServer struct {
	loansv1.UnimplementedAuthServiceServer
	svc    *auth.Service
	logger *slog.Logger
}

func NewAuthServer(svc *auth.Service, logger *slog.Logger) *AuthServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthServer{svc: svc, logger: logger}
}

func (s *AuthServer) Register(ctx context.Context, req *loansv1.RegisterRequest) (*loansv1.RegisterResponse, error) {
	email := strings.TrimSpace(req.GetEmail())
	if email == "" {
		return nil, common.InvalidArgumentError("email is required")
	}
	if req.GetPassword() == "" {
		return nil, common.InvalidArgumentError("password is required")
	}

	u, err := s.svc.Register(ctx, email, req.GetPassword(), req.GetFullName(), req.GetPhone())
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			return nil, common.AlreadyExistsError(err.Error())
		}
		s.logger.Error("register failed", "email", email, "error", err)
		return nil, common.InternalError("registration failed")
	}
	return &loansv1.RegisterResponse{User: toPBUser(u)}, nil
}

func (s *AuthServer) Login(ctx context.Context, req *loansv1.LoginRequest) (*loansv1.LoginResponse, error) {
	email := strings.TrimSpace(req.GetEmail())
	if email == "" {
		return nil, common.InvalidArgumentError("email is required")
	}

	u, err := s.svc.Login(ctx, email, req.GetPassword())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailNotFound):
			return nil, common.NotFoundError(err.Error())
		case errors.Is(err, auth.ErrWrongPassword):
			return nil, common.InvalidArgumentError(err.Error())
		}
		s.logger.Error("login failed", "email", email, "error", err)
		return nil, common.InternalError("login failed")
	}
	return &loansv1.LoginResponse{User: toPBUser(u)}, nil
}

func (s *AuthServer) UpdateProfile(ctx context.Context, req *loansv1.UpdateProfileRequest) (*loansv1.UpdateProfileResponse, error) {
	email := strings.TrimSpace(req.GetEmail())
	if email == "" {
		return nil, common.InvalidArgumentError("email is required")
	}

	u, err := s.svc.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, common.NotFoundError("Email not found")
		}
		return nil, common.InternalError("profile lookup failed")
	}

	upd := auth.ProfileUpdate{
		FullName:         req.FullName,
		Phone:            req.Phone,
		ProfileCompleted: req.ProfileCompleted,
	}
	if err := s.svc.UpdateProfile(ctx, u.ID, upd); err != nil {
		s.logger.Error("profile update failed", "email", email, "error", err)
		return nil, common.InternalError("profile update failed")
	}

	u, err = s.svc.GetByEmail(ctx, email)
	if err != nil {
		return nil, common.InternalError("profile reload failed")
	}
	return &loansv1.UpdateProfileResponse{User: toPBUser(u)}, nil
}

func toPBUser(u *auth.User) *loansv1.User {
	return &loansv1.User{
		Id:               int64(u.ID),
		Email:            u.Email,
		FullName:         u.FullName,
		Phone:            u.Phone,
		CreatedAt:        u.CreatedAt.UTC().Format(time.RFC3339),
		ProfileCompleted: u.ProfileCompleted,
	}
}
