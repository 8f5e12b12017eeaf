package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"ai-salesclone-be/internal/dto"
	"ai-salesclone-be/internal/entity"
	"ai-salesclone-be/internal/pkg/mailer"
	"ai-salesclone-be/internal/pkg/serverutils"
	"ai-salesclone-be/internal/repository/specification"
	"ai-salesclone-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserProfile, error)
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		emailService: emailService,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewValidationError("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		CompanyName:  req.CompanyName,
		CreatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	// Welcome email is auxiliary, never fail registration over it
	if s.emailService != nil {
		go func(email, name string) {
			if err := s.emailService.SendWelcome(email, name); err != nil {
				fmt.Printf("[WARN] Failed to send welcome email to %s: %v\n", email, err)
			}
		}(user.Email, user.FullName)
	}

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewUnauthorizedError("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.NewUnauthorizedError("invalid email or password")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.Id.String(),
		"email":   user.Email,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	})

	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: signed,
		User: dto.UserProfile{
			Id:          user.Id,
			Email:       user.Email,
			FullName:    user.FullName,
			CompanyName: user.CompanyName,
			CreatedAt:   user.CreatedAt,
		},
	}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserProfile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewNotFoundError("user not found")
	}

	return &dto.UserProfile{
		Id:          user.Id,
		Email:       user.Email,
		FullName:    user.FullName,
		CompanyName: user.CompanyName,
		CreatedAt:   user.CreatedAt,
	}, nil
}
