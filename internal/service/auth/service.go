package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/workpulse/workpulse-backend-go/internal/domain/auth"
	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/jwt"
	"github.com/workpulse/workpulse-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	runInTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
				return fn(context.WithValue(ctx, "tx", tx))
			})
		},
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.SessionResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.SessionResponse{}, auth.ErrInvalidCredentials
		}
		return auth.SessionResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.SessionResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.SessionResponse{}, auth.ErrInvalidCredentials
	}

	return a.newSession(userData.Principal())
}

// Register implements auth.AuthService. The created user is logged in
// right away, matching the sign-up flow of the web client. The uniqueness
// check and the insert run in one transaction so a concurrent signup with
// the same email cannot slip between them.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.SessionResponse, error) {
	var created user.User

	err := a.runInTx(ctx, func(txCtx context.Context) error {
		exists, err := a.UserRepository.ExistsByEmail(txCtx, req.Email)
		if err != nil {
			return fmt.Errorf("failed to check existing email: %w", err)
		}
		if exists {
			return auth.ErrEmailExists
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		hashed := string(hash)

		created, err = a.UserRepository.Create(txCtx, user.User{
			Name:         req.Name,
			Surname:      req.Surname,
			Email:        req.Email,
			PasswordHash: &hashed,
			Role:         user.Role(req.Role),
			Department:   req.Department,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.SessionResponse{}, err
	}

	return a.newSession(created.Principal())
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) {
	a.Service.RevokeToken(token)
}

func (a *AuthServiceImpl) newSession(principal user.Principal) (auth.SessionResponse, error) {
	token, expiresAt, err := a.Service.GenerateAccessToken(principal)
	if err != nil {
		return auth.SessionResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.SessionResponse{
		User:        principal,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
