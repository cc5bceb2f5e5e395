package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"hospital-bed-booking/internal/models"
	"hospital-bed-booking/internal/repository"
	"hospital-bed-booking/pkg/utils"

	"github.com/sirupsen/logrus"
)

type AuthService struct {
	userRepo  *repository.UserRepository
	auditRepo *repository.AuditRepository
	issuer    *utils.TokenIssuer
	log       *logrus.Logger
}

func NewAuthService(userRepo *repository.UserRepository, auditRepo *repository.AuditRepository, issuer *utils.TokenIssuer, log *logrus.Logger) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		issuer:    issuer,
		log:       log,
	}
}

// RegisterInput carries the registration form
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     models.Role
}

// Session is the token pair handed out on login
type Session struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"-"`
	ExpiresAt    time.Time    `json:"expires_at"`
	User         *models.User `json:"user"`
}

// Register creates a new user account
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Role == "" {
		in.Role = models.RolePatient
	}

	fields := fieldErrors{}
	fields.require("name", in.Name)
	fields.require("email", in.Email)
	if _, ok := fields["email"]; !ok {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			fields["email"] = "must be a valid email"
		}
	}
	if len(in.Name) > 150 {
		fields["name"] = "must be at most 150 characters"
	}
	if len(in.Password) < 6 {
		fields["password"] = "must be at least 6 characters"
	}
	if !in.Role.Valid() {
		fields["role"] = "must be patient, hospital or admin"
	}
	if err := fields.err(); err != nil {
		return nil, err
	}

	// Check if email already exists
	_, err := s.userRepo.FindByEmail(ctx, in.Email)
	if err == nil {
		return nil, repository.ErrDuplicateEmail
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	passwordHash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        in.Email,
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: passwordHash,
		Role:         in.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, &user.ID, "user_registration", fmt.Sprintf("User %s registered as %s", user.Email, user.Role))
	s.log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("user registered")

	return user, nil
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.issuer.GenerateAccessToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	// Only the hash of the refresh token is stored
	refreshToken := utils.GenerateRefreshToken()
	token := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: utils.HashRefreshToken(refreshToken),
		ExpiresAt: time.Now().Add(s.issuer.RefreshExpiry()),
	}
	if err := s.userRepo.CreateRefreshToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, &user.ID, "user_login", fmt.Sprintf("User %s logged in", user.Email))

	return &Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.issuer.AccessExpiry()),
		User:         user,
	}, nil
}

// Refresh issues a new access token for a live refresh token
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	token, err := s.userRepo.FindRefreshTokenByHash(ctx, utils.HashRefreshToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidRefreshToken
		}
		return "", fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if time.Now().After(token.ExpiresAt) {
		return "", ErrInvalidRefreshToken
	}

	accessToken, err := s.issuer.GenerateAccessToken(token.User.ID, string(token.User.Role))
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout revokes a refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.userRepo.RevokeRefreshTokenByHash(ctx, utils.HashRefreshToken(refreshToken)); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// CurrentUser loads the actor's profile
func (s *AuthService) CurrentUser(ctx context.Context, actor Actor) (*models.User, error) {
	return s.userRepo.FindByID(ctx, actor.UserID)
}
