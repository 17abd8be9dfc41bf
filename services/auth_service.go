package services

import (
	"context"
	"errors"

	"shopper-backend/config"
	"shopper-backend/models"
	"shopper-backend/repositories"
	"shopper-backend/utils"

	"github.com/sirupsen/logrus"
)

type AuthService struct {
	users  UserStore
	cfg    *config.Config
	mailer WelcomeMailer
	log    *logrus.Logger
}

// NewAuthService accepts a nil mailer; signup then skips the welcome mail.
func NewAuthService(users UserStore, cfg *config.Config, mailer WelcomeMailer, log *logrus.Logger) *AuthService {
	return &AuthService{users: users, cfg: cfg, mailer: mailer, log: log}
}

func (s *AuthService) Signup(ctx context.Context, name, email, password string) (string, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return "", err
	}
	if existing != nil {
		return "", ErrDuplicateEmail
	}

	hash, err := utils.HashPassword(password, s.cfg.PasswordHasher)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		CartData: models.NewCart(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return "", ErrDuplicateEmail
		}
		return "", err
	}

	s.log.WithField("user_id", user.ID).Info("user signed up")

	if s.mailer != nil {
		go func(to, name string) {
			if err := s.mailer.SendWelcome(to, name); err != nil {
				s.log.WithError(err).WithField("email", to).Warn("welcome email not sent")
			}
		}(user.Email, user.Name)
	}

	return utils.GenerateToken(user.ID, s.cfg.JWTSecret, s.cfg.JWTExpiry)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", ErrInvalidEmail
	}
	if err != nil {
		return "", err
	}

	valid, err := utils.VerifyPassword(user.Password, password)
	if err != nil || !valid {
		return "", ErrInvalidPassword
	}

	return utils.GenerateToken(user.ID, s.cfg.JWTSecret, s.cfg.JWTExpiry)
}

// VerifyToken returns the user id embedded in a token.
func (s *AuthService) VerifyToken(token string) (string, error) {
	if token == "" {
		return "", ErrUnauthenticated
	}
	claims, err := utils.ValidateToken(token, s.cfg.JWTSecret)
	if err != nil {
		return "", ErrInvalidToken
	}
	return claims.User.ID, nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}
