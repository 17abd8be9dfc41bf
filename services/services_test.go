package services

import (
	"io"
	"testing"

	"shopper-backend/config"
	"shopper-backend/repositories"

	"github.com/sirupsen/logrus"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "test-secret",
		PasswordHasher: "bcrypt",
	}
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestAuth(t *testing.T) (*AuthService, *repositories.MemoryUserRepository) {
	t.Helper()
	users := repositories.NewMemoryUserRepository()
	return NewAuthService(users, testConfig(), nil, testLogger()), users
}
