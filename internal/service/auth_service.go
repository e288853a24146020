package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/yash6314/invigilationMailService/config"
	"github.com/yash6314/invigilationMailService/internal/dto"
	"github.com/yash6314/invigilationMailService/pkg/jwt"
	"github.com/yash6314/invigilationMailService/pkg/redis"
)

// ── auth errors ──

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService authenticates the examination-cell operator account.
// Credentials live in configuration: there is exactly one principal.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Logout revokes a token by JTI until its natural expiry.
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

type authService struct {
	cfg    *config.AuthConfig
	jwtMgr *jwt.Manager
	rdb    *redis.Client // nil when redis is unavailable; logout degrades
	logger *zap.Logger
}

// NewAuthService creates an AuthService instance.
func NewAuthService(cfg *config.AuthConfig, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{cfg: cfg, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

func (s *authService) Login(_ context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.AdminUsername)) != 1 {
		return nil, ErrInvalidCredentials
	}

	if !s.passwordMatches(req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtMgr.GenerateAccessToken(req.Username)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.jwtMgr.AccessTokenTTL().Seconds()),
	}, nil
}

// passwordMatches checks the bcrypt hash when configured, otherwise the
// plaintext dev fallback.
func (s *authService) passwordMatches(password string) bool {
	if s.cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		s.logger.Warn("logout without redis: token remains valid until expiry")
		return nil
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}
