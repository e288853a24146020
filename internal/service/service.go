package service

import (
	"go.uber.org/zap"

	"github.com/yash6314/invigilationMailService/config"
	"github.com/yash6314/invigilationMailService/internal/repository"
	"github.com/yash6314/invigilationMailService/pkg/jwt"
	"github.com/yash6314/invigilationMailService/pkg/redis"
)

// Service aggregates all service interfaces.
type Service struct {
	Auth     AuthService
	Notify   NotifyService
	Export   ExportService
	Calendar CalendarService
}

// NewService builds the service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	transport MailTransport,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(&cfg.Auth, jwtMgr, rdb, logger),
		Notify:   NewNotifyService(repo, transport, &cfg.Mail, logger),
		Export:   NewExportService(repo, logger),
		Calendar: NewCalendarService(repo, logger),
	}
}
