package handler

import "github.com/yash6314/invigilationMailService/internal/service"

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth   *AuthHandler
	Mail   *MailHandler
	Export *ExportHandler
}

// NewHandler builds the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(svc.Auth),
		Mail:   NewMailHandler(svc.Notify),
		Export: NewExportHandler(svc.Export, svc.Calendar),
	}
}
