package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/yash6314/invigilationMailService/internal/dto"
	"github.com/yash6314/invigilationMailService/internal/service"
	"github.com/yash6314/invigilationMailService/pkg/response"
)

// MailHandler exposes the notification pipeline triggers.
type MailHandler struct {
	notifySvc service.NotifyService
}

// NewMailHandler creates a MailHandler.
func NewMailHandler(notifySvc service.NotifyService) *MailHandler {
	return &MailHandler{notifySvc: notifySvc}
}

// SendBulk triggers the bulk pipeline for a date range.
// POST /api/v1/mails/bulk
//
// The run continues in the background; per-recipient outcomes go to the
// logs, so the acknowledgement is the same whatever happens later.
func (h *MailHandler) SendBulk(c *gin.Context) {
	var req dto.BulkMailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "from_date and to_date are required")
		return
	}

	from, to, err := parseDateRange(req.FromDate, req.ToDate)
	if err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	// Detached context: the run must outlive the HTTP request.
	go func() {
		_, _ = h.notifySvc.SendBulk(context.Background(), from, to)
	}()

	response.Accepted(c, "Bulk mail run started. Check logs.")
}

// SendByID sends one notification to a person looked up by EID or HTNO.
// POST /api/v1/mails/by-id
func (h *MailHandler) SendByID(c *gin.Context) {
	var req dto.SingleMailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "id_value, from_date and to_date are required")
		return
	}

	from, to, err := parseDateRange(req.FromDate, req.ToDate)
	if err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	result, err := h.notifySvc.SendToRecipient(c.Request.Context(), req.IDValue, from, to)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIdentifierNotFound):
			response.NotFound(c, 20001, "Invalid EID / HTNO")
		case errors.Is(err, service.ErrNoContact):
			response.BadRequest(c, 20002, "Mail ID not found")
		case errors.Is(err, service.ErrNoDuties):
			response.OKMessage(c, "No invigilation duties found")
		default:
			response.InternalError(c)
		}
		return
	}

	c.JSON(200, response.Response{
		Code:    0,
		Message: fmt.Sprintf("Mail sent to %s", result.Recipient),
		Data:    result,
	})
}
