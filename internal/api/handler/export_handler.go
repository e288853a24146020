package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yash6314/invigilationMailService/internal/dto"
	"github.com/yash6314/invigilationMailService/internal/service"
	"github.com/yash6314/invigilationMailService/pkg/response"
)

// ExportHandler serves the roster and calendar downloads.
type ExportHandler struct {
	exportSvc   service.ExportService
	calendarSvc service.CalendarService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService, calendarSvc service.CalendarService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc, calendarSvc: calendarSvc}
}

// ExportRoster downloads the duty roster for a range as .xlsx.
// GET /api/v1/exports/roster?from_date=...&to_date=...
func (h *ExportHandler) ExportRoster(c *gin.Context) {
	var q dto.RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "from_date and to_date are required")
		return
	}

	from, to, err := parseDateRange(q.FromDate, q.ToDate)
	if err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	buf, filename, err := h.exportSvc.ExportRoster(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, service.ErrNoAssignments) {
			response.NotFound(c, 30001, "no invigilation records in the given range")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// DutyCalendar downloads one person's duties as an iCalendar file.
// GET /api/v1/duties/calendar?id_value=...&from_date=...&to_date=...
func (h *ExportHandler) DutyCalendar(c *gin.Context) {
	var q dto.CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "id_value, from_date and to_date are required")
		return
	}

	from, to, err := parseDateRange(q.FromDate, q.ToDate)
	if err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	data, filename, err := h.calendarSvc.BuildDutyCalendar(c.Request.Context(), q.IDValue, from, to)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIdentifierNotFound):
			response.NotFound(c, 20001, "Invalid EID / HTNO")
		case errors.Is(err, service.ErrNoDuties):
			response.NotFound(c, 30002, "No invigilation duties found")
		default:
			response.InternalError(c)
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/calendar", data)
}
