package dto

// BulkMailRequest triggers the bulk notification pipeline.
// Dates are inclusive, formatted YYYY-MM-DD.
type BulkMailRequest struct {
	FromDate string `json:"from_date" binding:"required"`
	ToDate   string `json:"to_date"   binding:"required"`
}

// SingleMailRequest triggers a notification for one person looked up by
// external identifier (EID or HTNO).
type SingleMailRequest struct {
	IDValue  string `json:"id_value"  binding:"required"`
	FromDate string `json:"from_date" binding:"required"`
	ToDate   string `json:"to_date"   binding:"required"`
}

// SingleMailResponse reports the single-recipient outcome.
type SingleMailResponse struct {
	Recipient string `json:"recipient"`
	Duties    int    `json:"duties"`
}

// RangeQuery is the shared date-range query for exports.
type RangeQuery struct {
	FromDate string `form:"from_date" binding:"required"`
	ToDate   string `form:"to_date"   binding:"required"`
}

// CalendarQuery selects one person's duties for the calendar export.
type CalendarQuery struct {
	IDValue  string `form:"id_value"  binding:"required"`
	FromDate string `form:"from_date" binding:"required"`
	ToDate   string `form:"to_date"   binding:"required"`
}
