package model

import "time"

// Invigilation is one scheduled invigilation duty — table invigilation.
// Rows are created by the scheduling system; this service only flips the
// delivery-state flags during batch reconciliation.
type Invigilation struct {
	InvigilationID string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"invigilation_id"`
	Date           time.Time   `gorm:"type:date;not null"                             json:"date"`
	StartTime      time.Time   `gorm:"not null"                                       json:"start_time"`
	EndTime        time.Time   `gorm:"not null"                                       json:"end_time"`
	QIDs           StringArray `gorm:"type:text[];not null;column:qids"               json:"qids"`
	HallID         *string     `gorm:"type:uuid"                                      json:"hall_id,omitempty"`
	VenueID        *string     `gorm:"type:uuid"                                      json:"venue_id,omitempty"`
	MailSent       bool        `gorm:"not null;default:false"                         json:"mail_sent"`
	ForceResend    bool        `gorm:"not null;default:false"                         json:"force_resend"`
	MailSentAt     *time.Time  `json:"mail_sent_at,omitempty"`
	BaseModel
}

// TableName pins the singular table name used by the scheduling system.
func (Invigilation) TableName() string { return "invigilation" }
