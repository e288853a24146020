package model

// Hall is read-only reference data for rendering — table halls.
type Hall struct {
	HallID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"hall_id"`
	HallName string `gorm:"type:varchar(100);not null"                     json:"hall_name"`
	Floor    string `gorm:"type:varchar(50)"                               json:"floor"`
}

// TableName specifies the table name.
func (Hall) TableName() string { return "halls" }

// Venue is read-only reference data for rendering — table venues.
type Venue struct {
	VenueID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"venue_id"`
	VenueName string `gorm:"type:varchar(100);not null"                     json:"venue_name"`
}

// TableName specifies the table name.
func (Venue) TableName() string { return "venues" }
