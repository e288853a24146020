package model

// Person roles. The closed set matters: the identity resolver branches on
// it to pick the role-specific external identifier.
const (
	RoleStaff   = "Staff"
	RoleStudent = "Student"
	RoleOther   = "Other"
)

// Person is one notifiable person keyed by QID — table users.
// MailID may be NULL for incomplete records; such a person is excluded
// from dispatch but never aborts a run.
type Person struct {
	QID    string  `gorm:"type:varchar(20);primaryKey;column:qid" json:"qid"`
	Name   string  `gorm:"type:varchar(100);not null"             json:"name"`
	MailID *string `gorm:"type:varchar(255)"                      json:"mail_id,omitempty"`
	Type   string  `gorm:"type:varchar(20);not null;default:'Other'" json:"type"`
	BaseModel
}

// TableName specifies the table name.
func (Person) TableName() string { return "users" }

// StaffDetail carries the staff external identifier — table staff_details.
type StaffDetail struct {
	QID string `gorm:"type:varchar(20);primaryKey;column:qid" json:"qid"`
	EID string `gorm:"type:varchar(30);not null;column:eid"   json:"eid"`
}

// TableName specifies the table name.
func (StaffDetail) TableName() string { return "staff_details" }

// StudentDetail carries the student external identifier — table student_details.
type StudentDetail struct {
	QID  string `gorm:"type:varchar(20);primaryKey;column:qid" json:"qid"`
	HTNO string `gorm:"type:varchar(30);not null;column:htno"  json:"htno"`
}

// TableName specifies the table name.
func (StudentDetail) TableName() string { return "student_details" }
