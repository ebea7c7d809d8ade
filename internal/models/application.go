package models

import "time"

// Application status values.
const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// ApplicationStatuses lists the accepted application status values.
var ApplicationStatuses = []string{
	StatusPending,
	StatusReviewed,
	StatusAccepted,
	StatusRejected,
}

// ValidStatus reports whether s is one of the accepted application statuses.
func ValidStatus(s string) bool {
	for _, v := range ApplicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Application represents a seeker's application to a job. The user name,
// email and phone are denormalized from the user record at apply time.
type Application struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	JobID     string    `json:"jobId" gorm:"index;type:varchar(36)" validate:"required"`
	UserID    string    `json:"userId" gorm:"index;type:varchar(36)" validate:"required"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	UserPhone string    `json:"userPhone"`
	Message   string    `json:"message"`
	Status    string    `json:"status" validate:"omitempty,oneof=pending reviewed accepted rejected"`
	AppliedAt time.Time `json:"appliedAt"`
}
