package models

import "time"

// User represents an account on the job board. A user with the employer flag
// set can publish and manage jobs; everyone else applies to them.
type User struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash, never serialized
	Name       string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Phone      string    `json:"phone" validate:"omitempty,max=30"`
	IsEmployer bool      `json:"isEmployer"`
	Company    string    `json:"company" validate:"omitempty,max=150"`
	Address    string    `json:"address" validate:"omitempty,max=255"`
	Bio        string    `json:"bio" validate:"omitempty,max=1000"`
	CreatedAt  time.Time `json:"createdAt"`
}
