package models

import "time"

// Job type values.
const (
	JobTypeFullTime   = "Full-Time"
	JobTypePartTime   = "Part-Time"
	JobTypeTemporary  = "Temporary"
	JobTypeFreelance  = "Freelance"
	JobTypeInternship = "Internship"
)

// Job category values.
const (
	CategoryAdministrative = "Administrative"
	CategorySales          = "Sales"
	CategoryConstruction   = "Construction"
	CategoryEducation      = "Education"
	CategoryHealth         = "Health"
	CategoryTransport      = "Transport"
	CategoryTechnology     = "Technology"
	CategoryAgriculture    = "Agriculture"
	CategoryOther          = "Other"
)

// JobTypes lists the accepted job type values.
var JobTypes = []string{
	JobTypeFullTime,
	JobTypePartTime,
	JobTypeTemporary,
	JobTypeFreelance,
	JobTypeInternship,
}

// JobCategories lists the accepted job category values.
var JobCategories = []string{
	CategoryAdministrative,
	CategorySales,
	CategoryConstruction,
	CategoryEducation,
	CategoryHealth,
	CategoryTransport,
	CategoryTechnology,
	CategoryAgriculture,
	CategoryOther,
}

// ValidJobType reports whether t is one of the accepted job types.
func ValidJobType(t string) bool {
	for _, v := range JobTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ValidJobCategory reports whether c is one of the accepted job categories.
func ValidJobCategory(c string) bool {
	for _, v := range JobCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Job represents a published job listing. Applicants is the read-time view of
// the applications submitted against this job; the applications table is the
// single source of truth for them.
type Job struct {
	ID           string        `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title        string        `json:"title" gorm:"type:varchar(150)" validate:"required,min=3,max=150"`
	Description  string        `json:"description" validate:"required"`
	Company      string        `json:"company" gorm:"type:varchar(150)"`
	EmployerID   string        `json:"employerId" gorm:"index;type:varchar(36)"`
	EmployerName string        `json:"employerName"`
	Location     string        `json:"location" gorm:"type:varchar(150)" validate:"required"`
	Salary       string        `json:"salary"`
	Vacancies    int           `json:"vacancies" validate:"required,gte=1"`
	Filled       int           `json:"filled" validate:"gte=0"`
	Requirements []string      `json:"requirements" gorm:"serializer:json"`
	Benefits     []string      `json:"benefits" gorm:"serializer:json"`
	Type         string        `json:"type" validate:"omitempty,oneof=Full-Time Part-Time Temporary Freelance Internship"`
	Category     string        `json:"category" validate:"omitempty,oneof=Administrative Sales Construction Education Health Transport Technology Agriculture Other"`
	ContactPhone string        `json:"contactPhone"`
	ContactEmail string        `json:"contactEmail" validate:"omitempty,email"`
	ExpiresAt    time.Time     `json:"expiresAt"`
	IsActive     bool          `json:"isActive"`
	Applicants   []Application `json:"applicants" gorm:"foreignKey:JobID"`
	CreatedAt    time.Time     `json:"createdAt"`
}
