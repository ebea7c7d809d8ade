package repositories

import "empregos/internal/models"

// ApplicationRepository defines the interface for application data access.
// The applications table is the single source of truth for who applied to
// which job; a job's applicant list is derived from it at read time.
type ApplicationRepository interface {
	Create(application *models.Application) error
	GetByJobAndUser(jobID, userID string) (*models.Application, error)
	GetByUser(userID string) ([]models.Application, error)
	GetByJob(jobID string) ([]models.Application, error)
	UpdateStatus(jobID, userID, status string) error
	Count() (int64, error)
}
