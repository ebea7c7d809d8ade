package repositories

import (
	"errors"
	"fmt"

	"empregos/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMApplicationRepository is a GORM implementation of ApplicationRepository.
type GORMApplicationRepository struct {
	db *gorm.DB
}

// NewGORMApplicationRepository creates a new instance of GORMApplicationRepository.
func NewGORMApplicationRepository(db *gorm.DB) *GORMApplicationRepository {
	return &GORMApplicationRepository{
		db: db,
	}
}

// Create creates a new application in the database.
func (r *GORMApplicationRepository) Create(application *models.Application) error {
	if application.ID == "" {
		application.ID = uuid.New().String()
	}
	if err := r.db.Create(application).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// GetByJobAndUser retrieves the application a user submitted for a job.
func (r *GORMApplicationRepository) GetByJobAndUser(jobID, userID string) (*models.Application, error) {
	var application models.Application
	if err := r.db.First(&application, "job_id = ? AND user_id = ?", jobID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("application for job %s by user %s: %w", jobID, userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get application for job %s by user %s: %w", jobID, userID, err)
	}
	return &application, nil
}

// GetByUser retrieves all applications submitted by a user, newest first.
func (r *GORMApplicationRepository) GetByUser(userID string) ([]models.Application, error) {
	var applications []models.Application
	if err := r.db.Where("user_id = ?", userID).Order("applied_at DESC").Find(&applications).Error; err != nil {
		return nil, fmt.Errorf("failed to get applications for user %s: %w", userID, err)
	}
	return applications, nil
}

// GetByJob retrieves all applications submitted against a job, newest first.
func (r *GORMApplicationRepository) GetByJob(jobID string) ([]models.Application, error) {
	var applications []models.Application
	if err := r.db.Where("job_id = ?", jobID).Order("applied_at DESC").Find(&applications).Error; err != nil {
		return nil, fmt.Errorf("failed to get applications for job %s: %w", jobID, err)
	}
	return applications, nil
}

// UpdateStatus updates the status of the application for a (job, user) pair.
func (r *GORMApplicationRepository) UpdateStatus(jobID, userID, status string) error {
	res := r.db.Model(&models.Application{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update application status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("application for job %s by user %s for status update: %w", jobID, userID, ErrNotFound)
	}
	return nil
}

// Count returns the total number of applications.
func (r *GORMApplicationRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Application{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return count, nil
}
