package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"empregos/internal/models"

	"github.com/google/uuid"
)

// MockApplicationRepository is an in-memory implementation of ApplicationRepository.
type MockApplicationRepository struct {
	applications map[string]models.Application
	mu           sync.RWMutex
}

// NewMockApplicationRepository creates a new instance of MockApplicationRepository.
func NewMockApplicationRepository() *MockApplicationRepository {
	return &MockApplicationRepository{
		applications: make(map[string]models.Application),
	}
}

// Create adds a new application.
func (r *MockApplicationRepository) Create(application *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if application.ID == "" {
		application.ID = uuid.New().String()
	}
	if application.AppliedAt.IsZero() {
		application.AppliedAt = time.Now()
	}
	r.applications[application.ID] = *application
	return nil
}

// GetByJobAndUser returns the application a user submitted for a job.
func (r *MockApplicationRepository) GetByJobAndUser(jobID, userID string) (*models.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.applications {
		if a.JobID == jobID && a.UserID == userID {
			application := a
			return &application, nil
		}
	}
	return nil, fmt.Errorf("application for job %s by user %s: %w", jobID, userID, ErrNotFound)
}

// GetByUser returns all applications submitted by a user, newest first.
func (r *MockApplicationRepository) GetByUser(userID string) ([]models.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var applications []models.Application
	for _, a := range r.applications {
		if a.UserID == userID {
			applications = append(applications, a)
		}
	}
	sortApplicationsNewestFirst(applications)
	return applications, nil
}

// GetByJob returns all applications submitted against a job, newest first.
func (r *MockApplicationRepository) GetByJob(jobID string) ([]models.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var applications []models.Application
	for _, a := range r.applications {
		if a.JobID == jobID {
			applications = append(applications, a)
		}
	}
	sortApplicationsNewestFirst(applications)
	return applications, nil
}

// UpdateStatus updates the status of the application for a (job, user) pair.
func (r *MockApplicationRepository) UpdateStatus(jobID, userID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, a := range r.applications {
		if a.JobID == jobID && a.UserID == userID {
			a.Status = status
			r.applications[id] = a
			return nil
		}
	}
	return fmt.Errorf("application for job %s by user %s for status update: %w", jobID, userID, ErrNotFound)
}

// Count returns the number of stored applications.
func (r *MockApplicationRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.applications)), nil
}

func sortApplicationsNewestFirst(applications []models.Application) {
	sort.Slice(applications, func(i, j int) bool {
		return applications[i].AppliedAt.After(applications[j].AppliedAt)
	})
}
