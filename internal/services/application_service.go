package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"empregos/internal/models"
	"empregos/internal/repositories"
	"empregos/pkg/rabbitmq"
)

// ApplicationService handles business logic related to job applications.
type ApplicationService struct {
	appRepo  repositories.ApplicationRepository
	jobRepo  repositories.JobRepository
	mqClient *rabbitmq.Client
}

// NewApplicationService creates a new ApplicationService. The RabbitMQ
// client may be nil, in which case event publishing is skipped.
func NewApplicationService(appRepo repositories.ApplicationRepository, jobRepo repositories.JobRepository, mqClient *rabbitmq.Client) *ApplicationService {
	return &ApplicationService{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		mqClient: mqClient,
	}
}

// Apply submits an application for the caller against an active job. A user
// can apply to a given job at most once, and not once every vacancy is
// filled.
func (s *ApplicationService) Apply(jobID string, caller *models.User, message string) (*models.Application, error) {
	job, err := s.jobRepo.GetByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to load job %s: %w", jobID, err)
	}
	if !job.IsActive {
		return nil, fmt.Errorf("%w: job is closed", ErrJobNotFound)
	}
	if job.Filled >= job.Vacancies {
		return nil, ErrVacancyFull
	}

	existing, err := s.appRepo.GetByJobAndUser(jobID, caller.ID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing application: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateApplication
	}

	application := &models.Application{
		JobID:     jobID,
		UserID:    caller.ID,
		UserName:  caller.Name,
		UserEmail: caller.Email,
		UserPhone: caller.Phone,
		Message:   message,
		Status:    models.StatusPending,
		AppliedAt: time.Now(),
	}
	if err := s.appRepo.Create(application); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	s.publish("application.submitted", map[string]interface{}{
		"applicationID": application.ID,
		"jobID":         jobID,
		"userID":        caller.ID,
		"status":        application.Status,
	})

	return application, nil
}

// ApplicationWithJob annotates an application with the basics of the job it
// targets.
type ApplicationWithJob struct {
	models.Application
	JobTitle    string `json:"jobTitle"`
	JobCompany  string `json:"jobCompany"`
	JobLocation string `json:"jobLocation"`
}

// ListMine returns the caller's applications, newest first, annotated with
// job title, company and location.
func (s *ApplicationService) ListMine(caller *models.User) ([]ApplicationWithJob, error) {
	applications, err := s.appRepo.GetByUser(caller.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications for user %s: %w", caller.ID, err)
	}

	annotated := make([]ApplicationWithJob, 0, len(applications))
	for _, application := range applications {
		entry := ApplicationWithJob{Application: application}
		job, err := s.jobRepo.GetByID(application.JobID)
		if err != nil {
			log.Printf("could not resolve job %s for application %s: %v", application.JobID, application.ID, err)
		} else {
			entry.JobTitle = job.Title
			entry.JobCompany = job.Company
			entry.JobLocation = job.Location
		}
		annotated = append(annotated, entry)
	}
	return annotated, nil
}

// ListApplicants returns the applications submitted against a job owned by
// the caller.
func (s *ApplicationService) ListApplicants(jobID string, caller *models.User) ([]models.Application, error) {
	if _, err := s.ownedJob(jobID, caller); err != nil {
		return nil, err
	}
	applications, err := s.appRepo.GetByJob(jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants for job %s: %w", jobID, err)
	}
	return applications, nil
}

// UpdateStatus sets the status of an applicant on a job owned by the caller.
// Accepting an applicant increments the job's fill counter; the counter is
// advisory and is not capped at the vacancy count.
func (s *ApplicationService) UpdateStatus(jobID, applicantUserID string, caller *models.User, status string) error {
	if !models.ValidStatus(status) {
		return fmt.Errorf("%w: unknown application status %q", ErrValidation, status)
	}

	job, err := s.ownedJob(jobID, caller)
	if err != nil {
		return err
	}

	if err := s.appRepo.UpdateStatus(jobID, applicantUserID, status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrApplicationNotFound
		}
		return fmt.Errorf("failed to update application status: %w", err)
	}

	if status == models.StatusAccepted {
		job.Filled++
		if err := s.jobRepo.Update(job); err != nil {
			return fmt.Errorf("failed to update fill count for job %s: %w", jobID, err)
		}
	}

	s.publish("applicant.status_changed", map[string]interface{}{
		"jobID":  jobID,
		"userID": applicantUserID,
		"status": status,
	})

	return nil
}

func (s *ApplicationService) publish(eventType string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishApplicationEvent(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}

func (s *ApplicationService) ownedJob(jobID string, caller *models.User) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to load job %s: %w", jobID, err)
	}
	if job.EmployerID != caller.ID {
		return nil, fmt.Errorf("%w: job belongs to another employer", ErrForbidden)
	}
	return job, nil
}
