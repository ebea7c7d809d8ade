package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"empregos/internal/models"
	"empregos/internal/repositories"
)

// DefaultExpiry is how long a job stays open when no expiry is given.
const DefaultExpiry = 30 * 24 * time.Hour

// JobService handles business logic related to job listings.
type JobService struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
}

// NewJobService creates a new JobService.
func NewJobService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository) *JobService {
	return &JobService{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

// JobInput carries the fields accepted when publishing a job.
type JobInput struct {
	Title        string     `json:"title" validate:"required,min=3,max=150"`
	Description  string     `json:"description" validate:"required"`
	Company      string     `json:"company"`
	Location     string     `json:"location" validate:"required"`
	Salary       string     `json:"salary"`
	Vacancies    int        `json:"vacancies" validate:"required,gte=1"`
	Requirements []string   `json:"requirements"`
	Benefits     []string   `json:"benefits"`
	Type         string     `json:"type" validate:"omitempty,oneof=Full-Time Part-Time Temporary Freelance Internship"`
	Category     string     `json:"category" validate:"omitempty,oneof=Administrative Sales Construction Education Health Transport Technology Agriculture Other"`
	ContactPhone string     `json:"contactPhone"`
	ContactEmail string     `json:"contactEmail" validate:"omitempty,email"`
	ExpiresAt    *time.Time `json:"expiresAt"`
}

// Create publishes a new job owned by the given employer. Company and
// contact details fall back to the employer's own profile when omitted.
func (s *JobService) Create(employer *models.User, in JobInput) (*models.Job, error) {
	if !employer.IsEmployer {
		return nil, fmt.Errorf("%w: only employers can publish jobs", ErrForbidden)
	}
	if in.Title == "" || in.Description == "" || in.Location == "" {
		return nil, fmt.Errorf("%w: title, description and location are required", ErrValidation)
	}
	if in.Vacancies < 1 {
		return nil, fmt.Errorf("%w: vacancies must be at least 1", ErrValidation)
	}
	if in.Type != "" && !models.ValidJobType(in.Type) {
		return nil, fmt.Errorf("%w: unknown job type %q", ErrValidation, in.Type)
	}
	if in.Category != "" && !models.ValidJobCategory(in.Category) {
		return nil, fmt.Errorf("%w: unknown job category %q", ErrValidation, in.Category)
	}

	job := &models.Job{
		Title:        in.Title,
		Description:  in.Description,
		Company:      in.Company,
		EmployerID:   employer.ID,
		EmployerName: employer.Name,
		Location:     in.Location,
		Salary:       in.Salary,
		Vacancies:    in.Vacancies,
		Filled:       0,
		Requirements: in.Requirements,
		Benefits:     in.Benefits,
		Type:         in.Type,
		Category:     in.Category,
		ContactPhone: in.ContactPhone,
		ContactEmail: in.ContactEmail,
		IsActive:     true,
	}
	if job.Company == "" {
		job.Company = employer.Company
	}
	if job.ContactEmail == "" {
		job.ContactEmail = employer.Email
	}
	if job.ContactPhone == "" {
		job.ContactPhone = employer.Phone
	}
	if job.Salary == "" {
		job.Salary = "negotiable"
	}
	if job.Type == "" {
		job.Type = models.JobTypeFullTime
	}
	if job.Category == "" {
		job.Category = models.CategoryOther
	}
	if in.ExpiresAt != nil {
		job.ExpiresAt = *in.ExpiresAt
	} else {
		job.ExpiresAt = time.Now().Add(DefaultExpiry)
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, fmt.Errorf("failed to publish job: %w", err)
	}
	return job, nil
}

// Search returns active jobs matching the optional category, type and
// free-text filters, newest first, capped at the default limit.
func (s *JobService) Search(category, jobType, search string) ([]models.Job, error) {
	jobs, err := s.jobRepo.SearchActive(repositories.JobFilter{
		Category: category,
		Type:     jobType,
		Search:   search,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}
	return jobs, nil
}

// EmployerContact is the subset of the employer profile exposed on a job
// detail view.
type EmployerContact struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

// JobDetail is a job together with its employer's contact details.
type JobDetail struct {
	models.Job
	Employer *EmployerContact `json:"employer,omitempty"`
}

// Get retrieves a single job and resolves its employer contact details.
func (s *JobService) Get(id string) (*JobDetail, error) {
	job, err := s.jobRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to load job %s: %w", id, err)
	}

	detail := &JobDetail{Job: *job}
	employer, err := s.userRepo.GetByID(job.EmployerID)
	if err != nil {
		// The listing is still useful without the employer profile.
		log.Printf("could not resolve employer %s for job %s: %v", job.EmployerID, id, err)
	} else {
		detail.Employer = &EmployerContact{
			ID:      employer.ID,
			Name:    employer.Name,
			Email:   employer.Email,
			Phone:   employer.Phone,
			Company: employer.Company,
		}
	}
	return detail, nil
}

// ListByEmployer returns all jobs belonging to an employer, active or not.
// Callers may only list their own jobs.
func (s *JobService) ListByEmployer(employerID string, caller *models.User) ([]models.Job, error) {
	if caller.ID != employerID {
		return nil, fmt.Errorf("%w: cannot list another employer's jobs", ErrForbidden)
	}
	jobs, err := s.jobRepo.GetByEmployer(employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs for employer %s: %w", employerID, err)
	}
	return jobs, nil
}

// JobPatch carries the mutable job fields for an update. Nil fields are left
// untouched; employer identity, timestamps, the fill counter and the
// applicant list cannot be changed through it.
type JobPatch struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Company      *string    `json:"company"`
	Location     *string    `json:"location"`
	Salary       *string    `json:"salary"`
	Vacancies    *int       `json:"vacancies"`
	Requirements *[]string  `json:"requirements"`
	Benefits     *[]string  `json:"benefits"`
	Type         *string    `json:"type"`
	Category     *string    `json:"category"`
	ContactPhone *string    `json:"contactPhone"`
	ContactEmail *string    `json:"contactEmail"`
	ExpiresAt    *time.Time `json:"expiresAt"`
}

// Update applies a patch to a job owned by the caller.
func (s *JobService) Update(id string, caller *models.User, patch JobPatch) (*models.Job, error) {
	job, err := s.ownedJob(id, caller)
	if err != nil {
		return nil, err
	}

	if patch.Vacancies != nil && *patch.Vacancies < 1 {
		return nil, fmt.Errorf("%w: vacancies must be at least 1", ErrValidation)
	}
	if patch.Type != nil && !models.ValidJobType(*patch.Type) {
		return nil, fmt.Errorf("%w: unknown job type %q", ErrValidation, *patch.Type)
	}
	if patch.Category != nil && !models.ValidJobCategory(*patch.Category) {
		return nil, fmt.Errorf("%w: unknown job category %q", ErrValidation, *patch.Category)
	}

	if patch.Title != nil {
		job.Title = *patch.Title
	}
	if patch.Description != nil {
		job.Description = *patch.Description
	}
	if patch.Company != nil {
		job.Company = *patch.Company
	}
	if patch.Location != nil {
		job.Location = *patch.Location
	}
	if patch.Salary != nil {
		job.Salary = *patch.Salary
	}
	if patch.Vacancies != nil {
		job.Vacancies = *patch.Vacancies
	}
	if patch.Requirements != nil {
		job.Requirements = *patch.Requirements
	}
	if patch.Benefits != nil {
		job.Benefits = *patch.Benefits
	}
	if patch.Type != nil {
		job.Type = *patch.Type
	}
	if patch.Category != nil {
		job.Category = *patch.Category
	}
	if patch.ContactPhone != nil {
		job.ContactPhone = *patch.ContactPhone
	}
	if patch.ContactEmail != nil {
		job.ContactEmail = *patch.ContactEmail
	}
	if patch.ExpiresAt != nil {
		job.ExpiresAt = *patch.ExpiresAt
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, fmt.Errorf("failed to update job %s: %w", id, err)
	}
	return job, nil
}

// Toggle flips the active flag of a job owned by the caller.
func (s *JobService) Toggle(id string, caller *models.User) (*models.Job, error) {
	job, err := s.ownedJob(id, caller)
	if err != nil {
		return nil, err
	}

	job.IsActive = !job.IsActive
	if err := s.jobRepo.Update(job); err != nil {
		return nil, fmt.Errorf("failed to toggle job %s: %w", id, err)
	}
	return job, nil
}

// ListByLocation returns active jobs whose location contains the district,
// case-insensitively, newest first.
func (s *JobService) ListByLocation(district string) ([]models.Job, error) {
	jobs, err := s.jobRepo.GetActiveByLocation(district)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs for location %s: %w", district, err)
	}
	return jobs, nil
}

// ownedJob loads a job and checks that the caller owns it.
func (s *JobService) ownedJob(id string, caller *models.User) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to load job %s: %w", id, err)
	}
	if job.EmployerID != caller.ID {
		return nil, fmt.Errorf("%w: job belongs to another employer", ErrForbidden)
	}
	return job, nil
}
