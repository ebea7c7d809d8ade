package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"empregos/internal/models"

	"github.com/google/uuid"
)

// MockJobRepository is an in-memory implementation of JobRepository.
type MockJobRepository struct {
	jobs map[string]models.Job
	mu   sync.RWMutex
}

// NewMockJobRepository creates a new instance of MockJobRepository.
func NewMockJobRepository() *MockJobRepository {
	return &MockJobRepository{
		jobs: make(map[string]models.Job),
	}
}

// Create adds a new job.
func (r *MockJobRepository) Create(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	r.jobs[job.ID] = *job
	return nil
}

// GetByID returns a job by its ID.
func (r *MockJobRepository) GetByID(id string) (*models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job with ID %s: %w", id, ErrNotFound)
	}
	return &job, nil
}

// Update modifies an existing job.
func (r *MockJobRepository) Update(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.jobs[job.ID]
	if !ok {
		return fmt.Errorf("job with ID %s for update: %w", job.ID, ErrNotFound)
	}
	r.jobs[job.ID] = *job
	return nil
}

// SearchActive returns active jobs matching the filter, newest first.
func (r *MockJobRepository) SearchActive(filter JobFilter) ([]models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(filter.Search)
	var jobs []models.Job
	for _, job := range r.jobs {
		if !job.IsActive {
			continue
		}
		if filter.Category != "" && job.Category != filter.Category {
			continue
		}
		if filter.Type != "" && job.Type != filter.Type {
			continue
		}
		if needle != "" && !matchesSearch(job, needle) {
			continue
		}
		jobs = append(jobs, job)
	}
	sortJobsNewestFirst(jobs)

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultJobLimit
	}
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs, nil
}

// GetByEmployer returns all jobs for an employer, newest first.
func (r *MockJobRepository) GetByEmployer(employerID string) ([]models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var jobs []models.Job
	for _, job := range r.jobs {
		if job.EmployerID == employerID {
			jobs = append(jobs, job)
		}
	}
	sortJobsNewestFirst(jobs)
	return jobs, nil
}

// GetActiveByLocation returns active jobs whose location contains the given
// district, newest first.
func (r *MockJobRepository) GetActiveByLocation(district string) ([]models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(district)
	var jobs []models.Job
	for _, job := range r.jobs {
		if job.IsActive && strings.Contains(strings.ToLower(job.Location), needle) {
			jobs = append(jobs, job)
		}
	}
	sortJobsNewestFirst(jobs)
	return jobs, nil
}

// CountActive returns the number of active jobs.
func (r *MockJobRepository) CountActive() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, job := range r.jobs {
		if job.IsActive {
			count++
		}
	}
	return count, nil
}

// CountActiveByCategory returns active job counts grouped by category.
func (r *MockJobRepository) CountActiveByCategory() (map[string]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int64)
	for _, job := range r.jobs {
		if job.IsActive {
			counts[job.Category]++
		}
	}
	return counts, nil
}

func matchesSearch(job models.Job, needle string) bool {
	for _, field := range []string{job.Title, job.Description, job.Company, job.Location} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func sortJobsNewestFirst(jobs []models.Job) {
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
}
