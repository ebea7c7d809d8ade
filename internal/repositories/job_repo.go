package repositories

import "empregos/internal/models"

// JobFilter narrows a search over active jobs. Zero values mean no
// constraint; Limit defaults to 50 when unset.
type JobFilter struct {
	Category string
	Type     string
	Search   string
	Limit    int
}

// DefaultJobLimit caps the number of jobs returned by a search.
const DefaultJobLimit = 50

// JobRepository defines the interface for job data access.
type JobRepository interface {
	Create(job *models.Job) error
	GetByID(id string) (*models.Job, error)
	Update(job *models.Job) error
	SearchActive(filter JobFilter) ([]models.Job, error)
	GetByEmployer(employerID string) ([]models.Job, error)
	GetActiveByLocation(district string) ([]models.Job, error)
	CountActive() (int64, error)
	CountActiveByCategory() (map[string]int64, error)
}
