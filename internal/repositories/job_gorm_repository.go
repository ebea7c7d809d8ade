package repositories

import (
	"errors"
	"fmt"
	"strings"

	"empregos/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMJobRepository is a GORM implementation of JobRepository.
type GORMJobRepository struct {
	db *gorm.DB
}

// NewGORMJobRepository creates a new instance of GORMJobRepository.
func NewGORMJobRepository(db *gorm.DB) *GORMJobRepository {
	return &GORMJobRepository{
		db: db,
	}
}

// Create creates a new job in the database.
func (r *GORMJobRepository) Create(job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if err := r.db.Omit(clause.Associations).Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// GetByID retrieves a single job by its ID, including its applicants.
func (r *GORMJobRepository) GetByID(id string) (*models.Job, error) {
	var job models.Job
	if err := r.db.Preload("Applicants").First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}
	return &job, nil
}

// Update persists changes to an existing job. Applications are owned by the
// application repository, so the association is never written from here.
func (r *GORMJobRepository) Update(job *models.Job) error {
	res := r.db.Omit(clause.Associations).Save(job)
	if res.Error != nil {
		return fmt.Errorf("failed to update job: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("job with ID %s for update: %w", job.ID, ErrNotFound)
	}
	return nil
}

// SearchActive retrieves active jobs matching the filter, newest first.
func (r *GORMJobRepository) SearchActive(filter JobFilter) ([]models.Job, error) {
	q := r.db.Where("is_active = ?", true)
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(company) LIKE ? OR LOWER(location) LIKE ?",
			like, like, like, like,
		)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultJobLimit
	}

	var jobs []models.Job
	if err := q.Order("created_at DESC").Limit(limit).Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}
	return jobs, nil
}

// GetByEmployer retrieves all jobs for an employer, active or not, newest first.
func (r *GORMJobRepository) GetByEmployer(employerID string) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Where("employer_id = ?", employerID).Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to get jobs for employer %s: %w", employerID, err)
	}
	return jobs, nil
}

// GetActiveByLocation retrieves active jobs whose location contains the given
// district, case-insensitively, newest first.
func (r *GORMJobRepository) GetActiveByLocation(district string) ([]models.Job, error) {
	like := "%" + strings.ToLower(district) + "%"
	var jobs []models.Job
	if err := r.db.Where("is_active = ? AND LOWER(location) LIKE ?", true, like).
		Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to get jobs by location %s: %w", district, err)
	}
	return jobs, nil
}

// CountActive returns the number of active jobs.
func (r *GORMJobRepository) CountActive() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Job{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count active jobs: %w", err)
	}
	return count, nil
}

// CountActiveByCategory returns active job counts grouped by category.
func (r *GORMJobRepository) CountActiveByCategory() (map[string]int64, error) {
	type categoryCount struct {
		Category string
		Count    int64
	}
	var rows []categoryCount
	err := r.db.Model(&models.Job{}).
		Where("is_active = ?", true).
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs by category: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	return counts, nil
}
