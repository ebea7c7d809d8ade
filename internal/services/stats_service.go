package services

import (
	"fmt"

	"empregos/internal/repositories"
)

// StatsService provides read-only aggregate counts over the board.
type StatsService struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
	appRepo  repositories.ApplicationRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository, appRepo repositories.ApplicationRepository) *StatsService {
	return &StatsService{
		jobRepo:  jobRepo,
		userRepo: userRepo,
		appRepo:  appRepo,
	}
}

// Stats is the aggregate snapshot returned by Overview.
type Stats struct {
	TotalJobs         int64            `json:"totalJobs"`
	TotalUsers        int64            `json:"totalUsers"`
	TotalApplications int64            `json:"totalApplications"`
	JobsByCategory    map[string]int64 `json:"jobsByCategory"`
}

// Overview returns the active job count, user count, application count and
// active job counts per category.
func (s *StatsService) Overview() (*Stats, error) {
	totalJobs, err := s.jobRepo.CountActive()
	if err != nil {
		return nil, fmt.Errorf("failed to count active jobs: %w", err)
	}
	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	totalApplications, err := s.appRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}
	byCategory, err := s.jobRepo.CountActiveByCategory()
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs by category: %w", err)
	}

	return &Stats{
		TotalJobs:         totalJobs,
		TotalUsers:        totalUsers,
		TotalApplications: totalApplications,
		JobsByCategory:    byCategory,
	}, nil
}
