package services_test

import (
	"testing"
	"time"

	"empregos/internal/models"
	"empregos/internal/repositories"
	"empregos/internal/services"

	"github.com/stretchr/testify/assert"
)

func newEmployer() *models.User {
	return &models.User{
		ID:         "emp-1",
		Email:      "empresa@example.com",
		Name:       "Ana Machava",
		Phone:      "861111111",
		Company:    "Machava Lda",
		IsEmployer: true,
	}
}

func newSeeker(id string) *models.User {
	return &models.User{
		ID:    id,
		Email: id + "@example.com",
		Name:  "Seeker " + id,
		Phone: "869999999",
	}
}

func jobInput() services.JobInput {
	return services.JobInput{
		Title:       "Warehouse Assistant",
		Description: "Receiving and dispatching goods",
		Location:    "Lichinga, Niassa",
		Vacancies:   2,
	}
}

func TestJobService_Create_Defaults(t *testing.T) {
	jobRepo := repositories.NewMockJobRepository()
	userRepo := repositories.NewMockUserRepository()
	service := services.NewJobService(jobRepo, userRepo)

	employer := newEmployer()
	job, err := service.Create(employer, jobInput())
	assert.NoError(t, err)

	assert.Equal(t, employer.ID, job.EmployerID)
	assert.Equal(t, employer.Name, job.EmployerName)
	assert.Equal(t, employer.Company, job.Company)
	assert.Equal(t, employer.Email, job.ContactEmail)
	assert.Equal(t, employer.Phone, job.ContactPhone)
	assert.Equal(t, "negotiable", job.Salary)
	assert.Equal(t, models.JobTypeFullTime, job.Type)
	assert.Equal(t, models.CategoryOther, job.Category)
	assert.True(t, job.IsActive)
	assert.Equal(t, 0, job.Filled)
	assert.WithinDuration(t, time.Now().Add(services.DefaultExpiry), job.ExpiresAt, time.Minute)
}

func TestJobService_Create_Rejections(t *testing.T) {
	jobRepo := repositories.NewMockJobRepository()
	userRepo := repositories.NewMockUserRepository()
	service := services.NewJobService(jobRepo, userRepo)

	// Seekers cannot publish
	_, err := service.Create(newSeeker("seeker-1"), jobInput())
	assert.ErrorIs(t, err, services.ErrForbidden)

	// Vacancies below one
	in := jobInput()
	in.Vacancies = 0
	_, err = service.Create(newEmployer(), in)
	assert.ErrorIs(t, err, services.ErrValidation)

	// Unknown job type
	in = jobInput()
	in.Type = "Seasonal"
	_, err = service.Create(newEmployer(), in)
	assert.ErrorIs(t, err, services.ErrValidation)

	// Unknown category
	in = jobInput()
	in.Category = "Mining"
	_, err = service.Create(newEmployer(), in)
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestJobService_Search(t *testing.T) {
	jobRepo := repositories.NewMockJobRepository()
	userRepo := repositories.NewMockUserRepository()
	service := services.NewJobService(jobRepo, userRepo)

	employer := newEmployer()
	mustCreate := func(in services.JobInput) *models.Job {
		job, err := service.Create(employer, in)
		assert.NoError(t, err)
		return job
	}

	driver := jobInput()
	driver.Title = "Driver"
	driver.Category = models.CategoryTransport
	mustCreate(driver)

	engineer := jobInput()
	engineer.Title = "Backend Engineer"
	engineer.Category = models.CategoryTechnology
	mustCreate(engineer)

	closedJob := mustCreate(jobInput())
	_, err := service.Toggle(closedJob.ID, employer)
	assert.NoError(t, err)

	// Case-insensitive search
	jobs, err := service.Search("", "", "driver")
	assert.NoError(t, err)
	assert.Len(t, jobs, 1)
	assert.Equal(t, "Driver", jobs[0].Title)

	// Category and search combined
	jobs, err = service.Search(models.CategoryTechnology, "", "ENGINEER")
	assert.NoError(t, err)
	assert.Len(t, jobs, 1)
	assert.Equal(t, "Backend Engineer", jobs[0].Title)

	// Inactive jobs never show up
	jobs, err = service.Search("", "", "")
	assert.NoError(t, err)
	for _, job := range jobs {
		assert.True(t, job.IsActive)
		assert.NotEqual(t, closedJob.ID, job.ID)
	}
}

func TestJobService_Update(t *testing.T) {
	jobRepo := repositories.NewMockJobRepository()
	userRepo := repositories.NewMockUserRepository()
	service := services.NewJobService(jobRepo, userRepo)

	employer := newEmployer()
	job, err := service.Create(employer, jobInput())
	assert.NoError(t, err)

	newTitle := "Senior Warehouse Assistant"
	newSalary := "15000 MZN"
	updated, err := service.Update(job.ID, employer, services.JobPatch{
		Title:  &newTitle,
		Salary: &newSalary,
	})
	assert.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, newSalary, updated.Salary)
	// Untouched and protected fields survive the patch
	assert.Equal(t, job.Description, updated.Description)
	assert.Equal(t, employer.ID, updated.EmployerID)
	assert.Equal(t, job.Filled, updated.Filled)

	// Vacancies cannot drop below one
	zero := 0
	_, err = service.Update(job.ID, employer, services.JobPatch{Vacancies: &zero})
	assert.ErrorIs(t, err, services.ErrValidation)

	// Another employer cannot update the job
	other := newEmployer()
	other.ID = "emp-2"
	_, err = service.Update(job.ID, other, services.JobPatch{Title: &newTitle})
	assert.ErrorIs(t, err, services.ErrForbidden)

	// Unknown job
	_, err = service.Update("missing", employer, services.JobPatch{Title: &newTitle})
	assert.ErrorIs(t, err, services.ErrJobNotFound)
}

func TestJobService_Toggle(t *testing.T) {
	jobRepo := repositories.NewMockJobRepository()
	userRepo := repositories.NewMockUserRepository()
	service := services.NewJobService(jobRepo, userRepo)

	employer := newEmployer()
	job, err := service.Create(employer, jobInput())
	assert.NoError(t, err)
	assert.True(t, job.IsActive)

	toggled, err := service.Toggle(job.ID, employer)
	assert.NoError(t, err)
	assert.False(t, toggled.IsActive)

	// Toggling twice restores the original value
	restored, err := service.Toggle(job.ID, employer)
	assert.NoError(t, err)
	assert.True(t, restored.IsActive)

	other := newEmployer()
	other.ID = "emp-2"
	_, err = service.Toggle(job.ID, other)
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestJobService_ListByEmployer(t *testing.T) {
	jobRepo := repositories.NewMockJobRepository()
	userRepo := repositories.NewMockUserRepository()
	service := services.NewJobService(jobRepo, userRepo)

	employer := newEmployer()
	active, err := service.Create(employer, jobInput())
	assert.NoError(t, err)
	closed, err := service.Create(employer, jobInput())
	assert.NoError(t, err)
	_, err = service.Toggle(closed.ID, employer)
	assert.NoError(t, err)

	// The owner sees both active and inactive jobs
	jobs, err := service.ListByEmployer(employer.ID, employer)
	assert.NoError(t, err)
	assert.Len(t, jobs, 2)
	ids := []string{jobs[0].ID, jobs[1].ID}
	assert.Contains(t, ids, active.ID)
	assert.Contains(t, ids, closed.ID)

	// Anyone else is rejected
	_, err = service.ListByEmployer(employer.ID, newSeeker("seeker-1"))
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestJobService_ListByLocation(t *testing.T) {
	jobRepo := repositories.NewMockJobRepository()
	userRepo := repositories.NewMockUserRepository()
	service := services.NewJobService(jobRepo, userRepo)

	employer := newEmployer()
	in := jobInput()
	in.Location = "Lichinga, Niassa"
	_, err := service.Create(employer, in)
	assert.NoError(t, err)

	elsewhere := jobInput()
	elsewhere.Location = "Maputo"
	_, err = service.Create(employer, elsewhere)
	assert.NoError(t, err)

	jobs, err := service.ListByLocation("lichinga")
	assert.NoError(t, err)
	assert.Len(t, jobs, 1)
	assert.Equal(t, "Lichinga, Niassa", jobs[0].Location)
}

func TestJobService_Get(t *testing.T) {
	jobRepo := repositories.NewMockJobRepository()
	userRepo := repositories.NewMockUserRepository()
	service := services.NewJobService(jobRepo, userRepo)

	employer := newEmployer()
	assert.NoError(t, userRepo.Create(employer))

	job, err := service.Create(employer, jobInput())
	assert.NoError(t, err)

	detail, err := service.Get(job.ID)
	assert.NoError(t, err)
	assert.Equal(t, job.ID, detail.ID)
	if assert.NotNil(t, detail.Employer) {
		assert.Equal(t, employer.Name, detail.Employer.Name)
		assert.Equal(t, employer.Email, detail.Employer.Email)
	}

	_, err = service.Get("missing")
	assert.ErrorIs(t, err, services.ErrJobNotFound)
}
