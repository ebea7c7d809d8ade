package handlers

import (
	"log"

	"empregos/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// JobHandler handles HTTP requests for job listings.
type JobHandler struct {
	jobService *services.JobService
	validate   *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
		validate:   validator.New(),
	}
}

// RegisterRoutes registers the job routes with the Fiber app. requireAuth
// guards the routes that need a resolved caller; search and detail views are
// public. Routes with static prefixes are registered before the parameterized
// detail route.
func (h *JobHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	jobs := router.Group("/jobs")
	jobs.Get("/", h.HandleSearch)
	jobs.Get("/location/:district", h.HandleByLocation)
	jobs.Get("/employer/:employerId", requireAuth, h.HandleByEmployer)
	jobs.Post("/", requireAuth, h.HandleCreate)
	jobs.Get("/:id", h.HandleGet)
	jobs.Put("/:id/toggle", requireAuth, h.HandleToggle)
	jobs.Put("/:id", requireAuth, h.HandleUpdate)
}

// HandleCreate publishes a new job for the authenticated employer.
func (h *JobHandler) HandleCreate(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var in services.JobInput
	if err := c.BodyParser(&in); err != nil {
		log.Printf("Error parsing job request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if err := h.validate.Struct(in); err != nil {
		return respondValidationError(c, err)
	}

	job, err := h.jobService.Create(user, in)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "job published",
		"job":     job,
	})
}

// HandleSearch lists active jobs, optionally filtered by category, type and
// a free-text search term.
func (h *JobHandler) HandleSearch(c *fiber.Ctx) error {
	jobs, err := h.jobService.Search(
		c.Query("category"),
		c.Query("type"),
		c.Query("search"),
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(jobs)
}

// HandleGet fetches a single job with its employer contact details.
func (h *JobHandler) HandleGet(c *fiber.Ctx) error {
	detail, err := h.jobService.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(detail)
}

// HandleByEmployer lists all jobs of the authenticated employer.
func (h *JobHandler) HandleByEmployer(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	jobs, err := h.jobService.ListByEmployer(c.Params("employerId"), user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(jobs)
}

// HandleUpdate applies a partial update to a job owned by the caller.
func (h *JobHandler) HandleUpdate(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var patch services.JobPatch
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing job patch body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	job, err := h.jobService.Update(c.Params("id"), user, patch)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "job updated",
		"job":     job,
	})
}

// HandleToggle flips the active flag of a job owned by the caller.
func (h *JobHandler) HandleToggle(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	job, err := h.jobService.Toggle(c.Params("id"), user)
	if err != nil {
		return respondError(c, err)
	}

	message := "job closed"
	if job.IsActive {
		message = "job reopened"
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"job":     job,
	})
}

// HandleByLocation lists active jobs for a district.
func (h *JobHandler) HandleByLocation(c *fiber.Ctx) error {
	jobs, err := h.jobService.ListByLocation(c.Params("district"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(jobs)
}
