package handlers

import (
	"log"

	"empregos/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ApplicationHandler handles HTTP requests for job applications.
type ApplicationHandler struct {
	appService *services.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(appService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		appService: appService,
	}
}

// RegisterRoutes registers the application routes with the Fiber app. All of
// them require an authenticated caller.
func (h *ApplicationHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	router.Post("/jobs/:id/apply", requireAuth, h.HandleApply)
	router.Get("/jobs/:id/applicants", requireAuth, h.HandleListApplicants)
	router.Put("/jobs/:jobId/applicants/:userId", requireAuth, h.HandleUpdateStatus)
	router.Get("/applications/my", requireAuth, h.HandleMyApplications)
}

// ApplyRequest represents the optional request body when applying to a job.
type ApplyRequest struct {
	Message string `json:"message"`
}

// HandleApply submits the caller's application to a job.
func (h *ApplicationHandler) HandleApply(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var req ApplyRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			log.Printf("Error parsing apply request body: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	application, err := h.appService.Apply(c.Params("id"), user, req.Message)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":     true,
		"message":     "application submitted",
		"application": application,
	})
}

// HandleMyApplications lists the caller's applications with job annotations.
func (h *ApplicationHandler) HandleMyApplications(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	applications, err := h.appService.ListMine(user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(applications)
}

// HandleListApplicants lists the applicants of a job owned by the caller.
func (h *ApplicationHandler) HandleListApplicants(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	applicants, err := h.appService.ListApplicants(c.Params("id"), user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(applicants)
}

// UpdateStatusRequest represents the request body for an applicant status
// change.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateStatus sets an applicant's status on a job owned by the caller.
func (h *ApplicationHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing status update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.appService.UpdateStatus(c.Params("jobId"), c.Params("userId"), user, req.Status); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "status updated",
	})
}
