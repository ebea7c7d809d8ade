package middleware

import (
	"errors"
	"log"

	"empregos/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// UserLocalKey is the Fiber locals key under which the resolved user is stored.
const UserLocalKey = "user"

// UserIDHeader carries the caller's raw user identifier. The value is not a
// secret; this is a trusted-client identification scheme, not real
// authentication.
const UserIDHeader = "user-id"

// RequireUser resolves the user-id header into a full user record and stores
// it in the request locals for downstream handlers.
func RequireUser(userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get(UserIDHeader)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "not authenticated",
			})
		}

		user, err := userRepo.GetByID(userID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "user not found",
				})
			}
			log.Printf("auth lookup failed for %s: %v", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "authentication failure",
			})
		}

		c.Locals(UserLocalKey, user)
		return c.Next()
	}
}
