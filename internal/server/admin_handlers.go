package server

import (
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetAdminOverview handles GET /api/admin. Returns unfiltered dumps of the
// users and feedback tables; access is gated by the session role check alone.
func (s *Server) GetAdminOverview(c *fiber.Ctx) error {
	ctx := c.Context()

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	feedbacks, err := s.feedbackRepo.List(ctx)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"users":     users,
		"feedbacks": feedbacks,
	})
}

// BanUser handles POST /api/admin/users/:id/ban. Sets the ban flag; existing
// sessions of the banned user are not invalidated and keep access until
// logout.
func (s *Server) BanUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if banErr := s.userRepo.SetBanned(c.Context(), userID, true); banErr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, banErr)
	}

	return c.JSON(fiber.Map{
		"message": "User banned.",
	})
}
