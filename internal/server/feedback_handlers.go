package server

import (
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SubmitFeedback handles POST /api/feedback/:swapId. The insert is
// unconditional: neither the swap id's existence nor the rating range is
// validated.
func (s *Server) SubmitFeedback(c *fiber.Ctx) error {
	swapID, err := s.parseID(c, "swapId")
	if err != nil {
		return nil
	}

	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	feedback := &models.Feedback{
		SwapID:  swapID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if createErr := s.feedbackRepo.Create(c.Context(), feedback); createErr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, createErr)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Feedback submitted!",
		"feedback": feedback,
	})
}
