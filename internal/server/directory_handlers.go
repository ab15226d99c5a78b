package server

import (
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Browse handles GET /api/browse?query=. Returns all public profiles joined
// with owner names; a non-empty query filters offered skills by case-sensitive
// substring match.
func (s *Server) Browse(c *fiber.Ctx) error {
	query := c.Query("query")

	entries, err := s.profileRepo.Browse(c.Context(), query)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"query":   query,
		"results": entries,
	})
}
