package server

import (
	"io"

	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Dashboard handles GET /api/dashboard, the session-gated landing view.
func (s *Server) Dashboard(c *fiber.Ctx) error {
	ctx := c.Context()
	sess := currentSession(c)

	user, err := s.userRepo.GetByID(ctx, sess.UserID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	profile, err := s.profileRepo.GetByUserID(ctx, sess.UserID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	incoming, err := s.swapRepo.ListIncoming(ctx, sess.UserID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	pending := 0
	for _, row := range incoming {
		if row.Status == models.SwapStatusPending {
			pending++
		}
	}

	return c.JSON(fiber.Map{
		"user":                  user,
		"profile":               profile,
		"pending_swap_requests": pending,
	})
}

// GetMyProfile handles GET /api/profile. A null profile means the user has not
// published one yet; that is a valid state, not an error.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	sess := currentSession(c)

	profile, err := s.profileRepo.GetByUserID(c.Context(), sess.UserID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"profile": profile,
	})
}

// SaveMyProfile handles PUT /api/profile. The whole profile is written on
// every save as a single atomic upsert keyed on the user.
func (s *Server) SaveMyProfile(c *fiber.Ctx) error {
	sess := currentSession(c)

	var req struct {
		SkillOffered string `json:"skill_offered"`
		SkillWanted  string `json:"skill_wanted"`
		Availability string `json:"availability"`
		IsPublic     bool   `json:"is_public"`
		Location     string `json:"location"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile := &models.SkillProfile{
		UserID:       sess.UserID,
		SkillOffered: req.SkillOffered,
		SkillWanted:  req.SkillWanted,
		Availability: req.Availability,
		IsPublic:     req.IsPublic,
		Location:     req.Location,
	}

	if err := s.profileRepo.Upsert(c.Context(), profile); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	saved, err := s.profileRepo.GetByUserID(c.Context(), sess.UserID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated!",
		"profile": saved,
	})
}

// UploadProfilePicture handles POST /api/profile/picture. Expects a multipart
// form with a profile_pic file part.
func (s *Server) UploadProfilePicture(c *fiber.Ctx) error {
	sess := currentSession(c)

	file, err := c.FormFile("profile_pic")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No file uploaded"))
	}

	src, err := file.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}
	defer func() { _ = src.Close() }()

	content, err := io.ReadAll(src)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}

	filename, err := s.uploadService.UploadProfilePicture(c.UserContext(), service.UploadProfilePictureInput{
		UserID:   sess.UserID,
		Filename: file.Filename,
		Content:  content,
	})
	if err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "VALIDATION_ERROR" {
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"message":     "Profile picture updated!",
		"profile_pic": filename,
	})
}
