package server

import (
	"time"

	"skillswap/internal/models"
	"skillswap/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Register handles POST /api/auth/register. On success the client is expected
// to proceed to login; no session is established here.
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name, email, and password are required"))
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}

	if createErr := s.userRepo.Create(c.Context(), user); createErr != nil {
		if appErr, ok := createErr.(*models.AppError); ok && appErr.Code == "DUPLICATE_EMAIL" {
			return models.RespondWithError(c, fiber.StatusConflict, appErr)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, createErr)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registered successfully! You can now log in.",
		"user":    user,
		"landing": "/login",
	})
}

// Login handles POST /api/auth/login. On success it starts a Redis-backed
// session and returns the post-login landing: admins go to the admin view,
// everyone else to the dashboard. An email in the configured bootstrap-admin
// list is promoted to the admin role here; from then on the stored role is the
// sole authority.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid email or password"))
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); cmpErr != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid email or password"))
	}

	if s.config.IsBootstrapAdmin(user.Email) && !user.IsAdmin() {
		if roleErr := s.userRepo.SetRole(c.Context(), user.ID, models.RoleAdmin); roleErr != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, roleErr)
		}
		user.Role = models.RoleAdmin
	}

	sess, err := s.sessions.Create(c.Context(), user)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    sess.Token,
		Expires:  time.Now().Add(time.Duration(s.config.SessionTTLHours) * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	landing := "/dashboard"
	if user.IsAdmin() {
		landing = "/admin"
	}

	return c.JSON(fiber.Map{
		"user":    user,
		"landing": landing,
	})
}

// Logout handles POST /api/auth/logout. Destroys the server-side session and
// clears the cookie; logging out without a session is not an error.
func (s *Server) Logout(c *fiber.Ctx) error {
	token := c.Cookies(SessionCookie)
	if token != "" {
		if err := s.sessions.Destroy(c.Context(), token); err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{
		"message": "Logged out!",
		"landing": "/login",
	})
}
