package server

import (
	"net/url"

	"skillswap/internal/middleware"
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SendSwapRequest handles POST /api/swaps/:receiverId/:skill. Always creates a
// new pending request; there is no de-duplication and no self-request check.
func (s *Server) SendSwapRequest(c *fiber.Ctx) error {
	sess := currentSession(c)

	receiverID, err := s.parseID(c, "receiverId")
	if err != nil {
		return nil
	}

	skill := c.Params("skill")
	if unescaped, uerr := url.PathUnescape(skill); uerr == nil {
		skill = unescaped
	}
	if skill == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Skill is required"))
	}

	request := &models.SwapRequest{
		SenderID:   sess.UserID,
		ReceiverID: receiverID,
		Skill:      skill,
		Status:     models.SwapStatusPending,
	}

	if createErr := s.swapRepo.Create(c.Context(), request); createErr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, createErr)
	}

	middleware.SwapRequestsCreated.Inc()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Swap request sent!",
		"request": request,
	})
}

// GetIncomingSwapRequests handles GET /api/swaps, the receiver's inbox.
func (s *Server) GetIncomingSwapRequests(c *fiber.Ctx) error {
	sess := currentSession(c)

	rows, err := s.swapRepo.ListIncoming(c.Context(), sess.UserID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"requests": rows,
	})
}

// AcceptSwapRequest handles POST /api/swaps/:id/accept.
func (s *Server) AcceptSwapRequest(c *fiber.Ctx) error {
	return s.applySwapStatus(c, models.SwapStatusAccepted, models.SwapActionAccept)
}

// RejectSwapRequest handles POST /api/swaps/:id/reject.
func (s *Server) RejectSwapRequest(c *fiber.Ctx) error {
	return s.applySwapStatus(c, models.SwapStatusRejected, models.SwapActionReject)
}

// applySwapStatus transitions a request out of pending. Only the receiver may
// act, and a request that already left pending cannot be overwritten.
func (s *Server) applySwapStatus(c *fiber.Ctx, status models.SwapRequestStatus, action models.SwapAction) error {
	ctx := c.Context()
	sess := currentSession(c)

	requestID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	request, err := s.swapRepo.GetByID(ctx, requestID)
	if err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "NOT_FOUND" {
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if request.ReceiverID != sess.UserID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("Only the receiver may act on this request"))
	}

	ok, err := s.swapRepo.UpdateStatusFromPending(ctx, requestID, status)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if !ok {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewConflictError("Request is no longer pending"))
	}

	middleware.SwapActions.WithLabelValues(string(action)).Inc()

	return c.JSON(fiber.Map{
		"message": "Request " + string(status) + ".",
		"status":  status,
	})
}

// DeleteSwapRequest handles DELETE /api/swaps/:id. Deletion is a hard removal
// from any state; only the receiver may delete.
func (s *Server) DeleteSwapRequest(c *fiber.Ctx) error {
	ctx := c.Context()
	sess := currentSession(c)

	requestID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	request, err := s.swapRepo.GetByID(ctx, requestID)
	if err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "NOT_FOUND" {
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if request.ReceiverID != sess.UserID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("Only the receiver may act on this request"))
	}

	if err := s.swapRepo.Delete(ctx, requestID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	middleware.SwapActions.WithLabelValues(string(models.SwapActionDelete)).Inc()

	return c.JSON(fiber.Map{
		"message": "Request deleted.",
	})
}
