package server

import (
	"spotted/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SubmitResponse handles POST /api/posts/:id/responses
func (s *Server) SubmitResponse(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		CheckInID *uint  `json:"checkin_id,omitempty"`
		Message   string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.responseService.SubmitResponse(ctx, userID, postID, req.CheckInID, req.Message)
	if err != nil {
		return respondServiceError(c, err)
	}

	// A repeat claim resolves to the original pair rather than a new one.
	status := fiber.StatusCreated
	if result.AlreadyExisted {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(result)
}

// UpdateResponseStatus handles PATCH /api/responses/:id
func (s *Server) UpdateResponseStatus(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	responseID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Status models.ResponseStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.responseService.UpdateResponseStatus(ctx, userID, responseID, req.Status); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Response " + string(req.Status)})
}
