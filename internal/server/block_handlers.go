package server

import (
	"github.com/gofiber/fiber/v2"
)

// BlockUser handles POST /api/blocks/:userId
func (s *Server) BlockUser(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.blockService.Block(ctx, userID, targetID); err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User blocked"})
}

// UnblockUser handles DELETE /api/blocks/:userId
func (s *Server) UnblockUser(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.blockService.Unblock(ctx, userID, targetID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User unblocked"})
}
