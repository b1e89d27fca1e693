package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetMyCheckIns handles GET /api/checkins
func (s *Server) GetMyCheckIns(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	page := parsePagination(c, 20)

	checkIns, err := s.checkInService.List(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(checkIns)
}

// GetCurrentCheckIn handles GET /api/checkins/current
func (s *Server) GetCurrentCheckIn(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	checkIn, err := s.checkInService.Current(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if checkIn == nil {
		return c.JSON(fiber.Map{"checked_in": false})
	}

	return c.JSON(checkIn)
}
