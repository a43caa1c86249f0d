package handlers

import (
	"errors"

	"FreshStock-Backend/domain"

	"github.com/gofiber/fiber/v2"
)

func actorFromCtx(c *fiber.Ctx) domain.Actor {
	userID, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)
	return domain.Actor{
		UserID:  userID,
		IsAdmin: role == domain.RoleAdmin,
	}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrBatchNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrProductNotRegistered),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrWarningNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusBadRequest
	}
}
