package handlers

import (
	"strconv"
	"time"

	"FreshStock-Backend/domain"
	"FreshStock-Backend/internal/api/presenters"
	"FreshStock-Backend/pkg/warning"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	WarningHandler interface {
		ScanWarnings(c *fiber.Ctx) error
		GetWarnings(c *fiber.Ctx) error
		ResolveWarning(c *fiber.Ctx) error
		GetConfig(c *fiber.Ctx) error
		UpdateConfig(c *fiber.Ctx) error
		SendDigest(c *fiber.Ctx) error
	}

	warningHandler struct {
		warningService warning.WarningService
		validator      *validator.Validate
	}
)

func NewWarningHandler(warningService warning.WarningService, validator *validator.Validate) WarningHandler {
	return &warningHandler{
		warningService: warningService,
		validator:      validator,
	}
}

func (h *warningHandler) ScanWarnings(c *fiber.Ctx) error {
	res, err := h.warningService.ScanWarnings(c.Context(), time.Now())
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedScanWarnings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessScanWarnings)
}

func (h *warningHandler) GetWarnings(c *fiber.Ctx) error {
	level := c.Query("level")
	resolved := c.Query("resolved", "false") == "true"

	limit, err := strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}

	res, err := h.warningService.GetWarnings(c.Context(), level, resolved, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetWarnings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWarnings)
}

func (h *warningHandler) ResolveWarning(c *fiber.Ctx) error {
	warningID := c.Params("id")

	if err := h.warningService.ResolveWarning(c.Context(), warningID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedResolve, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessResolve)
}

func (h *warningHandler) GetConfig(c *fiber.Ctx) error {
	res, err := h.warningService.GetConfig(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetConfig, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetConfig)
}

func (h *warningHandler) UpdateConfig(c *fiber.Ctx) error {
	req := new(domain.UpdateWarningConfigRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateConfig, err)
	}

	if err := h.warningService.UpdateConfig(c.Context(), actorFromCtx(c), *req); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateConfig, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateConfig)
}

func (h *warningHandler) SendDigest(c *fiber.Ctx) error {
	req := new(domain.SendDigestRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendDigest, err)
	}

	if err := h.warningService.SendWarningDigest(c.Context(), actorFromCtx(c), *req); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedSendDigest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSendDigest)
}
