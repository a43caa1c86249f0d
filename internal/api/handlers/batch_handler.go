package handlers

import (
	"FreshStock-Backend/domain"
	"FreshStock-Backend/internal/api/presenters"
	"FreshStock-Backend/pkg/batch"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BatchHandler interface {
		AddBatches(c *fiber.Ctx) error
		UpdateBatch(c *fiber.Ctx) error
		DeleteBatch(c *fiber.Ctx) error
		OpenSession(c *fiber.Ctx) error
		AddToSession(c *fiber.Ctx) error
	}

	batchHandler struct {
		batchService batch.BatchMutationService
		validator    *validator.Validate
	}
)

func NewBatchHandler(batchService batch.BatchMutationService, validator *validator.Validate) BatchHandler {
	return &batchHandler{
		batchService: batchService,
		validator:    validator,
	}
}

func (h *batchHandler) AddBatches(c *fiber.Ctx) error {
	req := new(domain.AddBatchesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddBatches, err)
	}

	res, err := h.batchService.AddBatches(c.Context(), actorFromCtx(c), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddBatches, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddBatches)
}

func (h *batchHandler) UpdateBatch(c *fiber.Ctx) error {
	batchID := c.Params("id")
	req := new(domain.UpdateBatchRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBatch, err)
	}

	res, err := h.batchService.UpdateBatch(c.Context(), actorFromCtx(c), batchID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateBatch, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateBatch)
}

func (h *batchHandler) DeleteBatch(c *fiber.Ctx) error {
	batchID := c.Params("id")

	if err := h.batchService.DeleteBatch(c.Context(), actorFromCtx(c), batchID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteBatch, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteBatch)
}

func (h *batchHandler) OpenSession(c *fiber.Ctx) error {
	req := new(domain.OpenSessionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedOpenSession, err)
	}

	res, err := h.batchService.OpenSession(c.Context(), actorFromCtx(c), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedOpenSession, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessOpenSession)
}

func (h *batchHandler) AddToSession(c *fiber.Ctx) error {
	req := new(domain.AddToSessionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToSession, err)
	}

	res, err := h.batchService.AddToSession(c.Context(), actorFromCtx(c), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddToSession, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddToSession)
}
