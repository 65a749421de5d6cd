package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/lingora-app/lingora-api/internal/dto"
	"github.com/lingora-app/lingora-api/internal/store"
	"github.com/lingora-app/lingora-api/internal/utils"
)

// PayoutHandler wires payout workflow HTTP routes.
type PayoutHandler struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewPayoutHandler constructs the handler.
func NewPayoutHandler(domain *store.Store, validate *validator.Validate, logger zerolog.Logger) *PayoutHandler {
	return &PayoutHandler{
		store:     domain,
		validator: validate,
		logger:    logger.With().Str("component", "payout_handler").Logger(),
	}
}

// Register attaches the teacher-facing payout endpoints.
func (h *PayoutHandler) Register(router fiber.Router) {
	router.Post("", h.request)
	router.Get("", h.list)
}

// RegisterAdmin attaches the payout decision endpoints.
func (h *PayoutHandler) RegisterAdmin(router fiber.Router) {
	router.Post("/:id/approve", h.approve)
	router.Post("/:id/reject", h.reject)
	router.Post("/:id/complete", h.complete)
}

func (h *PayoutHandler) request(c *fiber.Ctx) error {
	var payload dto.PayoutCreateRequest
	if !parseAndValidate(c, h.validator, &payload) {
		return nil
	}

	payout, err := h.store.RequestPayout(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "payout requested", payout)
}

func (h *PayoutHandler) list(c *fiber.Ctx) error {
	filter := dto.PayoutFilter{
		TeacherID: c.Query("teacher_id"),
		Status:    c.Query("status"),
	}
	return utils.SendSuccess(c, "payouts retrieved", h.store.ListPayouts(c.Context(), filter))
}

func (h *PayoutHandler) approve(c *fiber.Ctx) error {
	var payload dto.PayoutDecisionRequest
	if !parseAndValidate(c, h.validator, &payload) {
		return nil
	}

	if !h.store.ApprovePayout(c.Context(), c.Params("id"), payload.Notes) {
		return utils.SendError(c, fiber.StatusConflict, "payout cannot be approved")
	}
	return utils.SendSuccess(c, "payout approved", fiber.Map{"id": c.Params("id")})
}

func (h *PayoutHandler) reject(c *fiber.Ctx) error {
	var payload dto.PayoutDecisionRequest
	if !parseAndValidate(c, h.validator, &payload) {
		return nil
	}

	if !h.store.RejectPayout(c.Context(), c.Params("id"), payload.Notes) {
		return utils.SendError(c, fiber.StatusConflict, "payout cannot be rejected")
	}
	return utils.SendSuccess(c, "payout rejected", fiber.Map{"id": c.Params("id")})
}

func (h *PayoutHandler) complete(c *fiber.Ctx) error {
	if !h.store.CompletePayout(c.Context(), c.Params("id")) {
		return utils.SendError(c, fiber.StatusConflict, "payout is not approved")
	}
	return utils.SendSuccess(c, "payout completed", fiber.Map{"id": c.Params("id")})
}

func (h *PayoutHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrTeacherNotFound):
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrPayoutBelowMinimum), errors.Is(err, store.ErrInsufficientEarnings):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
