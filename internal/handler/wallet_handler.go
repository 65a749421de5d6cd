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

// WalletHandler wires wallet HTTP routes.
type WalletHandler struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewWalletHandler constructs the handler.
func NewWalletHandler(domain *store.Store, validate *validator.Validate, logger zerolog.Logger) *WalletHandler {
	return &WalletHandler{
		store:     domain,
		validator: validate,
		logger:    logger.With().Str("component", "wallet_handler").Logger(),
	}
}

// Register attaches wallet endpoints to the router group.
func (h *WalletHandler) Register(router fiber.Router) {
	router.Get("/:userId/balance", h.balance)
	router.Get("/:userId/transactions", h.transactions)
	router.Post("/recharge", h.recharge)
	router.Post("/pay", h.pay)
}

func (h *WalletHandler) balance(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "balance retrieved", h.store.Balance(c.Context(), c.Params("userId")))
}

func (h *WalletHandler) transactions(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "transactions retrieved", h.store.Transactions(c.Context(), c.Params("userId")))
}

func (h *WalletHandler) recharge(c *fiber.Ctx) error {
	var payload dto.RechargeRequest
	if !parseAndValidate(c, h.validator, &payload) {
		return nil
	}

	tx, err := h.store.Recharge(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "wallet recharged", tx)
}

func (h *WalletHandler) pay(c *fiber.Ctx) error {
	var payload dto.LessonPaymentRequest
	if !parseAndValidate(c, h.validator, &payload) {
		return nil
	}

	tx, err := h.store.PayForLesson(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "payment recorded", tx)
}

func (h *WalletHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrInsufficientFunds):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
