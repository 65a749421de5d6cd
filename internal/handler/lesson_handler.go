package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/lingora-app/lingora-api/internal/dto"
	"github.com/lingora-app/lingora-api/internal/store"
	"github.com/lingora-app/lingora-api/internal/utils"
)

// LessonHandler wires lesson ledger HTTP routes.
type LessonHandler struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewLessonHandler constructs the handler.
func NewLessonHandler(domain *store.Store, validate *validator.Validate, logger zerolog.Logger) *LessonHandler {
	return &LessonHandler{
		store:     domain,
		validator: validate,
		logger:    logger.With().Str("component", "lesson_handler").Logger(),
	}
}

// Register attaches lesson endpoints to the router group.
func (h *LessonHandler) Register(router fiber.Router) {
	router.Post("", h.create)
	router.Get("", h.list)
	router.Patch("/:id", h.update)
	router.Post("/:id/complete", h.complete)
}

func (h *LessonHandler) create(c *fiber.Ctx) error {
	var payload dto.LessonCreateRequest
	if !parseAndValidate(c, h.validator, &payload) {
		return nil
	}

	lesson, err := h.store.CreateLesson(c.Context(), payload)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create lesson")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "lesson created", lesson)
}

func (h *LessonHandler) list(c *fiber.Ctx) error {
	filter := dto.LessonFilter{
		Status:    c.Query("status"),
		TeacherID: c.Query("teacher_id"),
		StudentID: c.Query("student_id"),
	}
	return utils.SendSuccess(c, "lessons retrieved", h.store.ListLessons(c.Context(), filter))
}

func (h *LessonHandler) update(c *fiber.Ctx) error {
	var payload dto.LessonUpdateRequest
	if !parseAndValidate(c, h.validator, &payload) {
		return nil
	}

	if !h.store.UpdateLesson(c.Context(), c.Params("id"), payload) {
		return utils.SendError(c, fiber.StatusNotFound, "lesson not found")
	}

	return utils.SendSuccess(c, "lesson updated", fiber.Map{"id": c.Params("id")})
}

func (h *LessonHandler) complete(c *fiber.Ctx) error {
	if !h.store.CompleteLesson(c.Context(), c.Params("id")) {
		return utils.SendError(c, fiber.StatusConflict, "lesson is not scheduled")
	}
	return utils.SendSuccess(c, "lesson completed", fiber.Map{"id": c.Params("id")})
}
