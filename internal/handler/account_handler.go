package handler

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/lingora-app/lingora-api/internal/dto"
	"github.com/lingora-app/lingora-api/internal/middleware"
	"github.com/lingora-app/lingora-api/internal/store"
	"github.com/lingora-app/lingora-api/internal/utils"
)

const tokenTTL = 24 * time.Hour

// AccountHandler wires account and authentication HTTP routes.
type AccountHandler struct {
	store     *store.Store
	validator *validator.Validate
	jwtSecret string
	logger    zerolog.Logger
}

// NewAccountHandler constructs the handler.
func NewAccountHandler(domain *store.Store, validate *validator.Validate, jwtSecret string, logger zerolog.Logger) *AccountHandler {
	return &AccountHandler{
		store:     domain,
		validator: validate,
		jwtSecret: jwtSecret,
		logger:    logger.With().Str("component", "account_handler").Logger(),
	}
}

// Register attaches the public account endpoints.
func (h *AccountHandler) Register(router fiber.Router) {
	router.Post("/students", h.createStudent)
	router.Post("/teachers", h.createTeacher)
	router.Post("/teachers/apply", h.createTeacherApplication)
	router.Patch("/teachers/:id/application", h.updateTeacherApplication)
	router.Get("/teachers", h.listApprovedTeachers)
	router.Post("/auth/login", h.login)
}

// RegisterAdmin attaches the vetting and account-listing endpoints.
func (h *AccountHandler) RegisterAdmin(router fiber.Router) {
	router.Get("/students", h.listStudents)
	router.Get("/teachers", h.listTeachers)
	router.Post("/teachers/:id/approve", h.approveTeacher)
	router.Post("/teachers/:id/reject", h.rejectTeacher)
}

func (h *AccountHandler) createStudent(c *fiber.Ctx) error {
	var payload dto.StudentCreateRequest
	if !parseAndValidate(c, h.validator, &payload) {
		return nil
	}

	student, err := h.store.CreateStudent(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "student created", student)
}

func (h *AccountHandler) createTeacher(c *fiber.Ctx) error {
	var payload dto.TeacherSignupRequest
	if !parseAndValidate(c, h.validator, &payload) {
		return nil
	}

	teacher, err := h.store.CreateTeacher(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "teacher created", teacher)
}

func (h *AccountHandler) createTeacherApplication(c *fiber.Ctx) error {
	var payload dto.TeacherApplicationRequest
	if !parseAndValidate(c, h.validator, &payload) {
		return nil
	}

	teacher, err := h.store.CreateTeacherApplication(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "application submitted", teacher)
}

func (h *AccountHandler) updateTeacherApplication(c *fiber.Ctx) error {
	var payload dto.TeacherApplicationUpdate
	if !parseAndValidate(c, h.validator, &payload) {
		return nil
	}

	if !h.store.UpdateTeacherApplication(c.Context(), c.Params("id"), payload) {
		return utils.SendError(c, fiber.StatusNotFound, "teacher not found")
	}

	return utils.SendSuccess(c, "application updated", fiber.Map{"id": c.Params("id")})
}

func (h *AccountHandler) login(c *fiber.Ctx) error {
	var payload dto.LoginRequest
	if !parseAndValidate(c, h.validator, &payload) {
		return nil
	}

	account, ok := h.store.Authenticate(c.Context(), payload.Email, payload.Password)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	subject := ""
	switch {
	case account.Student != nil:
		subject = account.Student.ID
	case account.Teacher != nil:
		subject = account.Teacher.ID
	}

	token, err := middleware.IssueToken(h.jwtSecret, subject, account.Kind, tokenTTL)
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "authenticated", dto.LoginResponse{
		AuthenticatedAccount: account,
		Token:                token,
	})
}

// listApprovedTeachers is the public directory; only approved teachers are
// visible regardless of the requested filter.
func (h *AccountHandler) listApprovedTeachers(c *fiber.Ctx) error {
	filter := dto.AccountFilter{Query: c.Query("q"), Status: "approved"}
	return utils.SendSuccess(c, "teachers retrieved", h.store.ListTeachers(c.Context(), filter))
}

func (h *AccountHandler) listStudents(c *fiber.Ctx) error {
	filter := dto.AccountFilter{Query: c.Query("q"), Status: c.Query("status")}
	return utils.SendSuccess(c, "students retrieved", h.store.ListStudents(c.Context(), filter))
}

func (h *AccountHandler) listTeachers(c *fiber.Ctx) error {
	filter := dto.AccountFilter{Query: c.Query("q"), Status: c.Query("status")}
	return utils.SendSuccess(c, "teachers retrieved", h.store.ListTeachers(c.Context(), filter))
}

func (h *AccountHandler) approveTeacher(c *fiber.Ctx) error {
	if !h.store.ApproveTeacher(c.Context(), c.Params("id")) {
		return utils.SendError(c, fiber.StatusConflict, "teacher is not pending approval")
	}
	return utils.SendSuccess(c, "teacher approved", fiber.Map{"id": c.Params("id")})
}

func (h *AccountHandler) rejectTeacher(c *fiber.Ctx) error {
	if !h.store.RejectTeacher(c.Context(), c.Params("id")) {
		return utils.SendError(c, fiber.StatusConflict, "teacher is not pending approval")
	}
	return utils.SendSuccess(c, "teacher rejected", fiber.Map{"id": c.Params("id")})
}

func (h *AccountHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, store.ErrDuplicateEmail):
		return utils.SendError(c, fiber.StatusConflict, err.Error())
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *AccountHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
