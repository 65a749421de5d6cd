package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/lingora-app/lingora-api/internal/dto"
	"github.com/lingora-app/lingora-api/internal/store"
	"github.com/lingora-app/lingora-api/internal/utils"
)

// CommunityHandler wires the community HTTP routes: posts, events,
// challenges and study groups.
type CommunityHandler struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewCommunityHandler constructs the handler.
func NewCommunityHandler(domain *store.Store, validate *validator.Validate, logger zerolog.Logger) *CommunityHandler {
	return &CommunityHandler{
		store:     domain,
		validator: validate,
		logger:    logger.With().Str("component", "community_handler").Logger(),
	}
}

// Register attaches the member-facing community endpoints.
func (h *CommunityHandler) Register(router fiber.Router) {
	router.Post("/posts", h.createPost)
	router.Get("/posts", h.listPosts)
	router.Post("/posts/:id/like", h.likePost)

	router.Post("/events", h.createEvent)
	router.Get("/events", h.listEvents)
	router.Post("/events/:id/join", h.joinEvent)

	router.Post("/challenges", h.createChallenge)
	router.Get("/challenges", h.listChallenges)
	router.Post("/challenges/:id/join", h.joinChallenge)

	router.Post("/study-groups", h.createStudyGroup)
	router.Get("/study-groups", h.listStudyGroups)
	router.Post("/study-groups/:id/join", h.joinStudyGroup)
}

// RegisterAdmin attaches the moderation endpoints.
func (h *CommunityHandler) RegisterAdmin(router fiber.Router) {
	router.Post("/posts/:id/moderate", h.moderatePost)
	router.Delete("/events/:id", h.deleteEvent)
	router.Post("/challenges/:id/deactivate", h.deactivateChallenge)
}

func (h *CommunityHandler) createPost(c *fiber.Ctx) error {
	var payload dto.PostCreateRequest
	if !parseAndValidate(c, h.validator, &payload) {
		return nil
	}

	post, err := h.store.CreatePost(c.Context(), payload)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "post created", post)
}

func (h *CommunityHandler) listPosts(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "posts retrieved", h.store.ListPosts(c.Context()))
}

func (h *CommunityHandler) likePost(c *fiber.Ctx) error {
	if !h.store.LikePost(c.Context(), c.Params("id")) {
		return utils.SendError(c, fiber.StatusNotFound, "post not found")
	}
	return utils.SendSuccess(c, "post liked", fiber.Map{"id": c.Params("id")})
}

func (h *CommunityHandler) moderatePost(c *fiber.Ctx) error {
	var payload dto.ModerateRequest
	if !parseAndValidate(c, h.validator, &payload) {
		return nil
	}

	if !h.store.ModeratePost(c.Context(), c.Params("id"), payload.Action) {
		return utils.SendError(c, fiber.StatusNotFound, "post not found")
	}
	return utils.SendSuccess(c, "post moderated", fiber.Map{"id": c.Params("id"), "action": payload.Action})
}

func (h *CommunityHandler) createEvent(c *fiber.Ctx) error {
	var payload dto.EventCreateRequest
	if !parseAndValidate(c, h.validator, &payload) {
		return nil
	}

	event, err := h.store.CreateEvent(c.Context(), payload)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "event created", event)
}

func (h *CommunityHandler) listEvents(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "events retrieved", h.store.ListEvents(c.Context()))
}

func (h *CommunityHandler) joinEvent(c *fiber.Ctx) error {
	var payload dto.JoinRequest
	if !parseAndValidate(c, h.validator, &payload) {
		return nil
	}

	if !h.store.JoinEvent(c.Context(), c.Params("id"), payload.UserID) {
		return utils.SendError(c, fiber.StatusConflict, "event is full or user already joined")
	}
	return utils.SendSuccess(c, "event joined", fiber.Map{"id": c.Params("id")})
}

func (h *CommunityHandler) deleteEvent(c *fiber.Ctx) error {
	if !h.store.DeleteEvent(c.Context(), c.Params("id")) {
		return utils.SendError(c, fiber.StatusNotFound, "event not found")
	}
	return utils.SendSuccess(c, "event deleted", fiber.Map{"id": c.Params("id")})
}

func (h *CommunityHandler) createChallenge(c *fiber.Ctx) error {
	var payload dto.ChallengeCreateRequest
	if !parseAndValidate(c, h.validator, &payload) {
		return nil
	}

	challenge, err := h.store.CreateChallenge(c.Context(), payload)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "challenge created", challenge)
}

func (h *CommunityHandler) listChallenges(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "challenges retrieved", h.store.ListChallenges(c.Context()))
}

func (h *CommunityHandler) joinChallenge(c *fiber.Ctx) error {
	var payload dto.JoinRequest
	if !parseAndValidate(c, h.validator, &payload) {
		return nil
	}

	if !h.store.JoinChallenge(c.Context(), c.Params("id"), payload.UserID) {
		return utils.SendError(c, fiber.StatusConflict, "user already joined")
	}
	return utils.SendSuccess(c, "challenge joined", fiber.Map{"id": c.Params("id")})
}

func (h *CommunityHandler) deactivateChallenge(c *fiber.Ctx) error {
	if !h.store.DeactivateChallenge(c.Context(), c.Params("id")) {
		return utils.SendError(c, fiber.StatusNotFound, "challenge not found")
	}
	return utils.SendSuccess(c, "challenge deactivated", fiber.Map{"id": c.Params("id")})
}

func (h *CommunityHandler) createStudyGroup(c *fiber.Ctx) error {
	var payload dto.StudyGroupCreateRequest
	if !parseAndValidate(c, h.validator, &payload) {
		return nil
	}

	group, err := h.store.CreateStudyGroup(c.Context(), payload)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "study group created", group)
}

func (h *CommunityHandler) listStudyGroups(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "study groups retrieved", h.store.ListStudyGroups(c.Context()))
}

func (h *CommunityHandler) joinStudyGroup(c *fiber.Ctx) error {
	var payload dto.JoinRequest
	if !parseAndValidate(c, h.validator, &payload) {
		return nil
	}

	if !h.store.JoinStudyGroup(c.Context(), c.Params("id"), payload.UserID) {
		return utils.SendError(c, fiber.StatusConflict, "user already joined")
	}
	return utils.SendSuccess(c, "study group joined", fiber.Map{"id": c.Params("id")})
}
