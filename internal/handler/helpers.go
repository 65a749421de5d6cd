package handler

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/lingora-app/lingora-api/internal/utils"
)

// parseAndValidate decodes the JSON body into payload and runs the struct
// validators, sending a 400 response on failure. It returns false when the
// request was already answered.
func parseAndValidate(c *fiber.Ctx, validate *validator.Validate, payload any) bool {
	if err := c.BodyParser(payload); err != nil {
		_ = utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
		return false
	}
	if err := validate.Struct(payload); err != nil {
		_ = utils.SendError(c, fiber.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func parseQueryInt(c *fiber.Ctx, key string) (int, error) {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}
