package api

import (
	"strings"
	"time"

	"github.com/fittrackhq/fittrack/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) LogProgress(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	payload := progressPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	date, err := parseDayQuery(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	input := services.ProgressInput{
		Value: payload.Value,
		Date:  date,
		Notes: strings.TrimSpace(payload.Notes),
	}

	now := time.Now().In(handler.location)
	if fieldErrors := services.ValidateProgressInput(input, now, handler.location); fieldErrors.Any() {
		return apiValidationError(c, fieldErrors)
	}

	result, err := handler.progressService.LogProgress(user.ID, habitID, input, now)
	if err != nil {
		return habitErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"entry":          progressEntryResponse(result.Entry),
		"streak":         streakResponse(result.Streak),
		"newly_unlocked": unlockedResponse(result.NewlyUnlocked),
	})
}

func (handler *Handler) ListProgress(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	from, err := parseDayQuery(c.Query("from"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	to, err := parseDayQuery(c.Query("to"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	entries, err := handler.progressService.ListProgress(user.ID, habitID, from, to)
	if err != nil {
		return habitErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{"progress": progressListResponse(entries)})
}
