package api

import (
	"errors"
	"strings"
	"time"

	"github.com/fittrackhq/fittrack/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := parseHabitPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if fieldErrors := services.ValidateHabitInput(input); fieldErrors.Any() {
		return apiValidationError(c, fieldErrors)
	}

	habit, err := handler.habitService.CreateHabit(user.ID, input)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create habit")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"habit": habitResponse(habit)})
}

func (handler *Handler) ListHabits(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	category := strings.TrimSpace(c.Query("category"))
	activeOnly := !strings.EqualFold(c.Query("include_inactive"), "true")

	habits, err := handler.habitService.ListHabits(user.ID, category, activeOnly)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load habits")
	}
	return c.JSON(fiber.Map{"habits": habitListResponse(habits)})
}

func (handler *Handler) GetHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	habit, err := handler.habitService.GetHabit(habitID, user.ID)
	if err != nil {
		return habitErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{"habit": habitResponse(habit)})
}

func (handler *Handler) UpdateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	input, err := parseHabitPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if fieldErrors := services.ValidateHabitInput(input); fieldErrors.Any() {
		return apiValidationError(c, fieldErrors)
	}

	habit, err := handler.habitService.UpdateHabit(habitID, user.ID, input)
	if err != nil {
		return habitErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{"habit": habitResponse(habit)})
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	if err := handler.habitService.DeleteHabit(habitID, user.ID); err != nil {
		return habitErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) GetHabitStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	habit, err := handler.habitService.GetHabit(habitID, user.ID)
	if err != nil {
		return habitErrorResponse(c, err)
	}

	entries, err := handler.repositories.Progress.ListByHabit(habit.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load progress")
	}

	stats := services.BuildHabitStats(habit, entries, time.Now(), handler.location)
	return c.JSON(fiber.Map{"stats": habitStatsResponse(stats)})
}

func parseHabitPayload(c *fiber.Ctx) (services.HabitInput, error) {
	payload := habitPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return services.HabitInput{}, err
	}
	return services.HabitInput{
		Name:        payload.Name,
		Description: payload.Description,
		Category:    strings.ToLower(strings.TrimSpace(payload.Category)),
		TargetValue: payload.TargetValue,
		TargetUnit:  strings.ToLower(strings.TrimSpace(payload.TargetUnit)),
		Color:       strings.TrimSpace(payload.Color),
	}, nil
}

func habitErrorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrHabitNotFound) {
		return apiError(c, fiber.StatusNotFound, "habit not found")
	}
	return apiError(c, fiber.StatusInternalServerError, "habit operation failed")
}
