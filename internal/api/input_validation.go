package api

import (
	"errors"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func parseRegisterInput(c *fiber.Ctx) (registerInput, error) {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return registerInput{}, err
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Password = strings.TrimSpace(input.Password)

	if input.Name == "" || input.Email == "" || input.Password == "" {
		return registerInput{}, errors.New("missing credentials")
	}
	if len(input.Name) > 100 {
		return registerInput{}, errors.New("name too long")
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return registerInput{}, errors.New("invalid email")
	}
	if len(input.Password) < 8 {
		return registerInput{}, errors.New("password too short")
	}

	return input, nil
}

func parseLoginInput(c *fiber.Ctx) (loginInput, error) {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return loginInput{}, err
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Password = strings.TrimSpace(input.Password)

	if input.Email == "" || input.Password == "" {
		return loginInput{}, errors.New("missing credentials")
	}
	return input, nil
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(parsed), nil
}

func parseDayQuery(raw string, location *time.Location) (*time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", trimmed, location)
	if err != nil {
		return nil, errors.New("invalid date, expected YYYY-MM-DD")
	}
	return &parsed, nil
}
