package handler

import (
	"errors"

	"go-stock-tracker/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders fiber-level errors (unmatched routes, wrong
// methods) in the same JSON envelope the API uses everywhere else.
// Wire it into fiber.Config.ErrorHandler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"success": false, "message": err.Error()})
}

// fail maps a service error onto its HTTP status class: validation
// and insufficient stock are 400, missing products 404, everything
// else is a storage failure.
func fail(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var insufficient *apperror.InsufficientStockError
	switch {
	case errors.As(err, &insufficient):
		code = fiber.StatusBadRequest
	case errors.Is(err, apperror.ErrInvalidArgument):
		code = fiber.StatusBadRequest
	case errors.Is(err, apperror.ErrNotFound):
		code = fiber.StatusNotFound
	}
	return c.Status(code).JSON(fiber.Map{"success": false, "message": err.Error()})
}

func ok(c *fiber.Ctx, body fiber.Map) error {
	body["success"] = true
	return c.JSON(body)
}
