package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"casetracker/internal/models"
	"casetracker/internal/validation"
)

// SelectionFromQuery reads the form, center and updateDay query parameters.
// Invalid values yield a 400 *fiber.Error.
func SelectionFromQuery(c fiber.Ctx, defaults models.Selection) (models.Selection, error) {
	form := strings.TrimSpace(c.Query("form"))
	center := strings.TrimSpace(c.Query("center"))

	if form != "" && !validation.ValidateSelectionValue(form) {
		return models.Selection{}, fiber.NewError(fiber.StatusBadRequest, "invalid form type")
	}
	if center != "" && !validation.ValidateSelectionValue(center) {
		return models.Selection{}, fiber.NewError(fiber.StatusBadRequest, "invalid center")
	}

	sel, err := models.ParseSelection(form, center, c.Query("updateDay"), defaults)
	if err != nil {
		if errors.Is(err, models.ErrInvalidUpdateDay) {
			return models.Selection{}, fiber.NewError(fiber.StatusBadRequest, "updateDay must be an integer")
		}
		return models.Selection{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return sel, nil
}
