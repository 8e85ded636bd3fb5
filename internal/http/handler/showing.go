package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hashimp6/broperty/internal/http/middleware"
	"github.com/Hashimp6/broperty/internal/service"
)

// CreateShowing godoc
// @Summary Book a viewing
// @Description Fails with 409 when an active showing of the property lies within one hour.
// @Tags showings
// @Accept json
// @Produce json
// @Param body body service.CreateShowingInput true "showing"
// @Success 201 {object} model.Showing
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /showings [post]
func CreateShowing(svc service.ShowingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateShowingInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		sh, err := svc.Create(c.UserContext(), middleware.ActorFrom(c), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(sh)
	}
}

// ListShowings godoc
// @Summary List the caller's showings
// @Tags showings
// @Produce json
// @Success 200 {array} model.Showing
// @Failure 401 {object} errorPayload
// @Router /showings [get]
func ListShowings(svc service.ShowingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext(), middleware.ActorFrom(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(items)
	}
}

// GetShowing godoc
// @Summary Get a showing
// @Tags showings
// @Produce json
// @Param id path string true "showing id"
// @Success 200 {object} model.Showing
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /showings/{id} [get]
func GetShowing(svc service.ShowingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sh, err := svc.Get(c.UserContext(), middleware.ActorFrom(c), c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(sh)
	}
}

// UpdateShowing godoc
// @Summary Reschedule or change the status of a showing
// @Tags showings
// @Accept json
// @Produce json
// @Param id path string true "showing id"
// @Param body body service.UpdateShowingInput true "changed fields"
// @Success 200 {object} model.Showing
// @Router /showings/{id} [put]
func UpdateShowing(svc service.ShowingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UpdateShowingInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		sh, err := svc.Update(c.UserContext(), middleware.ActorFrom(c), c.Params("id"), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(sh)
	}
}

// CancelShowing godoc
// @Summary Cancel a showing
// @Tags showings
// @Param id path string true "showing id"
// @Success 204
// @Router /showings/{id} [delete]
func CancelShowing(svc service.ShowingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Cancel(c.UserContext(), middleware.ActorFrom(c), c.Params("id")); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// AddShowingFeedback godoc
// @Summary Rate a completed showing
// @Tags showings
// @Accept json
// @Produce json
// @Param id path string true "showing id"
// @Param body body service.FeedbackInput true "feedback"
// @Success 200 {object} model.Showing
// @Router /showings/{id}/feedback [post]
func AddShowingFeedback(svc service.ShowingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.FeedbackInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		sh, err := svc.AddFeedback(c.UserContext(), middleware.ActorFrom(c), c.Params("id"), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(sh)
	}
}
