package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hashimp6/broperty/internal/http/middleware"
	"github.com/Hashimp6/broperty/internal/search"
	"github.com/Hashimp6/broperty/internal/service"
)

// SearchProperties godoc
// @Summary Search listings
// @Description Filters listings and ranks them by distance (when lat/lng are given) or by recency.
// @Tags properties
// @Produce json
// @Param propertyType query string false "house|apartment|villa|land|commercial"
// @Param listingType query string false "sale|rent"
// @Param status query string false "available|pending|sold|rented"
// @Param minPrice query number false "inclusive lower price bound"
// @Param maxPrice query number false "inclusive upper price bound"
// @Param bedrooms query int false "minimum bedrooms"
// @Param bathrooms query int false "minimum bathrooms"
// @Param city query string false "case-insensitive substring"
// @Param state query string false "case-insensitive substring"
// @Param lat query number false "latitude of the reference point"
// @Param lng query number false "longitude of the reference point"
// @Param radius query number false "radius in km" default(10)
// @Param page query int false "page number" default(1)
// @Param limit query int false "page size" default(10)
// @Param mode query string false "proximity|recency"
// @Success 200 {object} search.Result
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /properties [get]
func SearchProperties(svc service.PropertyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var params search.Params
		if err := c.QueryParser(&params); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "malformed query string")
		}

		res, err := svc.Search(c.UserContext(), params)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// GetProperty godoc
// @Summary Get a listing
// @Tags properties
// @Produce json
// @Param id path string true "property id"
// @Success 200 {object} model.Property
// @Failure 404 {object} errorPayload
// @Router /properties/{id} [get]
func GetProperty(svc service.PropertyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(p)
	}
}

// CreateProperty godoc
// @Summary Create a listing
// @Tags properties
// @Accept json
// @Produce json
// @Param X-User-ID header string true "caller id"
// @Param X-User-Role header string true "seller|agent|admin"
// @Param body body service.CreatePropertyInput true "listing"
// @Success 201 {object} model.Property
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Failure 403 {object} errorPayload
// @Router /properties [post]
func CreateProperty(svc service.PropertyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreatePropertyInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		p, err := svc.Create(c.UserContext(), middleware.ActorFrom(c), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// UpdateProperty godoc
// @Summary Update a listing
// @Description Partial update. Only the owner, the assigned agent or an admin may edit.
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "property id"
// @Param body body service.UpdatePropertyInput true "changed fields"
// @Success 200 {object} model.Property
// @Failure 400 {object} errorPayload
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /properties/{id} [put]
func UpdateProperty(svc service.PropertyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UpdatePropertyInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		p, err := svc.Update(c.UserContext(), middleware.ActorFrom(c), c.Params("id"), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(p)
	}
}

// DeleteProperty godoc
// @Summary Delete a listing
// @Tags properties
// @Param id path string true "property id"
// @Success 204
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /properties/{id} [delete]
func DeleteProperty(svc service.PropertyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), middleware.ActorFrom(c), c.Params("id")); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UploadMedia godoc
// @Summary Attach images or videos to a listing
// @Tags properties
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "property id"
// @Param files formData file true "up to 10 files"
// @Success 200 {object} model.Property
// @Failure 400 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /properties/{id}/media [post]
func UploadMedia(svc service.PropertyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "files are required")
		}

		headers := form.File["files"]
		uploads := make([]service.Upload, 0, len(headers))
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			defer f.Close()

			ct := fh.Header.Get("Content-Type")
			if ct == "" {
				ct = "application/octet-stream"
			}
			uploads = append(uploads, service.Upload{
				Filename:    fh.Filename,
				ContentType: ct,
				Size:        fh.Size,
				Reader:      f,
			})
		}

		p, err := svc.AddMedia(c.UserContext(), middleware.ActorFrom(c), c.Params("id"), uploads)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(p)
	}
}
