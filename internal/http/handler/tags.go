package handler

import (
	"github.com/gofiber/fiber/v2"

	"doclib/internal/service"
	"doclib/internal/store"
)

// ListTags godoc
// @Summary List tags with usage counts
// @Tags tags
// @Produce json
// @Success 200 {array} service.TagSummary
// @Router /tags [get]
func ListTags(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.ListTags(c.UserContext())
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(res)
	}
}

// CreateTag godoc
// @Summary Create a tag
// @Tags tags
// @Accept json
// @Produce json
// @Success 201 {object} model.Tag
// @Failure 400 {object} errorPayload
// @Router /tags [post]
func CreateTag(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body createTagRequest
		if err := parseBody(c, &body); err != nil {
			return writeDomainError(c, err)
		}
		t, err := svc.CreateTag(c.UserContext(), store.TagDraft{Name: body.Name, Color: body.Color})
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	}
}

// DeleteTag godoc
// @Summary Delete a tag and strip it from every document
// @Tags tags
// @Param id path string true "Tag id"
// @Success 204
// @Router /tags/{id} [delete]
func DeleteTag(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteTag(c.UserContext(), c.Params("id")); err != nil {
			return writeDomainError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
