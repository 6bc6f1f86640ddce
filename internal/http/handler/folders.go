package handler

import (
	"github.com/gofiber/fiber/v2"

	"doclib/internal/model"
	"doclib/internal/service"
	"doclib/internal/store"
)

// ListFolders godoc
// @Summary List subfolders with recursive document counts
// @Tags folders
// @Produce json
// @Param parent query string false "Parent folder id, or root (default)"
// @Success 200 {array} service.FolderSummary
// @Router /folders [get]
func ListFolders(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parent := model.Root
		if ref := folderParam(c.Query("parent")); ref != nil {
			parent = *ref
		}
		res, err := svc.ListFolders(c.UserContext(), parent)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(res)
	}
}

// GetFolder godoc
// @Summary Folder page: breadcrumbs, subfolders and documents
// @Tags folders
// @Produce json
// @Param id path string true "Folder id"
// @Success 200 {object} service.FolderView
// @Failure 404 {object} errorPayload
// @Router /folders/{id} [get]
func GetFolder(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.GetFolder(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(res)
	}
}

// CreateFolder godoc
// @Summary Create a folder
// @Tags folders
// @Accept json
// @Produce json
// @Success 201 {object} model.Folder
// @Failure 400 {object} errorPayload
// @Router /folders [post]
func CreateFolder(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body createFolderRequest
		if err := parseBody(c, &body); err != nil {
			return writeDomainError(c, err)
		}
		f, err := svc.CreateFolder(c.UserContext(), store.FolderDraft{
			Name:   body.Name,
			Parent: body.ParentID,
			Color:  body.Color,
			Icon:   body.Icon,
		})
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(f)
	}
}

// UpdateFolder godoc
// @Summary Rename, recolor or move a folder
// @Description parentId null moves the folder to the root. Moving a folder under itself is rejected.
// @Tags folders
// @Accept json
// @Produce json
// @Param id path string true "Folder id"
// @Success 200 {object} model.Folder
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /folders/{id} [patch]
func UpdateFolder(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body updateFolderRequest
		if err := parseBody(c, &body); err != nil {
			return writeDomainError(c, err)
		}
		f, err := svc.UpdateFolder(c.UserContext(), c.Params("id"), store.FolderPatch{
			Name:   body.Name,
			Parent: body.ParentID.ptr(),
			Color:  body.Color,
			Icon:   body.Icon,
		})
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(f)
	}
}

// DeleteFolder godoc
// @Summary Delete a folder with its subfolders and their documents
// @Tags folders
// @Produce json
// @Param id path string true "Folder id"
// @Success 200 {object} store.FolderDeletion
// @Router /folders/{id} [delete]
func DeleteFolder(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.DeleteFolder(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(res)
	}
}
