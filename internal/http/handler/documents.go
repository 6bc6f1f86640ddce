package handler

import (
	"github.com/gofiber/fiber/v2"

	"doclib/internal/service"
)

// ListDocuments godoc
// @Summary List documents
// @Description Filter, sort and narrow documents to a view.
// @Tags documents
// @Produce json
// @Param q query string false "Text matched against name, description and tag names"
// @Param type query string false "Comma separated document types"
// @Param tag query string false "Comma separated tag ids (any match)"
// @Param folder query string false "Folder id, or root"
// @Param from query string false "Created at or after (RFC3339)"
// @Param to query string false "Created at or before (RFC3339)"
// @Param created_by query string false "Comma separated user ids"
// @Param sort query string false "name, date, size or relevance"
// @Param order query string false "asc or desc"
// @Param view query string false "all, favorites or shared"
// @Success 200 {array} service.DocumentView
// @Failure 400 {object} errorPayload
// @Router /documents [get]
func ListDocuments(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := parseDocumentQuery(c)
		if err != nil {
			return writeDomainError(c, err)
		}
		res, err := svc.ListDocuments(c.UserContext(), q)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(fiber.Map{"data": res, "total": len(res)})
	}
}

// UploadDocument godoc
// @Summary Upload a document
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param folder_id formData string false "Target folder id; empty for root"
// @Param description formData string false "Description"
// @Param tags formData string false "Comma separated tag ids"
// @Success 201 {object} service.DocumentView
// @Failure 400 {object} errorPayload
// @Router /documents [post]
func UploadDocument(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		req := service.UploadRequest{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Reader:      f,
			Size:        fh.Size,
			Description: c.FormValue("description"),
			TagIDs:      splitList(c.FormValue("tags")),
		}
		if ref := folderParam(c.FormValue("folder_id")); ref != nil {
			req.Folder = *ref
		}

		doc, err := svc.UploadDocument(c.UserContext(), req)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// GetDocument godoc
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param id path string true "Document id"
// @Success 200 {object} service.DocumentView
// @Failure 404 {object} errorPayload
// @Router /documents/{id} [get]
func GetDocument(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := svc.GetDocument(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(doc)
	}
}

// UpdateDocument godoc
// @Summary Update document fields
// @Description Absent fields are left unchanged; folderId null moves the document to the root.
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document id"
// @Success 200 {object} service.DocumentView
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /documents/{id} [patch]
func UpdateDocument(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body updateDocumentRequest
		if err := parseBody(c, &body); err != nil {
			return writeDomainError(c, err)
		}
		doc, err := svc.UpdateDocument(c.UserContext(), c.Params("id"), body.patch())
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(doc)
	}
}

// DeleteDocument godoc
// @Summary Delete a document
// @Tags documents
// @Param id path string true "Document id"
// @Success 204
// @Router /documents/{id} [delete]
func DeleteDocument(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteDocument(c.UserContext(), c.Params("id")); err != nil {
			return writeDomainError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ToggleFavorite godoc
// @Summary Flip the favorite flag
// @Tags documents
// @Produce json
// @Param id path string true "Document id"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} errorPayload
// @Router /documents/{id}/favorite [post]
func ToggleFavorite(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fav, err := svc.ToggleFavorite(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(fiber.Map{"isFavorite": fav})
	}
}

// ShareDocument godoc
// @Summary Grant a user access to a document
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document id"
// @Success 200 {object} service.DocumentView
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /documents/{id}/share [post]
func ShareDocument(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body shareRequest
		if err := parseBody(c, &body); err != nil {
			return writeDomainError(c, err)
		}
		doc, err := svc.ShareDocument(c.UserContext(), c.Params("id"), body.UserID, body.AccessLevel)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(doc)
	}
}

// ShareCandidates godoc
// @Summary Users a document is not yet shared with
// @Tags documents
// @Produce json
// @Param id path string true "Document id"
// @Success 200 {array} model.User
// @Failure 404 {object} errorPayload
// @Router /documents/{id}/share-candidates [get]
func ShareCandidates(svc service.LibraryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := svc.ShareCandidates(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(users)
	}
}
