package handler

import (
	"github.com/gofiber/fiber/v2"

	"doclib/internal/service"
)

// AppConfig returns the fiber configuration the API runs with. Immutable
// copies request values out of fasthttp's reused buffers.
func AppConfig(bodyLimit int) fiber.Config {
	return fiber.Config{
		ErrorHandler: ErrorHandler(),
		BodyLimit:    bodyLimit,
		Immutable:    true,
	}
}

// RegisterRoutes attaches the library API to app. Handlers only translate
// HTTP to service calls.
func RegisterRoutes(app *fiber.App, svc service.LibraryService) {
	app.Get("/health", HealthCheck(svc))
	app.Get("/healthz", LivenessProbe())

	docs := app.Group("/documents")
	docs.Get("/", ListDocuments(svc))
	docs.Post("/", UploadDocument(svc))
	docs.Get("/:id", GetDocument(svc))
	docs.Patch("/:id", UpdateDocument(svc))
	docs.Delete("/:id", DeleteDocument(svc))
	docs.Post("/:id/favorite", ToggleFavorite(svc))
	docs.Post("/:id/share", ShareDocument(svc))
	docs.Get("/:id/share-candidates", ShareCandidates(svc))

	folders := app.Group("/folders")
	folders.Get("/", ListFolders(svc))
	folders.Post("/", CreateFolder(svc))
	folders.Get("/:id", GetFolder(svc))
	folders.Patch("/:id", UpdateFolder(svc))
	folders.Delete("/:id", DeleteFolder(svc))

	tags := app.Group("/tags")
	tags.Get("/", ListTags(svc))
	tags.Post("/", CreateTag(svc))
	tags.Delete("/:id", DeleteTag(svc))

	app.Get("/activity", RecentActivity(svc))
	app.Get("/users", SearchUsers(svc))
	app.Post("/reset", Reset(svc))
}
