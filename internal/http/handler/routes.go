package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Hashimp6/broperty/internal/database"
	"github.com/Hashimp6/broperty/internal/service"
)

// Dependencies are the collaborators the HTTP layer is built from.
// Gatherer may be nil, in which case /metrics is not served.
type Dependencies struct {
	Store      database.Pinger
	Properties service.PropertyService
	Showings   service.ShowingService
	Chatbot    service.ChatbotService
	Gatherer   prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Dependencies) {
	app.Get("/health", HealthCheck(d.Store))
	app.Get("/healthz", LivenessProbe())

	if d.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	props := app.Group("/properties")
	props.Get("/", SearchProperties(d.Properties))
	props.Post("/", CreateProperty(d.Properties))
	props.Get("/:id", GetProperty(d.Properties))
	props.Put("/:id", UpdateProperty(d.Properties))
	props.Delete("/:id", DeleteProperty(d.Properties))
	props.Post("/:id/media", UploadMedia(d.Properties))

	showings := app.Group("/showings")
	showings.Post("/", CreateShowing(d.Showings))
	showings.Get("/", ListShowings(d.Showings))
	showings.Get("/:id", GetShowing(d.Showings))
	showings.Put("/:id", UpdateShowing(d.Showings))
	showings.Delete("/:id", CancelShowing(d.Showings))
	showings.Post("/:id/feedback", AddShowingFeedback(d.Showings))

	app.Get("/whatsapp/webhook", VerifyWebhook(d.Chatbot))
	app.Post("/whatsapp/webhook", ReceiveWebhook(d.Chatbot))
}
