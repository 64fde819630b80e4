package restapi

import (
	"net/http"

	"github.com/andreyxaxa/Social-Submissions/config"
	v1 "github.com/andreyxaxa/Social-Submissions/internal/controller/restapi/v1"
	"github.com/andreyxaxa/Social-Submissions/internal/controller/restapi/v1/validate"
	"github.com/andreyxaxa/Social-Submissions/internal/usecase"
	"github.com/andreyxaxa/Social-Submissions/pkg/logger"
	"github.com/andreyxaxa/Social-Submissions/pkg/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @title Social submissions
// @version 1.0.0
// @host localhost:3000
// @BasePath /
func NewRouter(app *fiber.App, cfg *config.Config, sub usecase.SubmissionUseCase, m *metrics.Metrics, l logger.Interface) {
	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORS.AllowOrigins}))

	// Probes
	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.Status(http.StatusOK).SendString("ok")
	})

	// Metrics
	if cfg.Metrics.Enabled && m != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))
	}

	// Swagger
	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	// Local images
	if cfg.Storage.Backend == config.StorageLocal {
		// read from disk on every request, so deleted images 404 at once
		app.Use(cfg.Storage.LocalURLPrefix, filesystem.New(filesystem.Config{
			Root: http.Dir(cfg.Storage.LocalDir),
		}))
	}

	// Routers
	limits := validate.Limits{MaxFiles: cfg.Upload.MaxFiles, MaxFileSize: cfg.Upload.MaxFileSize}

	apiGroup := app.Group("/api")
	{
		v1.NewSubmissionRoutes(apiGroup, sub, limits, l)
	}

	// UI
	v1.NewUIRoutes(app, l)
}
