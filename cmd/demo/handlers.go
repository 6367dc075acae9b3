package main

import (
	"context"
	"embed"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/arzav18/interview-prep-go/pkg/errx"
	"github.com/arzav18/interview-prep-go/pkg/logx"
	"github.com/arzav18/interview-prep-go/pkg/userapi"
)

//go:embed static/index.html
var staticFS embed.FS

// userHandlers proxies the public user APIs for the demo page.
type userHandlers struct {
	client *userapi.Client
	cfg    Config
}

func newUserHandlers(cfg Config) *userHandlers {
	return &userHandlers{
		client: userapi.NewClient(
			userapi.WithUserBase(cfg.UserAPIBase),
			userapi.WithRandomBase(cfg.RandomAPIBase),
			userapi.WithHTTPClient(&http.Client{Timeout: cfg.FetchTimeout}),
		),
		cfg: cfg,
	}
}

func registerRoutes(app *fiber.App, h *userHandlers) {
	app.Get("/", indexHandler)
	app.Get("/health", healthHandler)
	app.Get("/api/user", h.randomUser)
	app.Get("/api/users/:id", h.userByID)
}

// indexHandler serves the embedded demo page.
func indexHandler(c *fiber.Ctx) error {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		return errx.Wrap(err, "demo page missing from binary", errx.TypeInternal)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(page)
}

func healthHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": "user-fetch-demo",
	})
}

// randomUser fetches one record from the random user generator.
func (h *userHandlers) randomUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.cfg.FetchTimeout)
	defer cancel()

	user, err := h.client.RandomUser(ctx)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// userByID fetches one record from the generic REST endpoint.
func (h *userHandlers) userByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return errx.Validation("user id must be a positive integer").
			WithDetail("id", c.Params("id"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.cfg.FetchTimeout)
	defer cancel()

	user, err := h.client.GetUser(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func notFoundHandler(c *fiber.Ctx) error {
	return errx.NotFound("route not found").WithDetail("path", c.Path())
}

// globalErrorHandler renders errx errors with their mapped status; anything
// else becomes a 500 INTERNAL.
func globalErrorHandler(c *fiber.Ctx, err error) error {
	var e *errx.Error
	if !errx.As(err, &e) {
		var fe *fiber.Error
		if errx.As(err, &fe) {
			e = errx.New(fe.Message, errx.TypeInternal)
			e.HTTPStatus = fe.Code
		} else {
			e = errx.Wrap(err, "unexpected error", errx.TypeInternal)
		}
	}

	logx.Errorw("request failed",
		"request_id", c.GetRespHeader("X-Request-ID"),
		"path", c.Path(),
		"status", e.HTTPStatus,
		"error", err.Error(),
	)

	return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
}
