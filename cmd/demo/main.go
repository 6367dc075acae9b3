// cmd/demo
//
// Serves the user-fetch demo page and proxies the two public user APIs so
// the page talks to a single origin.
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/arzav18/interview-prep-go/pkg/logx"
)

func main() {
	// 1. Initialize Logger
	logx.SetLevel(logx.ParseLevel(getEnv("LOG_LEVEL", "info")))

	// 2. Load Config & Build App
	cfg := LoadConfig()
	app := newApp(cfg)

	logx.Infow("starting demo server", "port", cfg.Port)

	// 3. Start Server with Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logx.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logx.Info("shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logx.Errorf("shutdown failed: %v", err)
	}
	_ = logx.Sync()
}

// newApp wires middleware and routes; split out so handler tests can build
// an app against fake upstreams.
func newApp(cfg Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "user-fetch-demo",
		DisableStartupMessage: true,
		ErrorHandler:          globalErrorHandler,
	})

	app.Use(recover.New())

	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return uuid.NewString()
		},
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods: "GET, HEAD, OPTIONS",
	}))

	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${method} ${path} | ${reqHeader:X-Request-ID}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	registerRoutes(app, newUserHandlers(cfg))

	app.Use(notFoundHandler)

	return app
}
