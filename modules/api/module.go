package api

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Rifat12/task-api/modules/task"
	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// APIModule is the driving adapter that exposes REST endpoints.
// It calls into the core domain (task module) via the TaskPort interface.
type APIModule struct {
	app         *fiber.App
	tasks       task.TaskPort
	addr        string
	corsOrigins string
}

// Compile-time interface checks.
var _ mono.Module = (*APIModule)(nil)
var _ mono.DependentModule = (*APIModule)(nil)
var _ mono.HealthCheckableModule = (*APIModule)(nil)

// NewModule creates a new APIModule configured from the environment.
func NewModule() *APIModule {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "*"
	}
	return &APIModule{
		addr:        ":" + port,
		corsOrigins: corsOrigins,
	}
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
// The framework will call SetDependencyServiceContainer for each dependency.
func (m *APIModule) Dependencies() []string {
	return []string{"task"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "task":
		m.tasks = task.NewTaskAdapter(container)
	}
}

// buildApp assembles the Fiber application: middleware, routes, and
// the unknown-route fallback. Kept separate from Start so tests can
// exercise the full HTTP surface without a listener.
func (m *APIModule) buildApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Task API",
		DisableStartupMessage: true,
		ErrorHandler:          m.errorHandler,
	})

	app.Use(recover.New())
	app.Use(RequestID())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: m.corsOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	m.setupRoutes(app)

	// Unknown routes fall through to the 404 envelope.
	app.Use(m.notFoundHandler)

	return app
}

// Start initializes the Fiber HTTP server.
// Returns an error if required dependencies are not set.
func (m *APIModule) Start(_ context.Context) error {
	if m.tasks == nil {
		return fmt.Errorf("task dependency not set")
	}

	m.app = m.buildApp()

	// Start server in goroutine with startup error detection.
	errCh := make(chan error, 1)
	go func() {
		if err := m.app.Listen(m.addr); err != nil {
			errCh <- err
		}
	}()

	// Wait briefly to catch immediate startup errors (port in use,
	// permission denied).
	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server failed to start: %w", err)
	case <-time.After(100 * time.Millisecond):
	}

	log.Printf("[api] HTTP server started on %s", m.addr)
	return nil
}

// Stop gracefully shuts down the Fiber HTTP server.
func (m *APIModule) Stop(ctx context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Println("[api] Shutting down HTTP server...")
	return m.app.ShutdownWithContext(ctx)
}

// Health returns the health status of the module.
func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"addr": m.addr,
		},
	}
}

// errorHandler translates uncategorized Fiber errors into the error
// envelope. Anything not already shaped by a handler lands here.
func (m *APIModule) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Method-not-allowed on a known path is still an invalid endpoint
	// from the client's perspective.
	if code == fiber.StatusMethodNotAllowed {
		return c.Status(fiber.StatusNotFound).JSON(ErrorEnvelope{
			Success: false,
			Error:   kindNotFound,
			Message: "Route not found",
			Details: []string{fmt.Sprintf("%s %s is not a valid endpoint", c.Method(), c.Path())},
		})
	}

	slog.Error("HTTP error",
		"code", code,
		"request_id", c.Locals(RequestIDContextKey),
		"error", err)

	return c.Status(code).JSON(ErrorEnvelope{
		Success: false,
		Error:   kindInternal,
		Message: message,
	})
}
