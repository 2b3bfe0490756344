package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Rifat12/task-api/modules/api"
	"github.com/Rifat12/task-api/modules/notification"
	"github.com/Rifat12/task-api/modules/task"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Task API ===")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework.
	// Order: independent modules first, then modules with dependencies.
	app.Register(notification.NewModule()) // Event consumer (subscribes to task events)
	app.Register(task.NewModule())         // Core domain (storage + business rules, emits events)
	app.Register(api.NewModule())          // Driving adapter (depends on task)

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown: the task module's Stop closes the storage
	// handle on every exit path, including signal-triggered termination.
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("REST API Endpoints:")
	log.Println("  GET    /health                 - Health check")
	log.Println("  GET    /                       - API info")
	log.Println("  GET    /api/tasks              - List tasks (status, priority, sortBy filters)")
	log.Println("  GET    /api/tasks/:id          - Get a task by id")
	log.Println("  POST   /api/tasks              - Create a task")
	log.Println("  PUT    /api/tasks/:id/status   - Update a task's status")
	log.Println("  DELETE /api/tasks/:id          - Delete a task")
	log.Println("")
	log.Println("Configuration: PORT, DB_PATH, DB_DEBUG, CORS_ALLOWED_ORIGINS")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
