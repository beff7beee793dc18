package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/riddhimajain08/productivity-api/api/handler"
)

type Handlers struct {
	Auth   *apiHandler.AuthHandler
	Task   *apiHandler.TaskHandler
	Stats  *apiHandler.StatsHandler
	Schema *apiHandler.SchemaHandler
	Health *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)
	r.GET("/init-db", handlers.Schema.InitDB)

	// Auth routes
	r.POST("/register", handlers.Auth.Register)
	r.POST("/login", handlers.Auth.Login)

	// Protected routes
	r.GET("/tasks", authMiddleware(handlers.Task.GetTasks))
	r.POST("/tasks", authMiddleware(handlers.Task.CreateTask))
	r.PUT("/tasks/{id}", authMiddleware(handlers.Task.UpdateTask))
	r.DELETE("/tasks/{id}", authMiddleware(handlers.Task.DeleteTask))

	r.GET("/dashboard/stats", authMiddleware(handlers.Stats.Dashboard))

	return r
}
