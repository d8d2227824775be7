package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/meetingagent/todo-service/api/handler"
)

type Handlers struct {
	Dispatch *apiHandler.DispatchHandler
	Health   *apiHandler.HealthHandler
}

func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	r.GET("/api/v1/operations", handlers.Dispatch.List)
	r.POST("/api/v1/operations/{name}", handlers.Dispatch.Call)

	return r
}
