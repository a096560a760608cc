package routes

import (
	"github.com/chrisaacson69/monopoly/app/controllers"
	"github.com/gofiber/fiber/v2"
)

// SimRoutes are the open read endpoints: anyone with a run code can fetch
// its reports or its progress. Starting and deleting runs stays behind
// the token check in main.
func SimRoutes(a *fiber.App) {
	route := a.Group("/sim")
	route.Get("/verify", controllers.VerifyRun)
	route.Get("/runs/:code", controllers.GetRun)
	route.Get("/runs/:code/progress", controllers.GetRunProgress)
	route.Get("/active", controllers.GetActiveRuns)

	a.Get("/board", controllers.GetBoard)
}
