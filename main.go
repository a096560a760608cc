package main

import (
	"github.com/chrisaacson69/monopoly/app/controllers"
	"github.com/chrisaacson69/monopoly/pkg"
	"github.com/chrisaacson69/monopoly/pkg/routes"
	"github.com/chrisaacson69/monopoly/platform/logging"
	socket "github.com/chrisaacson69/monopoly/platform/sockets"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
)

func main() {
	logging.Init()

	app := fiber.New()

	app.Use(cors.New())
	routes.AuthRoutes(app)
	routes.SimRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: pkg.JWTSecret(),
	}))

	app.Get("/user/cur", controllers.Cur)
	app.Post("/sim/run", controllers.CreateRun)
	app.Get("/sim/runs", controllers.GetUserRuns)
	app.Delete("/sim/runs/:code", controllers.DeleteRun)

	go socket.CreateSocketIOServer()
	app.Listen(":4101")
}
