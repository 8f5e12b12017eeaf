package server

import (
	"log"

	"ai-salesclone-be/internal/bootstrap"
	"ai-salesclone-be/internal/config"
	"ai-salesclone-be/internal/pkg/serverutils"
	ws "ai-salesclone-be/internal/websocket"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	registerRoutes(app, container)
	registerWebsocket(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api)
	c.CloneController.RegisterRoutes(api)
	c.ConversationController.RegisterRoutes(api)
	c.ResourceController.RegisterRoutes(api)
	c.WizardController.RegisterRoutes(api)
}

// registerWebsocket exposes the clone status feed. The JWT gate runs during
// the HTTP upgrade, then the user id travels into the socket handler.
func registerWebsocket(app *fiber.App, c *bootstrap.Container) {
	app.Use("/ws/clones/status", serverutils.JwtMiddleware, func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/clones/status", websocket.New(func(conn *websocket.Conn) {
		userIdStr, _ := conn.Locals("user_id").(string)
		userId, err := uuid.Parse(userIdStr)
		if err != nil {
			conn.Close()
			return
		}
		ws.ServeWs(c.Hub, conn, userId)
	}))
}
