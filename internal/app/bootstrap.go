package app

import (
	"fmt"
	"log"
	"strings"

	"jobmatch/internal/config"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container and the HTTP surface. The returned cleanup
// closes infrastructure connections.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	errMw := middleware.NewErrorMiddleware()
	f.Use(errMw.Middleware())
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	f.Use(cors.New())

	routes.NewRegistry(container.Engine).Register(f)

	return &App{Fiber: f, Container: container}, container.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
