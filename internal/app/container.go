package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"jobmatch/internal/catalog"
	"jobmatch/internal/config"
	"jobmatch/internal/database"
	dbpostgres "jobmatch/internal/database/postgres"
	"jobmatch/internal/infrastructure/cache"
	"jobmatch/internal/repository"
	"jobmatch/internal/usecase"
)

// Container wires the catalog source, cache, and recommendation engine from
// config. The engine is not fitted yet; callers run Engine.Start.
type Container struct {
	Config config.Config
	DB     database.DB
	Engine *usecase.RecommendationEngine
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.New(os.Stdout, "", log.LstdFlags)
	}

	c := &Container{Config: cfg}

	var source catalog.Source
	switch cfg.Catalog.Source {
	case config.SourcePostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		c.DB = db
		source = repository.NewPostgresPostingSource(db)
	default:
		source = catalog.NewCSVSource(cfg.Catalog.CSVPath)
	}

	redisCache := cache.NewRedis(logger)
	c.Engine = usecase.NewRecommendationEngine(source, cfg.Catalog.ModelPath, cfg.Catalog.TopK, redisCache, logger)
	return c, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
