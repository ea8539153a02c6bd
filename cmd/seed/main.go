// Command seed populates the city catalog. It is idempotent; running it
// against an already seeded database is a no-op.
package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/globetrotter/api/internal/config"
	"github.com/globetrotter/api/internal/db"
	"github.com/globetrotter/api/internal/logger"
	"github.com/globetrotter/api/internal/repository"
	"github.com/globetrotter/api/internal/repository/dao"
	"github.com/globetrotter/api/internal/seed"
)

func main() {
	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	repo := repository.NewCityRepository(dao.NewCityDAO(postgresDB))
	if err = seed.Run(context.Background(), repo); err != nil {
		return fmt.Errorf("seed.Run -> %w", err)
	}

	zap.L().Info("done")

	return nil
}
