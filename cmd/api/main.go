package main

import (
	"database/sql"
	"log"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"portfolio-api/internal/api"
	"portfolio-api/internal/config"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/services"
	"portfolio-api/internal/token"
	"portfolio-api/migrations"
)

func main() {
	conf, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	// Configure logger
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	logger := slog.New(handler)

	// Run database migrations
	if err := migrations.Migrate("pgx", conf.DbUrl, logger); err != nil {
		logger.Error("migration failed", "err", err)
	}

	// Open SQL connection
	conn, err := sql.Open("pgx", conf.DbUrl)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Fatal(err)
		}
	}()

	// Create Bun client
	bunDB := bun.NewDB(conn, pgdialect.New())

	codec, err := token.NewCodec(conf.JwtSecret, conf.JwtAlgorithm)
	if err != nil {
		log.Fatal(err)
	}

	service := services.NewService(logger, conf, codec, services.Stores{
		Users:           repository.NewUsers(bunDB, logger),
		Tokens:          repository.NewTokens(bunDB),
		Products:        repository.NewProducts(bunDB),
		Services:        repository.NewServices(bunDB),
		JobHistories:    repository.NewJobHistories(bunDB),
		Roles:           repository.NewRoles(bunDB),
		Permissions:     repository.NewPermissions(bunDB),
		RolePermissions: repository.NewRolePermissions(bunDB),
	})

	// Create the HTTP server
	server := api.NewServer(conf, logger, service)
	if err := server.Start(); err != nil {
		log.Fatal(err)
	}
}
