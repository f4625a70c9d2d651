package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/AnthoniusHendriyanto/membership-service/config"
	"github.com/AnthoniusHendriyanto/membership-service/db"
	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/handler"
	repo "github.com/AnthoniusHendriyanto/membership-service/internal/membership/repository/postgres"
	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/service"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to create database pool: %v", err)
	}
	defer dbPool.Close()

	repository := repo.NewPostgresRepository(dbPool, time.Duration(cfg.CommandTimeout)*time.Second)

	provider, err := service.NewMembershipProvider(cfg, repository, repository)
	if err != nil {
		log.Fatalf("failed to build membership provider: %v", err)
	}

	tokenService := handler.NewTokenService(cfg.AccessTokenSecret, cfg.AccessExpiryMin)
	membershipHandler := handler.NewMembershipHandler(provider, tokenService)
	roleHandler := handler.NewRoleHandler(provider)

	app := fiber.New()
	handler.RegisterRoutes(app, membershipHandler, roleHandler)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
