package main

import (
	"context"
	"log"
	"os"

	"hackbot/internal/adapters/discord"
	"hackbot/internal/config"
	"hackbot/internal/infrastructure/database"
	"hackbot/internal/infrastructure/i18n"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	if cfg.MigrationsPath != "" {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatalf("❌ Erreur lors des migrations: %v", err)
		}
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Erreur lors de l'initialisation de la base de données: %v", err)
	}
	defer pool.Close()

	eventRepo := database.NewEventRepository(pool)
	userRepo := database.NewUserRepository(pool)
	configRepo := database.NewGuildConfigRepository(pool)
	translator := i18n.NewTranslator(cfg.Locale)

	bot := discord.NewBot(cfg, eventRepo, userRepo, configRepo, translator)
	if err := bot.Start(); err != nil {
		log.Printf("❌ Erreur lors du démarrage du bot: %v", err)
		os.Exit(1)
	}
}
