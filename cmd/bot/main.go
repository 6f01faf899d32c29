package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hivebound/beebot/internal/bot"
	"github.com/hivebound/beebot/internal/config"
	"github.com/hivebound/beebot/internal/database"
	"github.com/hivebound/beebot/internal/domain/service"
	"github.com/hivebound/beebot/internal/puzzle"
	"github.com/hivebound/beebot/migrator/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	dm := database.NewInstance(db)

	session, err := bot.NewSession(cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	puzzleClient := puzzle.NewClient(cfg.PuzzleURL)
	sessions := puzzle.NewSessions(dm, puzzleClient)

	services := service.New(
		dm,
		bot.NewClient(session),
		puzzleClient,
		sessions,
		time.Duration(cfg.FetchRetrySeconds)*time.Second,
	)

	b := bot.New(session, services)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := b.Start(ctx); err != nil {
		log.Fatalf("Failed to start bot: %v", err)
	}

	services.Daily.Start()
	defer services.Daily.Stop()

	if err := services.Schedule.Resume(ctx); err != nil {
		log.Fatalf("Failed to resume stored schedules: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	if err := b.Stop(); err != nil {
		log.Printf("Failed to close Discord session: %v", err)
	}
}
