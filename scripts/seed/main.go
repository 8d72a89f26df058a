package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"cricauction-backend/internal/config"
	"cricauction-backend/internal/database"
	"cricauction-backend/internal/logger"
	"cricauction-backend/internal/service"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	app := &cli.App{
		Name:  "seed",
		Usage: "Load demo users, auctions, teams and players from a YAML file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Value:   "scripts/seed/data/demo.yaml",
				Usage:   "fixture file to load",
			},
			&cli.StringFlag{
				Name:  "driver",
				Usage: "database driver (postgres, mysql, sqlite), defaults to DB_DRIVER",
			},
			&cli.StringFlag{
				Name:  "dsn",
				Usage: "database connection string, defaults to DATABASE_URL",
			},
			&cli.IntFlag{
				Name:  "attempts",
				Value: 60,
				Usage: "connection attempts, one per second, while the database starts",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func run(cctx *cli.Context) error {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Setup(cfg.LogLevel)

	driver, dsn := cfg.DatabaseDriver, cfg.DatabaseURL
	if v := cctx.String("driver"); v != "" {
		driver = v
	}
	if v := cctx.String("dsn"); v != "" {
		dsn = v
	}

	fixtures, err := LoadFixtures(cctx.String("file"))
	if err != nil {
		return err
	}

	db, err := connectWithRetry(driver, dsn, cctx.Int("attempts"), time.Second)
	if err != nil {
		return err
	}

	seeder := NewSeeder(db, service.NewSchedule(cfg.Location(), cfg.AuctionWindow()))
	result, err := seeder.Seed(context.Background(), fixtures)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"users":    result.Users,
		"auctions": result.Auctions,
		"teams":    result.Teams,
		"players":  result.Players,
		"bidders":  result.Bidders,
		"skipped":  result.Skipped,
	}).Info("Seed data loaded")
	return nil
}

func connectWithRetry(driver, dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:   driver,
		LogLevel: gormlogger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
