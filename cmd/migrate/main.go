// migrate 只建表和写种子数据，不起 HTTP
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"autoshop/internal/app"
	"autoshop/internal/core/config"
	"autoshop/internal/core/database"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "config file path")
	noSeed := flag.Bool("no-seed", false, "only migrate, skip seeding")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load(*configPath)
	log, cleanup := app.NewLogger(cfg.Log)
	defer cleanup()

	db, err := app.OpenDB(cfg.DB, log)
	if err != nil {
		log.Fatal("db open", zap.Error(err), zap.String("dsn", database.MaskDSN(cfg.DB.DSN)))
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if *noSeed {
		if err := database.Migrate(db.WithContext(ctx)); err != nil {
			log.Fatal("migrate failed", zap.Error(err))
		}
		log.Info("migrate done")
		return
	}
	if err := app.MigrateAndSeed(ctx, db, cfg.Seed, log); err != nil {
		log.Fatal("migrate/seed failed", zap.Error(err))
	}
	log.Info("migrate and seed done")
}
