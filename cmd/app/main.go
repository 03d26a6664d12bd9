package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"freight/cmd"
	"freight/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//	@title			Freight Planner API
//	@version		1.0
//	@description	Shipment classification, consolidation and truck planning. Changes are attributed to the X-Actor request header.
//	@host			localhost:8080
//	@BasePath		/api/v1
func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:         envOr("HTTP_PORT", "8080"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           envOr("DB_PORT", "5432"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        envOr("DB_SSLMODE", "disable"),
		ClassifySchedule: os.Getenv("CLASSIFY_SCHEDULE"),
		GroupingSchedule: os.Getenv("GROUPING_SCHEDULE"),
	}

	if raw := os.Getenv("CLASSIFY_WORKERS"); raw != "" {
		workers, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("Invalid CLASSIFY_WORKERS %q: %v", raw, err)
		}
		config.ClassifyWorkers = workers
	}
	if raw := os.Getenv("GROUPAGE_LDM_MAX"); raw != "" {
		ceiling, err := decimal.NewFromString(raw)
		if err != nil {
			log.Fatalf("Invalid GROUPAGE_LDM_MAX %q: %v", raw, err)
		}
		config.GroupageLDMMax = ceiling
	}
	return config
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode,
	)
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true
	app.CreateHTTPServer().Register(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
