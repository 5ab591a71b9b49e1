package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"comanda/cmd"
	httpin "comanda/internal/adapters/in/http"
	"comanda/internal/adapters/out/amqpbus"
	"comanda/internal/adapters/out/eventbus"
	pgadapter "comanda/internal/adapters/out/postgres"
	"comanda/internal/core/ports"
	"comanda/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs()

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = pgadapter.AutoMigrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	bus := eventbus.NewBus(configs.EventBufferSize, logger)

	var extraPublishers []ports.EventPublisher
	if configs.AmqpURL != "" {
		amqpPublisher, dialErr := amqpbus.Dial(configs.AmqpURL, logger)
		if dialErr != nil {
			logger.Error("AMQP broker unavailable, continuing without it", "error", dialErr)
		} else {
			defer amqpPublisher.Close()
			extraPublishers = append(extraPublishers, amqpPublisher)
		}
	}

	app := cmd.NewCompositionRoot(configs, gormDB, bus, extraPublishers...)

	jobManager := jobs.NewJobManager(
		app.CreatePurgeOrderCountersCommandHandler(),
		time.Duration(configs.CounterRetentionDays)*24*time.Hour,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine in containerized deployments where the
	// variables arrive through the environment directly.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:             envOrDefault("HTTP_PORT", "8080"),
		DBHost:               envOrDefault("DB_HOST", "localhost"),
		DBPort:               envOrDefault("DB_PORT", "5432"),
		DBUser:               envOrDefault("DB_USER", "postgres"),
		DBPassword:           envOrDefault("DB_PASSWORD", "postgres"),
		DBName:               envOrDefault("DB_NAME", "comanda"),
		DBSslMode:            envOrDefault("DB_SSLMODE", "disable"),
		AmqpURL:              os.Getenv("AMQP_URL"),
		EventBufferSize:      envIntOrDefault("EVENT_BUFFER_SIZE", 16),
		CounterRetentionDays: envIntOrDefault("COUNTER_RETENTION_DAYS", 7),
	}
	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateFinalizeOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.Bus(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
