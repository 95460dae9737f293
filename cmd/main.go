package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	timerecordapp "github.com/timetrkkr/timetrkkr/application/timerecord"
	userapp "github.com/timetrkkr/timetrkkr/application/user"
	"github.com/timetrkkr/timetrkkr/cmd/config"
	redisclient "github.com/timetrkkr/timetrkkr/cmd/redis"
	_ "github.com/timetrkkr/timetrkkr/docs"
	redisRepo "github.com/timetrkkr/timetrkkr/repository/redis"
	timerecordRepo "github.com/timetrkkr/timetrkkr/repository/timerecord"
	txRepo "github.com/timetrkkr/timetrkkr/repository/tx"
	userRepo "github.com/timetrkkr/timetrkkr/repository/user"
	"github.com/timetrkkr/timetrkkr/thirdparty/rabbitmq"
	"github.com/timetrkkr/timetrkkr/transport"
	"github.com/timetrkkr/timetrkkr/utils/logger"
	"go.uber.org/zap"
)

// @title TIMETRKKR API
// @version 1.0
// @description Employee attendance and time-accounting API
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Attendance event publisher is optional, the engine skips publishing
	// when rabbitmq is not configured
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	TimeRecordRepo := timerecordRepo.NewTimeRecordRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(UserRepo, TimeRecordRepo)
	TimeRecordApp := timerecordapp.NewTimeRecordApp(TxRepo, TimeRecordRepo, UserRepo, publisher)

	httpTransport := transport.NewTransport(UserApp, TimeRecordApp, RedisRepo, transport.Options{
		InternalAPIKey: cfg.Internal.APIKey,
		RateLimit:      cfg.RateLimit.Requests,
		RateWindow:     cfg.RateLimit.Window,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
