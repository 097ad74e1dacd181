package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fahrizal89/angkutin/internal/pkg/config"
	"github.com/fahrizal89/angkutin/internal/pkg/database"
	"github.com/fahrizal89/angkutin/internal/pkg/health"
	"github.com/fahrizal89/angkutin/internal/pkg/logger"
	"github.com/fahrizal89/angkutin/internal/pkg/middleware"
	natspkg "github.com/fahrizal89/angkutin/internal/pkg/nats"
	"github.com/fahrizal89/angkutin/internal/pkg/server"
	wspkg "github.com/fahrizal89/angkutin/internal/pkg/websocket"

	fleetHandler "github.com/fahrizal89/angkutin/services/fleet/handler"
	fleetHTTP "github.com/fahrizal89/angkutin/services/fleet/handler/http"
	fleetNATS "github.com/fahrizal89/angkutin/services/fleet/handler/nats"
	fleetGateway "github.com/fahrizal89/angkutin/services/fleet/gateway"
	fleetRepository "github.com/fahrizal89/angkutin/services/fleet/repository"
	fleetUsecase "github.com/fahrizal89/angkutin/services/fleet/usecase"
	jobsHandler "github.com/fahrizal89/angkutin/services/jobs/handler"
	jobsHTTP "github.com/fahrizal89/angkutin/services/jobs/handler/http"
	jobsGateway "github.com/fahrizal89/angkutin/services/jobs/gateway"
	jobsRepository "github.com/fahrizal89/angkutin/services/jobs/repository"
	jobsUsecase "github.com/fahrizal89/angkutin/services/jobs/usecase"
	usersHandler "github.com/fahrizal89/angkutin/services/users/handler"
	usersHTTP "github.com/fahrizal89/angkutin/services/users/handler/http"
	usersRepository "github.com/fahrizal89/angkutin/services/users/repository"
	usersUsecase "github.com/fahrizal89/angkutin/services/users/usecase"
)

func main() {
	appName := "angkutin-api"
	configPath := flag.String("config", "config/api.env", "path to the env config file")
	flag.Parse()

	configs := config.InitConfig(*configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	db := postgresClient.GetDB()

	// Users service
	userRepo := usersRepository.NewUserRepo(configs, db, redisClient)
	userUC := usersUsecase.NewUserUC(userRepo, configs)
	authHandler := usersHTTP.NewAuthHandler(userUC, configs)
	userHandler := usersHTTP.NewUserHandler(userUC)
	usersRoutes := usersHandler.NewHandler(authHandler, userHandler, configs)

	// Jobs service
	jobRepo := jobsRepository.NewJobRepo(configs, db)
	jobGW := jobsGateway.NewJobGW(natsClient)
	jobUC := jobsUsecase.NewJobUC(jobRepo, jobGW, configs)
	jobHandler := jobsHTTP.NewJobHandler(jobUC)
	jobsRoutes := jobsHandler.NewHandler(jobHandler, configs)

	// Fleet service
	wsManager := wspkg.NewManager(configs.JWT)
	fleetRepo := fleetRepository.NewFleetRepo(configs, db, redisClient)
	fleetGW := fleetGateway.NewFleetGW(natsClient)
	fleetUC := fleetUsecase.NewFleetUC(fleetRepo, fleetGW, configs)
	fleetHTTPHandler := fleetHTTP.NewFleetHandler(fleetUC)
	fleetNatsHandler := fleetNATS.NewNatsHandler(natsClient, wsManager)
	fleetRoutes := fleetHandler.NewHandler(fleetHTTPHandler, fleetNatsHandler, wsManager, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	usersRoutes.RegisterRoutes(e)
	jobsRoutes.RegisterRoutes(e)
	if err := fleetRoutes.RegisterRoutes(e); err != nil {
		zapLogger.Fatal("Failed to initialize fleet consumers", logger.Err(err))
	}

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		fleetNatsHandler.Close()
		return nil
	})

	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	shutdownManager.Shutdown(shutdownCtx)
}
