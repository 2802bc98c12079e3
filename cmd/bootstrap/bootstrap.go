package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medecos/config"
	"medecos/internal/authz"
	deliveryHttp "medecos/internal/delivery/http"
	"medecos/internal/delivery/http/handler"
	"medecos/internal/delivery/http/middleware"
	"medecos/internal/infrastructure/cache"
	"medecos/internal/infrastructure/database"
	"medecos/internal/repository"
	"medecos/internal/service"
	"medecos/internal/usecase"
	"medecos/pkg/jwt"
	"medecos/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, err
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	app.Server = initializeServer(cfg, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	doctorRepo := repository.NewDoctorProfileRepository(db)
	patientRepo := repository.NewPatientProfileRepository(db)
	pharmacistRepo := repository.NewPharmacistProfileRepository(db)
	labTesterRepo := repository.NewLabTesterProfileRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	prescriptionRepo := repository.NewPrescriptionRepository(db)
	labTestRepo := repository.NewLabTestRepository(db)
	pharmacyOrderRepo := repository.NewPharmacyOrderRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Policy engine and supporting services
	engine := authz.NewEngine()
	resolver := usecase.NewSubjectResolver(log, engine, doctorRepo, patientRepo, pharmacistRepo, labTesterRepo)
	auditService := service.NewAuditService(log, auditLogRepo)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(log, customValidator, userRepo, doctorRepo, patientRepo, pharmacistRepo, labTesterRepo, jwtService, redisClient, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(log, engine, doctorRepo, auditService)
	patientUsecase := usecase.NewPatientUsecase(log, engine, patientRepo, auditService)
	pharmacistUsecase := usecase.NewPharmacistUsecase(log, engine, pharmacistRepo, auditService)
	labTesterUsecase := usecase.NewLabTesterUsecase(log, engine, labTesterRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, engine, resolver, appointmentRepo, auditService)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(log, engine, resolver, prescriptionRepo, auditService)
	labTestUsecase := usecase.NewLabTestUsecase(log, engine, resolver, labTestRepo, auditService)
	pharmacyOrderUsecase := usecase.NewPharmacyOrderUsecase(log, engine, resolver, pharmacyOrderRepo, auditService)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	pharmacistHandler := handler.NewPharmacistHandler(pharmacistUsecase, customValidator)
	labTesterHandler := handler.NewLabTesterHandler(labTesterUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, customValidator)
	labTestHandler := handler.NewLabTestHandler(labTestUsecase, customValidator)
	pharmacyOrderHandler := handler.NewPharmacyOrderHandler(pharmacyOrderUsecase, customValidator)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewRouter(
		authHandler,
		doctorHandler,
		patientHandler,
		pharmacistHandler,
		labTesterHandler,
		appointmentHandler,
		prescriptionHandler,
		labTestHandler,
		pharmacyOrderHandler,
		authMiddleware,
		corsMiddleware,
	)

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: router.Setup(),
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
