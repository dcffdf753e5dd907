// Package server assembles and runs the HTTP API
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/controllers"
	"github.com/campushub/backend/internal/app/migrations"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/app/routes"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/config"
	"github.com/campushub/backend/internal/db"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/auth"
	"github.com/campushub/backend/internal/pkg/email"
	"github.com/campushub/backend/internal/pkg/logger"
)

// Server holds the assembled application
type Server struct {
	config   *config.Config
	database *db.PostgresDB
	http     *http.Server
}

// NewServer loads configuration, connects the database, runs migrations and
// wires the full dependency graph
func NewServer(configPath string) (*Server, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logLevel := logger.LogLevel(cfg.Logging.Level)
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: cfg.Logging.Format != "json",
	})

	middleware.SetDevelopmentMode(cfg.IsDevelopment())
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.Migrate(context.Background()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	tokenExp, err := time.ParseDuration(cfg.JWT.TokenExpiration)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("invalid JWT token expiration: %w", err)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    tokenExp,
		TokenIssuer: cfg.JWT.Issuer,
	})

	emailService := email.NewEmailService(email.SMTPConfig{
		Host:             cfg.SMTP.Host,
		Port:             cfg.SMTP.Port,
		Username:         cfg.SMTP.Username,
		Password:         cfg.SMTP.Password,
		FromName:         cfg.SMTP.FromName,
		FromEmail:        cfg.SMTP.FromEmail,
		ContactRecipient: cfg.SMTP.ContactRecipient,
		UseTLS:           cfg.SMTP.UseTLS,
	}, logger.WithComponent("email"))

	userRepo := repositories.NewUserRepository(database.Pool)
	studentRepo := repositories.NewStudentRepository(database.Pool)
	contactRepo := repositories.NewContactRepository(database.Pool)

	authService := services.NewAuthService(userRepo, studentRepo, jwtService, logger.WithComponent("auth"))
	studentService := services.NewStudentService(studentRepo, userRepo, logger.WithComponent("students"))
	userService := services.NewUserService(userRepo, logger.WithComponent("users"))
	reportService := services.NewReportService(studentRepo, logger.WithComponent("reports"))
	contactService := services.NewContactService(contactRepo, emailService, logger.WithComponent("contact"))

	ctrl := routes.Controllers{
		Auth:    controllers.NewAuthController(authService, logger.WithComponent("auth")),
		Student: controllers.NewStudentController(studentService, logger.WithComponent("students")),
		Admin:   controllers.NewAdminController(studentService, logger.WithComponent("admin")),
		User:    controllers.NewUserController(userService, logger.WithComponent("users")),
		Report:  controllers.NewReportController(reportService, logger.WithComponent("reports")),
		Contact: controllers.NewContactController(contactService, logger.WithComponent("contact")),
	}

	authMw := middleware.NewAuthMiddleware(jwtService, userRepo)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger.WithComponent("http")))

	routes.SetupRoutes(router, ctrl, authMw, func(c *gin.Context) error {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		return database.Pool.Ping(ctx)
	})

	return &Server{
		config:   cfg,
		database: database,
		http: &http.Server{
			Addr:              ":" + cfg.Server.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Run starts the HTTP server and blocks until it stops
func (s *Server) Run() error {
	logger.Info().
		Str("port", s.config.Server.Port).
		Str("mode", s.config.Server.Mode).
		Msg("Server starting")

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown drains in-flight requests and closes the database pool
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info().Msg("Server shutting down")

	err := s.http.Shutdown(ctx)
	s.database.Close()

	return err
}
