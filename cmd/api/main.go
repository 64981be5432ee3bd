package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Taller-api/internal/application/auth"
	"github.com/jhoicas/Taller-api/internal/application/report"
	"github.com/jhoicas/Taller-api/internal/application/usecase"
	"github.com/jhoicas/Taller-api/internal/infrastructure/mongodb"
	infrapdf "github.com/jhoicas/Taller-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Taller-api/internal/interfaces/http"
	"github.com/jhoicas/Taller-api/pkg/config"
	"github.com/jhoicas/Taller-api/pkg/logger"
)

// Version se sobreescribe en build con -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("version", Version).
		Msg("iniciando aplicación")

	ctx := context.Background()
	client, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	userRepo := mongodb.NewUserRepository(db)
	carRepo := mongodb.NewCarRepository(db)
	apptRepo := mongodb.NewAppointmentRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	invRepo := mongodb.NewInventoryRepository(db)
	mechanicRepo := mongodb.NewMechanicRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)

	authUC := auth.NewAuthUseCase(userRepo, auth.NewMemoryCodeStore(), auth.JWTConfig{
		Secret:  cfg.JWT.Secret,
		ExpDays: cfg.JWT.ExpDays,
		Issuer:  cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	carUC := usecase.NewCarUseCase(carRepo)
	apptUC := usecase.NewAppointmentUseCase(apptRepo)
	jobUC := usecase.NewJobUseCase(jobRepo, carRepo, apptRepo)
	invUC := usecase.NewInventoryUseCase(invRepo)
	mechanicUC := usecase.NewMechanicUseCase(mechanicRepo)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := report.NewReportUseCase(
		carRepo, jobRepo, apptRepo, invRepo, mechanicRepo, paymentRepo, pdfGenerator,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los reportes PDF pueden tardar
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.NewErrorHandler(log, cfg.App.IsProduction()),
	})
	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, HEAD, POST, PUT, DELETE, OPTIONS",
	}))
	app.Use(httpRouter.RateLimiter(cfg.RateLimit, cfg.JWT.Secret))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Taller API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		CarUC:         carUC,
		AppointmentUC: apptUC,
		JobUC:         jobUC,
		InventoryUC:   invUC,
		MechanicUC:    mechanicUC,
		PaymentUC:     paymentUC,
		ReportUC:      reportUC,
		JWTSecret:     cfg.JWT.Secret,
		Log:           log,
		Version:       Version,
	})

	// SPA al final: fallback de index.html para rutas no-API.
	httpRouter.RegisterSPA(app, cfg.SPA.Dir)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
