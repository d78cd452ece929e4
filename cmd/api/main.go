package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/timesheet-pro/internal/application/auth"
	"github.com/tu-usuario/timesheet-pro/internal/application/report"
	"github.com/tu-usuario/timesheet-pro/internal/application/timesheet"
	"github.com/tu-usuario/timesheet-pro/internal/application/usecase"
	infraexcel "github.com/tu-usuario/timesheet-pro/internal/infrastructure/excel"
	infrapdf "github.com/tu-usuario/timesheet-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/timesheet-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/timesheet-pro/internal/interfaces/http"
	"github.com/tu-usuario/timesheet-pro/pkg/config"
	"github.com/tu-usuario/timesheet-pro/pkg/logger"
)

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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	entryRepo := postgres.NewEntryRepository(pool)
	teamRepo := postgres.NewTeamRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo, customerRepo)
	activityUC := usecase.NewActivityUseCase(activityRepo, projectRepo)
	entryUC := timesheet.NewEntryUseCase(entryRepo, activityRepo, teamRepo)
	userUC := usecase.NewUserAdminUseCase(userRepo)
	teamUC := usecase.NewTeamUseCase(teamRepo, userRepo, txRunner)
	dashboardUC := usecase.NewDashboardUseCase(statsRepo)

	exportUC := report.NewExportUseCase(
		entryRepo, userRepo, projectRepo, activityRepo,
		infraexcel.NewExcelizeEntriesExporter(),
	)
	teamReportUC := report.NewTeamReportUseCase(
		teamRepo, userRepo, entryRepo, projectRepo, activityRepo,
		infrapdf.NewMarotoTeamReportGenerator(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Timesheet Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CustomerUC:  customerUC,
		ProjectUC:   projectUC,
		ActivityUC:  activityUC,
		EntryUC:     entryUC,
		UserUC:      userUC,
		TeamUC:      teamUC,
		DashboardUC: dashboardUC,
		ExportUC:    exportUC,
		TeamReport:  teamReportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

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
