package main

// @title        Sales API
// @version      1.0
// @description  API REST de ventas: registra ventas que enlazan tienda, producto y cliente.
// @BasePath     /

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/swaggo/swag"

	_ "github.com/jhoicas/Sales-api/docs"
	"github.com/jhoicas/Sales-api/internal/application/sales"
	"github.com/jhoicas/Sales-api/internal/application/usecase"
	"github.com/jhoicas/Sales-api/internal/infrastructure/memory"
	"github.com/jhoicas/Sales-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Sales-api/internal/interfaces/http"
	"github.com/jhoicas/Sales-api/pkg/config"
	"github.com/jhoicas/Sales-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.DB.Driver).
		Msg("iniciando aplicación")

	var (
		txRunner sales.TxRunner
		db       httpRouter.Pinger
	)
	switch cfg.DB.Driver {
	case config.DriverMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		txRunner = memory.NewStore()
	default:
		pool, err := postgres.NewPool(context.Background(), cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		txRunner = postgres.NewTxRunner(pool)
		db = pool
	}

	salesUC := sales.NewSalesUseCase(txRunner, log)
	catalogUC := usecase.NewCatalogUseCase(txRunner)

	errHandler := httpRouter.ErrorHandler()
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errHandler,
	})
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log, errHandler))
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Swagger.FilePath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.FilePath,
			Path:     "docs",
			Title:    "Sales API",
		}))
	} else {
		log.Warn().Str("file", cfg.Swagger.FilePath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName: cfg.App.Name,
		BasePath:    cfg.HTTP.BasePath,
		SalesUC:     salesUC,
		CatalogUC:   catalogUC,
		DB:          db,
		OpenAPIDoc:  func() (string, error) { return swag.ReadDoc() },
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
