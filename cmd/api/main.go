package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/wms-gateway/docs"
	appanalytics "github.com/jhoicas/wms-gateway/internal/application/analytics"
	"github.com/jhoicas/wms-gateway/internal/application/inventory"
	"github.com/jhoicas/wms-gateway/internal/domain/query"
	infrapdf "github.com/jhoicas/wms-gateway/internal/infrastructure/pdf"
	"github.com/jhoicas/wms-gateway/internal/infrastructure/wms"
	httpRouter "github.com/jhoicas/wms-gateway/internal/interfaces/http"
	"github.com/jhoicas/wms-gateway/pkg/config"
	"github.com/jhoicas/wms-gateway/pkg/logger"
)

// @title        WMS Gateway API
// @version      1.0
// @description  Adaptador HTTP sobre la API REST del WMS: consultas, reposición y KPIs de almacén.
// @BasePath     /
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
		Str("wms_base_url", cfg.WMS.BaseURL).
		Str("wms_user", cfg.WMS.User).
		Msg("iniciando aplicación")
	warnMissingSettings(log, cfg.WMS)

	wmsClient := wms.NewClient(cfg.WMS, log)
	qb := query.NewBuilder(wms.Codes(cfg.WMS))

	lookupUC := inventory.NewLookupUseCase(wmsClient, qb)
	replenishmentUC := inventory.NewReplenishmentUseCase(wmsClient, qb, time.Now)
	kpiUC := appanalytics.NewKPIUseCase(wmsClient, qb, time.Now)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.WMS.Timeout + 30*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: docs.FilePath,
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:         cfg.App.Name,
		WMS:             cfg.WMS,
		DebugEnvEnabled: cfg.App.DebugEnvEnabled,
		Lookup:          lookupUC,
		Replenishment:   replenishmentUC,
		KPI:             kpiUC,
		PDF:             pdfGenerator,
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

// warnMissingSettings avisa al arrancar de ajustes del WMS vacíos; no impide
// el arranque.
func warnMissingSettings(log *logger.Logger, wmsCfg config.WMSConfig) {
	if wmsCfg.BaseURL == "" {
		log.Warn().Msg("WMS_BASE_URL vacío: todas las consultas al WMS fallarán")
	}
	if wmsCfg.CompanyCode == "" {
		log.Warn().Msg("WMS_COMPANY_CODE vacío: los KPIs de historial y órdenes de compra no filtran por compañía")
	}
}
