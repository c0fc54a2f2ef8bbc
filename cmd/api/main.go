// @title           MercoGestor API
// @version         1.0
// @description     Estoque de pequenos comércios: produtos, categorias, movimentos, alertas e relatórios.
// @BasePath        /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	_ "github.com/jhoicas/mercogestor-api/docs"
	appanalytics "github.com/jhoicas/mercogestor-api/internal/application/analytics"
	"github.com/jhoicas/mercogestor-api/internal/application/auth"
	"github.com/jhoicas/mercogestor-api/internal/application/usecase"
	httpRouter "github.com/jhoicas/mercogestor-api/internal/interfaces/http"
	"github.com/jhoicas/mercogestor-api/pkg/config"
	"github.com/jhoicas/mercogestor-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicação")

	ctx := context.Background()
	repos, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir armazenamento")
	}
	defer repos.close()

	cascade := usecase.CascadePolicy{
		BatchLimit: cfg.Store.BatchLimit,
		AllBatches: cfg.Store.CascadeAllBatches,
	}
	categoryUC := usecase.NewCategoryUseCase(repos.categories, repos.products, cascade, log)
	productUC := usecase.NewProductUseCase(repos.products, repos.categories, repos.movements, usecase.ProductOptions{
		Cascade:                cascade,
		StrictCategoryOnCreate: cfg.Store.StrictCategoryOnCreate,
	}, log)
	movementUC := usecase.NewMovementUseCase(repos.movements, repos.products)
	userUC := usecase.NewUserUseCase(repos.users)
	authUC := auth.NewAuthUseCase(repos.credentials, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	loader := appanalytics.NewLoader(repos.products, repos.movements)
	alertsUC := appanalytics.NewAlertsUseCase(loader, cfg.Alerts.DefaultWindowDays, nil)
	reportUC := appanalytics.NewReportUseCase(loader, nil)
	dashboardUC := appanalytics.NewDashboardUseCase(loader, cfg.Alerts.DefaultWindowDays, nil)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	}, log)

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MercoGestor API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:  categoryUC,
		ProductUC:   productUC,
		MovementUC:  movementUC,
		UserUC:      userUC,
		AuthUC:      authUC,
		AlertsUC:    alertsUC,
		ReportUC:    reportUC,
		DashboardUC: dashboardUC,
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

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
