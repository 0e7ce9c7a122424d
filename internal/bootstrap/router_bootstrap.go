package bootstrap

import (
	"fmt"
	"html/template"

	"github.com/dgiurgev/portfolio42/internal/assets"
	"github.com/dgiurgev/portfolio42/internal/controller"
	"github.com/dgiurgev/portfolio42/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (app *BootstrapApp) setupRouter() (*gin.Engine, error) {
	engine := gin.New()
	engine.Use(gin.Recovery())

	zerologMiddleware := middleware.NewZerologMiddleware()

	err := zerologMiddleware.Init()

	if err != nil {
		return nil, fmt.Errorf("failed to initialize zerolog middleware: %w", err)
	}

	engine.Use(zerologMiddleware.Middleware())

	templates, err := template.ParseFS(assets.Templates, "templates/*.html")

	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	engine.SetHTMLTemplate(templates)

	portfolioController := controller.NewPortfolioController(&engine.RouterGroup, app.services.oauthService, app.services.portfolioService, app.services.reportService)

	portfolioController.SetupRoutes()

	apiRouter := engine.Group("/api")

	healthController := controller.NewHealthController(apiRouter)

	healthController.SetupRoutes()

	return engine, nil
}
