package bootstrap

import (
	"fmt"

	"github.com/dgiurgev/portfolio42/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type BootstrapApp struct {
	config   config.Config
	services Services
	engine   *gin.Engine
}

func NewBootstrapApp(config config.Config) *BootstrapApp {
	return &BootstrapApp{
		config: config,
	}
}

func (app *BootstrapApp) Setup() error {
	if app.config.RedirectURI == "" {
		app.config.RedirectURI = app.config.AppURL + "/callback"
	}

	services, err := app.initServices()

	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	app.services = services

	engine, err := app.setupRouter()

	if err != nil {
		return fmt.Errorf("failed to setup router: %w", err)
	}

	app.engine = engine

	log.Trace().Interface("config", app.config).Msg("Config dump")

	return nil
}

func (app *BootstrapApp) Run() error {
	log.Info().Str("address", app.config.Address).Int("port", app.config.Port).Msg("Starting server")
	return app.engine.Run(fmt.Sprintf("%s:%d", app.config.Address, app.config.Port))
}
