package bootstrap

import (
	"fmt"

	"github.com/dgiurgev/portfolio42/internal/config"
	"github.com/dgiurgev/portfolio42/internal/service"
)

type Services struct {
	oauthService       *service.OAuthService
	descriptionService *service.DescriptionService
	portfolioService   *service.PortfolioService
	reportService      *service.ReportService
}

func (app *BootstrapApp) initServices() (Services, error) {
	var services Services

	oauthService := service.NewOAuthService(config.OAuthServiceConfig{
		ClientID:       app.config.ClientID,
		ClientSecret:   app.config.ClientSecret,
		RedirectURI:    app.config.RedirectURI,
		AuthURL:        app.config.AuthURL,
		TokenURL:       app.config.TokenURL,
		ProfileURL:     app.config.ProfileURL,
		RequestTimeout: app.config.RequestTimeout,
	})

	err := oauthService.Init()

	if err != nil {
		return services, fmt.Errorf("failed to initialize oauth service: %w", err)
	}

	services.oauthService = oauthService
	services.descriptionService = service.NewDescriptionService(nil)
	services.portfolioService = service.NewPortfolioService(services.descriptionService)
	services.reportService = service.NewReportService(service.ReportServiceConfig{
		LogoPath: app.config.LogoPath,
	})

	return services, nil
}
