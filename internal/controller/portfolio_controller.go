package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dgiurgev/portfolio42/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type PortfolioController struct {
	Router    *gin.RouterGroup
	OAuth     *service.OAuthService
	Portfolio *service.PortfolioService
	Report    *service.ReportService
}

func NewPortfolioController(router *gin.RouterGroup, oauth *service.OAuthService, portfolio *service.PortfolioService, report *service.ReportService) *PortfolioController {
	return &PortfolioController{
		Router:    router,
		OAuth:     oauth,
		Portfolio: portfolio,
		Report:    report,
	}
}

func (controller *PortfolioController) SetupRoutes() {
	controller.Router.GET("/", controller.indexHandler)
	controller.Router.GET("/callback", controller.callbackHandler)
}

func (controller *PortfolioController) indexHandler(c *gin.Context) {
	state := controller.OAuth.GenerateState()
	c.HTML(http.StatusOK, "index.html", gin.H{
		"AuthURL": controller.OAuth.GetAuthURL(state),
	})
}

func (controller *PortfolioController) callbackHandler(c *gin.Context) {
	code := c.Query("code")

	if code == "" {
		log.Warn().Msg("Callback hit without an authorization code")
		c.String(http.StatusBadRequest, "Error: no code received")
		return
	}

	profile, err := controller.OAuth.Exchange(code)

	if err != nil {
		var authErr *service.AuthError
		if errors.As(err, &authErr) {
			log.Error().Err(err).Int("status", authErr.Status).Msg("Authentication flow failed")
		} else {
			log.Error().Err(err).Msg("Authentication flow failed")
		}
		c.String(http.StatusBadRequest, "Error: %s", err.Error())
		return
	}

	portfolio := controller.Portfolio.Normalize(profile)
	document, err := controller.Report.Render(portfolio)

	if err != nil {
		log.Error().Err(err).Msg("Failed to render portfolio PDF")
		c.String(http.StatusInternalServerError, "Error generating PDF: %s", err.Error())
		return
	}

	login := profile.Login
	if login == "" {
		login = "user"
	}

	log.Info().Str("login", login).Int("projects", len(portfolio.Projects)).Msg("Portfolio generated")

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("42_portfolio_%s.pdf", login)))
	c.Data(http.StatusOK, "application/pdf", document)
}
