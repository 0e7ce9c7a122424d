package cmd

import (
	"github.com/dgiurgev/portfolio42/internal/bootstrap"
	"github.com/dgiurgev/portfolio42/internal/config"
	"github.com/dgiurgev/portfolio42/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio42",
	Short: "Generate a PDF portfolio from your 42 intranet profile.",
	Long:  `Portfolio42 is a small web service that signs you in with the 42 intranet and turns your profile and finished projects into a downloadable PDF portfolio.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Get config
		log.Info().Msg("Parsing config")
		var cfg config.Config
		parseErr := viper.Unmarshal(&cfg)
		HandleError(parseErr, "Failed to parse config")

		// Validate config
		log.Info().Msg("Validating config")
		validator := validator.New()
		validateErr := validator.Struct(cfg)
		HandleError(validateErr, "Invalid config")

		// Configure logger
		utils.InitLogger(utils.LoggerConfig{
			Level: cfg.LogLevel,
			Json:  cfg.LogJson,
		})

		// Bootstrap app
		app := bootstrap.NewBootstrapApp(cfg)
		HandleError(app.Setup(), "Failed to setup app")
		HandleError(app.Run(), "Server stopped")
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to execute command")
	}
}

func HandleError(err error, msg string) {
	if err != nil {
		log.Fatal().Err(err).Msg(msg)
	}
}

func init() {
	viper.AutomaticEnv()
	rootCmd.Flags().Int("port", 5000, "Port to run the server on.")
	rootCmd.Flags().String("address", "0.0.0.0", "Address to bind the server to.")
	rootCmd.Flags().String("app-url", "http://localhost:5000", "Public URL of the app.")
	rootCmd.Flags().String("client-id", "", "42 OAuth client ID.")
	rootCmd.Flags().String("client-secret", "", "42 OAuth client secret.")
	rootCmd.Flags().String("redirect-uri", "", "OAuth redirect URI, must match the one registered with 42. Defaults to <app-url>/callback.")
	rootCmd.Flags().String("auth-url", "https://api.intra.42.fr/oauth/authorize", "42 OAuth authorize URL.")
	rootCmd.Flags().String("token-url", "https://api.intra.42.fr/oauth/token", "42 OAuth token URL.")
	rootCmd.Flags().String("profile-url", "https://api.intra.42.fr/v2/me", "42 profile (me) URL.")
	rootCmd.Flags().String("logo-path", "assets/42_logo.png", "Path to the logo image used in the PDF header.")
	rootCmd.Flags().Int("request-timeout", 10, "Timeout in seconds for outbound calls to the 42 API.")
	rootCmd.Flags().String("log-level", "info", "Log level.")
	rootCmd.Flags().Bool("log-json", false, "Log in JSON format.")
	viper.BindEnv("port", "PORT")
	viper.BindEnv("address", "ADDRESS")
	viper.BindEnv("app-url", "APP_URL")
	viper.BindEnv("client-id", "CLIENT_ID")
	viper.BindEnv("client-secret", "CLIENT_SECRET")
	viper.BindEnv("redirect-uri", "REDIRECT_URI")
	viper.BindEnv("auth-url", "AUTH_URL")
	viper.BindEnv("token-url", "TOKEN_URL")
	viper.BindEnv("profile-url", "PROFILE_URL")
	viper.BindEnv("logo-path", "LOGO_PATH")
	viper.BindEnv("request-timeout", "REQUEST_TIMEOUT")
	viper.BindEnv("log-level", "LOG_LEVEL")
	viper.BindEnv("log-json", "LOG_JSON")
	viper.BindPFlags(rootCmd.Flags())
}
