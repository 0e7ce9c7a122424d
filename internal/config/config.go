package config

// Version information, set at build time

var Version = "development"
var CommitHash = "development"
var BuildTimestamp = "0000-00-00T00:00:00Z"

// The 42 core curriculum is identified by this cursus id. Projects and
// cursus records belonging to any other cursus are ignored.
const CoreCursusID = 21

// Placeholder values used when the provider payload is missing fields.
const (
	NotAvailable = "N/A"
	InProgress   = "In Progress"
)

// Main app config

type Config struct {
	Port           int    `mapstructure:"port" validate:"required"`
	Address        string `validate:"required,ip4_addr" mapstructure:"address"`
	AppURL         string `mapstructure:"app-url" validate:"required,url"`
	ClientID       string `mapstructure:"client-id" validate:"required"`
	ClientSecret   string `mapstructure:"client-secret" validate:"required"`
	RedirectURI    string `mapstructure:"redirect-uri" validate:"omitempty,url"`
	AuthURL        string `mapstructure:"auth-url" validate:"required,url"`
	TokenURL       string `mapstructure:"token-url" validate:"required,url"`
	ProfileURL     string `mapstructure:"profile-url" validate:"required,url"`
	LogoPath       string `mapstructure:"logo-path"`
	RequestTimeout int    `mapstructure:"request-timeout" validate:"min=1"`
	LogLevel       string `mapstructure:"log-level" validate:"oneof=trace debug info warn error fatal panic"`
	LogJson        bool   `mapstructure:"log-json"`
}

type OAuthServiceConfig struct {
	ClientID       string
	ClientSecret   string
	RedirectURI    string
	AuthURL        string
	TokenURL       string
	ProfileURL     string
	RequestTimeout int
}

// Provider payload, see https://api.intra.42.fr/apidoc (GET /v2/me). Only the
// fields the normalizer reads are modeled, the rest of the payload is dropped
// during decoding.

type Profile struct {
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	Login         string        `json:"login"`
	Image         ProfileImage  `json:"image"`
	Campus        []Campus      `json:"campus"`
	CursusUsers   []CursusUser  `json:"cursus_users"`
	ProjectsUsers []ProjectUser `json:"projects_users"`
}

type ProfileImage struct {
	Link string `json:"link"`
}

type Campus struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type CursusUser struct {
	CursusID int    `json:"cursus_id"`
	BeginAt  string `json:"begin_at"`
	EndAt    string `json:"end_at"`
}

type ProjectUser struct {
	Status    string     `json:"status"`
	FinalMark *int       `json:"final_mark"`
	CursusIDs []int      `json:"cursus_ids"`
	Project   ProjectRef `json:"project"`
}

type ProjectRef struct {
	Name string `json:"name"`
}

// Normalized portfolio, the renderer's input

type Portfolio struct {
	FirstName     string
	LastName      string
	Login         string
	CampusName    string
	CampusAddress string
	CoreStarted   string
	CoreCompleted string
	Projects      []ProjectEntry
}

type ProjectEntry struct {
	Name        string
	Description string
	Grade       string
}
