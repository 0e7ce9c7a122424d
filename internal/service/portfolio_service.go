package service

import (
	"slices"
	"strconv"
	"time"

	"github.com/dgiurgev/portfolio42/internal/config"
)

const dateLayout = "January 2, 2006"

// PortfolioService turns the raw provider payload into the normalized
// portfolio. Normalization is total: missing fields degrade to placeholders,
// it never fails.
type PortfolioService struct {
	Descriptions *DescriptionService
}

func NewPortfolioService(descriptions *DescriptionService) *PortfolioService {
	return &PortfolioService{
		Descriptions: descriptions,
	}
}

func (p *PortfolioService) Normalize(profile *config.Profile) config.Portfolio {
	portfolio := config.Portfolio{
		CampusName:    "Unknown",
		CampusAddress: "-",
		CoreStarted:   config.NotAvailable,
		CoreCompleted: config.NotAvailable,
	}

	if profile == nil {
		return portfolio
	}

	portfolio.FirstName = profile.FirstName
	portfolio.LastName = profile.LastName
	portfolio.Login = profile.Login

	if len(profile.Campus) > 0 {
		portfolio.CampusName = profile.Campus[0].Name
		portfolio.CampusAddress = profile.Campus[0].Address
	}

	for _, cursus := range profile.CursusUsers {
		if cursus.CursusID != config.CoreCursusID {
			continue
		}
		portfolio.CoreStarted = formatDate(cursus.BeginAt)
		if cursus.EndAt == "" {
			portfolio.CoreCompleted = config.InProgress
		} else {
			portfolio.CoreCompleted = formatDate(cursus.EndAt)
		}
		break
	}

	for _, project := range profile.ProjectsUsers {
		if project.Status != "finished" || !slices.Contains(project.CursusIDs, config.CoreCursusID) {
			continue
		}
		grade := config.NotAvailable
		if project.FinalMark != nil {
			grade = strconv.Itoa(*project.FinalMark)
		}
		portfolio.Projects = append(portfolio.Projects, config.ProjectEntry{
			Name:        project.Project.Name,
			Description: p.Descriptions.Describe(project.Project.Name),
			Grade:       grade,
		})
	}

	return portfolio
}

// formatDate turns an ISO-8601 timestamp into its long human-readable form.
// An absent date becomes "N/A", an unparseable one passes through verbatim.
func formatDate(raw string) string {
	if raw == "" {
		return config.NotAvailable
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return parsed.Format(dateLayout)
}
