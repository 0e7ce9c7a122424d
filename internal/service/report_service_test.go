package service_test

import (
	"bytes"
	"fmt"
	"regexp"
	"testing"

	"github.com/dgiurgev/portfolio42/internal/config"
	"github.com/dgiurgev/portfolio42/internal/service"

	"gotest.tools/v3/assert"
)

var reportFixture = config.Portfolio{
	FirstName:     "Jane",
	LastName:      "Doe",
	Login:         "jdoe",
	CoreStarted:   "January 15, 2020",
	CoreCompleted: "In Progress",
	Projects: []config.ProjectEntry{
		{Name: "libft", Description: "A custom implementation of the C standard library functions, forming the foundation for all later C projects.", Grade: "115"},
		{Name: "get_next_line", Description: "A function that reads a line from a file descriptor, handling buffering and multiple descriptors.", Grade: "100"},
	},
}

func TestRenderProducesPDF(t *testing.T) {
	reportService := service.NewReportService(service.ReportServiceConfig{})

	document, err := reportService.Render(reportFixture)
	assert.NilError(t, err)

	assert.Assert(t, len(document) > 0)
	assert.Assert(t, bytes.HasPrefix(document, []byte("%PDF")))
}

func TestRenderIndependentBuffers(t *testing.T) {
	reportService := service.NewReportService(service.ReportServiceConfig{})

	first, err := reportService.Render(reportFixture)
	assert.NilError(t, err)

	second, err := reportService.Render(reportFixture)
	assert.NilError(t, err)

	// Each call builds its own document, returned buffers do not alias
	assert.Assert(t, bytes.HasPrefix(first, []byte("%PDF")))
	assert.Assert(t, bytes.HasPrefix(second, []byte("%PDF")))
	assert.Assert(t, &first[0] != &second[0])

	// Same input renders the same rows in the same order. The documents
	// differ only in the embedded creation/modification timestamps, so after
	// masking those the bytes must match.
	timestamps := regexp.MustCompile(`D:\d{14}`)
	masked1 := timestamps.ReplaceAll(first, []byte("D:00000000000000"))
	masked2 := timestamps.ReplaceAll(second, []byte("D:00000000000000"))
	assert.Assert(t, bytes.Equal(masked1, masked2))
}

func TestRenderEmptyPortfolio(t *testing.T) {
	reportService := service.NewReportService(service.ReportServiceConfig{})

	document, err := reportService.Render(config.Portfolio{
		CoreStarted:   config.NotAvailable,
		CoreCompleted: config.NotAvailable,
	})
	assert.NilError(t, err)
	assert.Assert(t, bytes.HasPrefix(document, []byte("%PDF")))
}

func TestRenderMissingLogo(t *testing.T) {
	reportService := service.NewReportService(service.ReportServiceConfig{
		LogoPath: "/nonexistent/logo.png",
	})

	// A missing logo asset is skipped, not an error
	document, err := reportService.Render(reportFixture)
	assert.NilError(t, err)
	assert.Assert(t, bytes.HasPrefix(document, []byte("%PDF")))
}

func TestRenderManyProjects(t *testing.T) {
	reportService := service.NewReportService(service.ReportServiceConfig{})

	data := config.Portfolio{
		FirstName:     "Jane",
		LastName:      "Doe",
		CoreStarted:   "January 15, 2020",
		CoreCompleted: "In Progress",
	}

	for i := 0; i < 60; i++ {
		data.Projects = append(data.Projects, config.ProjectEntry{
			Name:        fmt.Sprintf("project_%d", i),
			Description: service.FallbackDescription,
			Grade:       "100",
		})
	}

	// Table spans multiple pages without erroring
	document, err := reportService.Render(data)
	assert.NilError(t, err)
	assert.Assert(t, bytes.HasPrefix(document, []byte("%PDF")))
}
