package service

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/dgiurgev/portfolio42/internal/config"

	"github.com/go-pdf/fpdf"
)

type ReportServiceConfig struct {
	LogoPath string
}

// ReportService renders a portfolio into a PDF document. Every call builds a
// fresh document from scratch, nothing is shared between renders.
type ReportService struct {
	Config ReportServiceConfig
}

func NewReportService(config ReportServiceConfig) *ReportService {
	return &ReportService{
		Config: config,
	}
}

// A block is one abstract layout element. Render accumulates the ordered
// block list first and hands it to buildDocument in a single pass, so no
// document state exists outside that call.
type block interface {
	draw(doc *fpdf.Fpdf)
}

func (s *ReportService) Render(data config.Portfolio) ([]byte, error) {
	blocks := []block{
		&headerBlock{
			logoPath:      s.Config.LogoPath,
			fullName:      strings.TrimSpace(data.FirstName + " " + data.LastName),
			coreStarted:   data.CoreStarted,
			coreCompleted: data.CoreCompleted,
		},
		&sectionTitleBlock{
			title: "Project Portfolio",
		},
		&projectTableBlock{
			projects: data.Projects,
		},
	}

	return buildDocument(blocks)
}

func buildDocument(blocks []block) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	for _, b := range blocks {
		b.draw(doc)
	}

	if doc.Err() {
		return nil, &RenderError{cause: doc.Error()}
	}

	var buf bytes.Buffer
	err := doc.Output(&buf)
	if err != nil {
		return nil, &RenderError{cause: err}
	}

	return buf.Bytes(), nil
}

// headerBlock draws the optional logo on the left and the right-aligned name
// and core curriculum dates.
type headerBlock struct {
	logoPath      string
	fullName      string
	coreStarted   string
	coreCompleted string
}

func (b *headerBlock) draw(doc *fpdf.Fpdf) {
	if b.logoPath != "" {
		if _, err := os.Stat(b.logoPath); err == nil {
			doc.ImageOptions(b.logoPath, 10, 10, 25, 0, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
		}
	}

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 10, b.fullName, "", 1, "R", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 6, fmt.Sprintf("Core Started: %s", b.coreStarted), "", 1, "R", false, 0, "")
	doc.CellFormat(0, 6, fmt.Sprintf("Core Completed: %s", b.coreCompleted), "", 1, "R", false, 0, "")
	doc.Ln(10)
}

type sectionTitleBlock struct {
	title string
}

func (b *sectionTitleBlock) draw(doc *fpdf.Fpdf) {
	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 9, b.title, "", 1, "L", false, 0, "")
	doc.Ln(2)
}

// projectTableBlock draws the project table: one row per entry in list
// order, descriptions wrapped, rows split onto new pages as needed.
type projectTableBlock struct {
	projects []config.ProjectEntry
}

const (
	nameColWidth  = 45.0
	descColWidth  = 115.0
	gradeColWidth = 30.0
	tableLineHt   = 5.0
	cellPadding   = 2.0
)

func (b *projectTableBlock) draw(doc *fpdf.Fpdf) {
	doc.SetDrawColor(120, 120, 120)

	doc.SetFont("Helvetica", "B", 11)
	doc.SetFillColor(55, 55, 55)
	doc.SetTextColor(255, 255, 255)
	doc.CellFormat(nameColWidth, 8, "Project", "1", 0, "L", true, 0, "")
	doc.CellFormat(descColWidth, 8, "Description", "1", 0, "L", true, 0, "")
	doc.CellFormat(gradeColWidth, 8, "Grade", "1", 1, "C", true, 0, "")
	doc.SetTextColor(0, 0, 0)

	fill := false

	for _, project := range b.projects {
		doc.SetFont("Helvetica", "", 10)
		lines := doc.SplitText(project.Description, descColWidth-2*cellPadding)
		rowHeight := float64(len(lines))*tableLineHt + 2*cellPadding
		if rowHeight < 9 {
			rowHeight = 9
		}

		_, pageHeight := doc.GetPageSize()
		_, _, _, bottomMargin := doc.GetMargins()
		if doc.GetY()+rowHeight > pageHeight-bottomMargin {
			doc.AddPage()
		}

		if fill {
			doc.SetFillColor(240, 240, 240)
		} else {
			doc.SetFillColor(255, 255, 255)
		}

		x, y := doc.GetXY()
		doc.Rect(x, y, nameColWidth+descColWidth+gradeColWidth, rowHeight, "FD")
		doc.Line(x+nameColWidth, y, x+nameColWidth, y+rowHeight)
		doc.Line(x+nameColWidth+descColWidth, y, x+nameColWidth+descColWidth, y+rowHeight)

		doc.SetFont("Helvetica", "B", 10)
		doc.SetXY(x+cellPadding, y+cellPadding)
		doc.CellFormat(nameColWidth-2*cellPadding, tableLineHt, project.Name, "", 0, "L", false, 0, "")

		doc.SetFont("Helvetica", "", 10)
		doc.SetXY(x+nameColWidth+cellPadding, y+cellPadding)
		doc.MultiCell(descColWidth-2*cellPadding, tableLineHt, project.Description, "", "L", false)

		doc.SetXY(x+nameColWidth+descColWidth, y+cellPadding)
		doc.CellFormat(gradeColWidth, tableLineHt, project.Grade, "", 0, "C", false, 0, "")

		doc.SetXY(x, y+rowHeight)
		fill = !fill
	}
}
