package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"jewelcms/internal/models"
)

// Generator is an interface so handlers can be tested with a fake.
type Generator interface {
	GenerateLeadReport(data LeadReportData) (string, error)
}

type ReportGenerator struct {
	RootDir  string // storage root, e.g. "./files"
	fontName string
}

type LeadReportData struct {
	Stats       *models.LeadStats
	TopLeads    []*models.Lead
	GeneratedAt time.Time
	Filename    string // base name only; generated when empty
}

func NewReportGenerator(rootDir string) *ReportGenerator {
	return &ReportGenerator{
		RootDir:  filepath.Clean(rootDir),
		fontName: "Helvetica",
	}
}

func (g *ReportGenerator) GenerateLeadReport(data LeadReportData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("lead_report_%s.pdf", data.GeneratedAt.Format("20060102_150405"))
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Lead Pipeline Report", false)
	pdf.SetAuthor("Jewel CMS", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Page %d/{nb}", pdf.PageNo()),
			"", 0, "C", false, 0, "",
		)
	})
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, "Lead Pipeline Report", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 12)
	pdf.CellFormat(0, 7, data.GeneratedAt.Format("02 Jan 2006 15:04"), "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	st := data.Stats
	g.sectionTitle(pdf, "Pipeline")
	g.kvLine(pdf, "Total leads", fmt.Sprintf("%d", st.Total))
	g.kvLine(pdf, "New", fmt.Sprintf("%d", st.New))
	g.kvLine(pdf, "Contacted", fmt.Sprintf("%d", st.Contacted))
	g.kvLine(pdf, "Qualified", fmt.Sprintf("%d", st.Qualified))
	g.kvLine(pdf, "Scheduled", fmt.Sprintf("%d", st.Scheduled))
	g.kvLine(pdf, "Converted", fmt.Sprintf("%d", st.Converted))
	g.kvLine(pdf, "Lost", fmt.Sprintf("%d", st.Lost))
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Temperature")
	g.kvLine(pdf, "Hot", fmt.Sprintf("%d", st.Hot))
	g.kvLine(pdf, "Warm", fmt.Sprintf("%d", st.Warm))
	g.kvLine(pdf, "Cold", fmt.Sprintf("%d", st.Cold))
	g.kvLine(pdf, "Average score", fmt.Sprintf("%.1f", st.AvgScore))
	g.kvLine(pdf, "New in last 30 days", fmt.Sprintf("%d", st.Last30Days))
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Top leads by score")
	pdf.SetFont(g.fontName, "B", 10)
	pdf.CellFormat(55, 6, "Name", "B", 0, "L", false, 0, "")
	pdf.CellFormat(60, 6, "Email", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, "Status", "B", 0, "L", false, 0, "")
	pdf.CellFormat(15, 6, "Score", "B", 0, "R", false, 0, "")
	pdf.CellFormat(0, 6, "Category", "B", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	for _, l := range data.TopLeads {
		pdf.CellFormat(55, 6, l.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, l.Email, "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, l.Status, "", 0, "L", false, 0, "")
		pdf.CellFormat(15, 6, fmt.Sprintf("%d", l.Score), "", 0, "R", false, 0, "")
		pdf.CellFormat(0, 6, l.Category, "", 1, "L", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

// ===== helpers =====

func (g *ReportGenerator) ensureTarget(filename string) (string, error) {
	dir := filepath.Join(g.RootDir, "reports")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	filename = filepath.Base(filename) // safety
	return filepath.Join(dir, filename), nil
}

func (g *ReportGenerator) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
}

func (g *ReportGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *ReportGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}
