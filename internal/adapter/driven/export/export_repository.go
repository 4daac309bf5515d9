package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/aws-org-audit-go/internal/domain/entity"
	"github.com/diillson/aws-org-audit-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ProjectsHeader is the header of the top-level OU dump.
var ProjectsHeader = []string{"OU_ID", "NAME"}

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// --- Relatório de contas ---

func (r *ExportRepositoryImpl) ExportReportToCSV(report entity.AuditReport, path string) (string, error) {
	records := make([][]string, 0, len(report.Rows)+1)
	records = append(records, entity.ReportHeader)
	for _, row := range report.Rows {
		records = append(records, row.Record())
	}
	return writeCSV(path, records)
}

func (r *ExportRepositoryImpl) ExportReportToJSON(report entity.AuditReport, path string) (string, error) {
	outputFilename, err := prepareOutput(path, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportReportToPDF(report entity.AuditReport, path string) (string, error) {
	outputFilename, err := prepareOutput(path, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	bodyTextColor := [3]int{50, 50, 50}
	// Larguras somam 277mm (A4 paisagem menos margens).
	widths := []float64{62, 30, 45, 40, 40, 25, 35}
	aligns := []string{"L", "L", "L", "L", "L", "C", "R"}

	title := "AWS Organization Account Audit"
	if period := report.Period.String(); period != "" {
		title = fmt.Sprintf("%s - %s", title, period)
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footer := fmt.Sprintf("Account Audit | %s | run %s", report.GeneratedAt.Format("2006-01-02"), report.RunID)
		pdf.CellFormat(0, 10, tr(footer), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	drawHeader := func() {
		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetFont("Arial", "B", 9)
		for i, h := range entity.ReportHeader {
			pdf.CellFormat(widths[i], 8, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 8)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	}

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(title), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	summary := fmt.Sprintf("%d active accounts, %d excluded", len(report.Rows), len(report.Excluded))
	if report.Currency != "" {
		summary += fmt.Sprintf(" | currency: %s", report.Currency)
	}
	pdf.CellFormat(0, 8, tr(summary), "", 1, "L", false, 0, "")
	pdf.Ln(4)
	drawHeader()

	for i, row := range report.Rows {
		if pdf.GetY() > 185 {
			pdf.AddPage()
			drawHeader()
		}
		fill := i%2 == 1
		pdf.SetFillColor(245, 245, 245)
		for j, cell := range row.Record() {
			pdf.CellFormat(widths[j], 7, tr(truncate(cell, widths[j])), "1", 0, aligns[j], fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Projects (OUs de primeiro nível) ---

func (r *ExportRepositoryImpl) ExportProjectsToCSV(projects []entity.OrganizationalUnit, path string) (string, error) {
	records := make([][]string, 0, len(projects)+1)
	records = append(records, ProjectsHeader)
	for _, p := range projects {
		records = append(records, []string{p.ID, p.Name})
	}
	return writeCSV(path, records)
}

// --- Funções Auxiliares ---

// writeCSV grava no caminho exato pedido pelo usuário.
func writeCSV(outputFilename string, records [][]string) (string, error) {
	if err := ensureDir(outputFilename); err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(records); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// prepareOutput troca (ou acrescenta) a extensão ext no caminho
// e garante que o diretório exista.
func prepareOutput(path, ext string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no output file name given")
	}
	current := filepath.Ext(path)
	switch {
	case current == "":
		path = path + "." + ext
	case !strings.EqualFold(current, "."+ext):
		path = strings.TrimSuffix(path, current) + "." + ext
	}

	if err := ensureDir(path); err != nil {
		return "", err
	}
	return path, nil
}

func ensureDir(path string) error {
	if path == "" {
		return fmt.Errorf("no output file name given")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	return nil
}

// truncate corta o texto para caber na célula (aprox. 1.6mm por caractere em Arial 8).
func truncate(text string, width float64) string {
	limit := int(width / 1.6)
	runes := []rune(text)
	if len(runes) <= limit || limit < 4 {
		return text
	}
	return string(runes[:limit-3]) + "..."
}
