package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/diillson/aws-org-audit-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() entity.AuditReport {
	return entity.AuditReport{
		RunID:       "run-1",
		GeneratedAt: time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC),
		Period:      entity.StatementPeriod{Year: "2022", Month: "03"},
		Currency:    "USD",
		Rows: []entity.ReportRow{
			{Email: "a@x.com", AccountID: "111", AccountName: "Acme", Project: "Team A", Parent: "Division 1", DateJoined: "1/2/2022", Spend: "1,234.50"},
			{Email: "b@x.com", AccountID: "222", AccountName: "Beta", Project: "ROOT", Parent: "ROOT", DateJoined: "12/31/2019", Spend: "0.00"},
		},
		Excluded: []entity.AccountNotice{{Email: "c@x.com", AccountID: "333", Status: "SUSPENDED"}},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestExportReportToCSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "audit.csv")
	repo := NewExportRepository()

	path, err := repo.ExportReportToCSV(sampleReport(), out)
	require.NoError(t, err)
	assert.Equal(t, out, path)

	records := readCSV(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"AWS email", "account id", "name", "project", "parent", "date joined", "spend"}, records[0])
	assert.Equal(t, []string{"a@x.com", "111", "Acme", "Team A", "Division 1", "1/2/2022", "1,234.50"}, records[1])
	assert.Equal(t, "0.00", records[2][6])
}

func TestExportReportToCSV_NoRows(t *testing.T) {
	out := filepath.Join(t.TempDir(), "audit.csv")
	path, err := NewExportRepository().ExportReportToCSV(entity.AuditReport{}, out)
	require.NoError(t, err)
	assert.Len(t, readCSV(t, path), 1)
}

func TestExportReportToJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "audit.csv")

	path, err := NewExportRepository().ExportReportToJSON(sampleReport(), out)
	require.NoError(t, err)
	assert.Equal(t, ".json", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got entity.AuditReport
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, sampleReport().Rows, got.Rows)
	assert.Equal(t, "SUSPENDED", got.Excluded[0].Status)
}

func TestExportReportToPDF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "audit")

	path, err := NewExportRepository().ExportReportToPDF(sampleReport(), out)
	require.NoError(t, err)
	assert.Equal(t, out+".pdf", path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportProjectsToCSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "projects.csv")
	projects := []entity.OrganizationalUnit{{ID: "ou-1", Name: "Project One"}, {ID: "ou-2", Name: "Project, Two"}}

	path, err := NewExportRepository().ExportProjectsToCSV(projects, out)
	require.NoError(t, err)

	records := readCSV(t, path)
	assert.Equal(t, [][]string{{"OU_ID", "NAME"}, {"ou-1", "Project One"}, {"ou-2", "Project, Two"}}, records)
}

func TestPrepareOutput(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		in, ext, want string
	}{
		{"OUT", "json", "OUT.json"},
		{"report.csv", "json", "report.json"},
		{"report.csv", "pdf", "report.pdf"},
		{"report.PDF", "pdf", "report.PDF"},
	}
	for _, tt := range tests {
		got, err := prepareOutput(filepath.Join(dir, tt.in), tt.ext)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, tt.want), got)
	}

	_, err := prepareOutput("", "json")
	assert.Error(t, err)
}

func TestExportReportToCSV_ExactName(t *testing.T) {
	out := filepath.Join(t.TempDir(), "OUT")
	path, err := NewExportRepository().ExportReportToCSV(sampleReport(), out)
	require.NoError(t, err)
	assert.Equal(t, out, path)
}
