package repository

import (
	"github.com/diillson/aws-org-audit-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportReportToCSV(report entity.AuditReport, path string) (string, error)
	ExportReportToJSON(report entity.AuditReport, path string) (string, error)
	ExportReportToPDF(report entity.AuditReport, path string) (string, error)

	// Projects (OUs de primeiro nível)
	ExportProjectsToCSV(projects []entity.OrganizationalUnit, path string) (string, error)
}
