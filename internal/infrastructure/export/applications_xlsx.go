package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/you/jobsvc/domain"
)

const sheetName = "Applications"

var applicationColumns = []string{
	"Application ID", "Job ID", "Job Title", "Applicant ID", "Applicant Name",
	"Applicant Email", "Technical Skills", "Soft Skills", "Resume", "Applied At",
}

// ApplicationsXLSX implements domain.ApplicationsExporter with one row per application
type ApplicationsXLSX struct{}

// NewApplicationsXLSX creates a spreadsheet exporter
func NewApplicationsXLSX() *ApplicationsXLSX {
	return &ApplicationsXLSX{}
}

// Export implements domain.ApplicationsExporter
func (x *ApplicationsXLSX) Export(applications []*domain.Application) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, title := range applicationColumns {
		if err := setCell(f, col+1, 1, title); err != nil {
			return nil, err
		}
	}

	for i, a := range applications {
		row := i + 2
		var jobTitle, name, email string
		if a.Job != nil {
			jobTitle = a.Job.Title
		}
		if a.Applicant != nil {
			name = a.Applicant.UserName
			email = a.Applicant.Email
		}
		values := []any{
			a.ID, a.JobID, jobTitle, a.UserID, name, email,
			strings.Join(a.TechnicalSkills, ", "),
			strings.Join(a.SoftSkills, ", "),
			a.Resume,
			a.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, cell, v); err != nil {
		return fmt.Errorf("failed to write cell %s: %w", cell, err)
	}
	return nil
}

var _ domain.ApplicationsExporter = (*ApplicationsXLSX)(nil)
