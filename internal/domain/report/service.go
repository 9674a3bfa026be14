package report

import "context"

type Service interface {
	// Timesheet builds a per-employee timesheet over a date range.
	Timesheet(ctx context.Context, req TimesheetRequest) (TimesheetResponse, error)

	// ExportTimesheet renders the timesheet as an .xlsx workbook.
	ExportTimesheet(ctx context.Context, req TimesheetRequest) (filename string, content []byte, err error)
}
