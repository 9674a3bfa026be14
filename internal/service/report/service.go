package report

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/workpoint-ph/attendance-backend-go/internal/domain/attendance"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/employee"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

type ReportServiceImpl struct {
	attendance attendance.Repository
	employees  employee.Repository
}

func NewReportService(attendanceRepo attendance.Repository, employeeRepo employee.Repository) report.Service {
	return &ReportServiceImpl{
		attendance: attendanceRepo,
		employees:  employeeRepo,
	}
}

// Timesheet implements report.Service.
func (s *ReportServiceImpl) Timesheet(ctx context.Context, req report.TimesheetRequest) (report.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return report.TimesheetResponse{}, err
	}

	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return report.TimesheetResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	records, err := s.attendance.ListRange(ctx, req.EmployeeID, start, end)
	if err != nil {
		return report.TimesheetResponse{}, err
	}

	resp := report.TimesheetResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Rows:         make([]report.TimesheetRow, 0, len(records)),
	}
	for _, rec := range records {
		resp.Rows = append(resp.Rows, timesheetRow(rec))
		resp.TotalWorkHours += rec.WorkHours
	}
	resp.TotalWorkHours = math.Round(resp.TotalWorkHours*100) / 100
	return resp, nil
}

// ExportTimesheet implements report.Service.
func (s *ReportServiceImpl) ExportTimesheet(ctx context.Context, req report.TimesheetRequest) (string, []byte, error) {
	sheet, err := s.Timesheet(ctx, req)
	if err != nil {
		return "", nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheetName = "Timesheet"
	f.SetSheetName("Sheet1", sheetName)

	f.SetCellValue(sheetName, "A1", "Employee")
	f.SetCellValue(sheetName, "B1", sheet.EmployeeName)
	f.SetCellValue(sheetName, "A2", "Period")
	f.SetCellValue(sheetName, "B2", sheet.StartDate+" to "+sheet.EndDate)

	headers := []string{"Date", "Time In", "Time In Status", "Start Break", "End Break", "Break Status", "Time Out", "Time Out Status", "Break (min)", "Work Hours"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(sheetName, cell, header)
	}

	rowNum := 5
	for _, row := range sheet.Rows {
		values := []interface{}{
			row.Date, row.TimeIn, row.TimeInStatus, row.StartBreak, row.EndBreak,
			row.BreakStatus, row.TimeOut, row.TimeOutStatus, row.BreakMinutes, row.WorkHours,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowNum)
			f.SetCellValue(sheetName, cell, v)
		}
		rowNum++
	}

	f.SetCellValue(sheetName, fmt.Sprintf("I%d", rowNum+1), "Total")
	f.SetCellValue(sheetName, fmt.Sprintf("J%d", rowNum+1), sheet.TotalWorkHours)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", nil, fmt.Errorf("failed to render timesheet workbook: %w", err)
	}

	filename := fmt.Sprintf("timesheet_%s_%s_%s.xlsx", sheet.EmployeeID, sheet.StartDate, sheet.EndDate)
	return filename, buf.Bytes(), nil
}

func timesheetRow(rec attendance.Record) report.TimesheetRow {
	row := report.TimesheetRow{
		Date:         rec.Date.Format("2006-01-02"),
		BreakMinutes: rec.BreakDuration,
		WorkHours:    rec.WorkHours,
	}
	format := func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("15:04:05")
	}
	row.TimeIn = format(rec.TimeIn)
	row.StartBreak = format(rec.StartBreak)
	row.EndBreak = format(rec.EndBreak)
	row.TimeOut = format(rec.TimeOut)
	if rec.TimeInStatus != nil {
		row.TimeInStatus = rec.TimeInStatus.String()
	}
	if rec.BreakStatus != nil {
		row.BreakStatus = rec.BreakStatus.String()
	}
	if rec.TimeOutStatus != nil {
		row.TimeOutStatus = rec.TimeOutStatus.String()
	}
	return row
}
