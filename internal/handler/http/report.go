package http

import (
	"net/http"

	"github.com/workpoint-ph/attendance-backend-go/internal/domain/report"
	"github.com/workpoint-ph/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Timesheet(w http.ResponseWriter, r *http.Request)
	ExportTimesheet(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func timesheetRequest(r *http.Request) report.TimesheetRequest {
	q := r.URL.Query()
	return report.TimesheetRequest{
		EmployeeID: q.Get("employee_id"),
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
	}
}

// Timesheet implements ReportHandler.
func (h *reportHandlerImpl) Timesheet(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Timesheet(r.Context(), timesheetRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ExportTimesheet implements ReportHandler.
func (h *reportHandlerImpl) ExportTimesheet(w http.ResponseWriter, r *http.Request) {
	filename, content, err := h.reportService.ExportTimesheet(r.Context(), timesheetRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
