package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/adjustment"
	"github.com/workpoint-ph/attendance-backend-go/internal/handler/http/response"
)

type AdjustmentHandler interface {
	SubmitMakeup(w http.ResponseWriter, r *http.Request)
	SubmitScheduleChange(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type adjustmentHandlerImpl struct {
	adjustmentService adjustment.Service
}

func NewAdjustmentHandler(adjustmentService adjustment.Service) AdjustmentHandler {
	return &adjustmentHandlerImpl{adjustmentService: adjustmentService}
}

// SubmitMakeup implements AdjustmentHandler.
func (h *adjustmentHandlerImpl) SubmitMakeup(w http.ResponseWriter, r *http.Request) {
	var req adjustment.SubmitMakeupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit makeup decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.adjustmentService.SubmitMakeup(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Makeup hours request submitted", result)
}

// SubmitScheduleChange implements AdjustmentHandler.
func (h *adjustmentHandlerImpl) SubmitScheduleChange(w http.ResponseWriter, r *http.Request) {
	var req adjustment.SubmitScheduleChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit schedule change decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.adjustmentService.SubmitScheduleChange(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Schedule change request submitted", result)
}

// GetMyRequests implements AdjustmentHandler.
func (h *adjustmentHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	filter := adjustment.Filter{
		Kind:   queryPtr(r, "kind"),
		Status: queryPtr(r, "status"),
		Page:   queryInt(r, "page"),
		Limit:  queryInt(r, "limit"),
	}

	result, err := h.adjustmentService.GetMyRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// List implements AdjustmentHandler.
func (h *adjustmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := adjustment.Filter{
		EmployeeID: queryPtr(r, "employee_id"),
		Kind:       queryPtr(r, "kind"),
		Status:     queryPtr(r, "status"),
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
	}

	result, err := h.adjustmentService.ListRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Approve implements AdjustmentHandler.
func (h *adjustmentHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAdjustmentReview(w, r)
	if !ok {
		return
	}

	result, err := h.adjustmentService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Adjustment request approved", result)
}

// Reject implements AdjustmentHandler.
func (h *adjustmentHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAdjustmentReview(w, r)
	if !ok {
		return
	}

	result, err := h.adjustmentService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Adjustment request rejected", result)
}

func decodeAdjustmentReview(w http.ResponseWriter, r *http.Request) (adjustment.ReviewRequest, bool) {
	var req adjustment.ReviewRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Review decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return adjustment.ReviewRequest{}, false
		}
	}
	req.ID = chi.URLParam(r, "id")
	return req, true
}
