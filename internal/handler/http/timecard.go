package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/timecard"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/handler/http/response"
)

type TimecardHandler interface {
	ListTimecards(w http.ResponseWriter, r *http.Request)
	GetTimecard(w http.ResponseWriter, r *http.Request)
	CreateTimecard(w http.ResponseWriter, r *http.Request)
	UpdateTimecard(w http.ResponseWriter, r *http.Request)
	DeleteTimecard(w http.ResponseWriter, r *http.Request)
}

type timecardHandlerImpl struct {
	timecardService timecard.TimecardService
	formatter       timecard.TimeFormatter
}

func NewTimecardHandler(timecardService timecard.TimecardService, formatter timecard.TimeFormatter) TimecardHandler {
	return &timecardHandlerImpl{
		timecardService: timecardService,
		formatter:       formatter,
	}
}

// ListTimecards implements TimecardHandler.
func (h *timecardHandlerImpl) ListTimecards(w http.ResponseWriter, r *http.Request) {
	empID, ok := queryInt(r, "emp_id")
	if !ok {
		response.BadRequest(w, "Invalid request format", map[string]string{"emp_id": "emp_id must be an integer"})
		return
	}

	timecards, err := h.timecardService.List(r.Context(), companyParam(r), empID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, timecard.NewTimecardResponses(timecards, h.formatter))
}

// GetTimecard implements TimecardHandler.
func (h *timecardHandlerImpl) GetTimecard(w http.ResponseWriter, r *http.Request) {
	id, ok := queryInt(r, "timecard_id")
	if !ok {
		response.BadRequest(w, "Invalid request format", map[string]string{"timecard_id": "timecard_id must be an integer"})
		return
	}

	t, err := h.timecardService.Get(r.Context(), companyParam(r), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, timecard.NewTimecardResponse(t, h.formatter))
}

// CreateTimecard implements TimecardHandler. Input is form encoded.
func (h *timecardHandlerImpl) CreateTimecard(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.Error("Failed to parse form", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	empID, ok := formInt(r, "emp_id", false)
	if !ok {
		response.BadRequest(w, "Invalid request format", map[string]string{"emp_id": "emp_id must be an integer"})
		return
	}

	req := timecard.CreateTimecardRequest{
		Company:   r.FormValue("company"),
		EmpID:     empID,
		StartTime: r.FormValue("start_time"),
		EndTime:   r.FormValue("end_time"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.timecardService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Timecard created successfully", timecard.NewTimecardResponse(created, h.formatter))
}

// UpdateTimecard implements TimecardHandler. Input is JSON.
func (h *timecardHandlerImpl) UpdateTimecard(w http.ResponseWriter, r *http.Request) {
	var req timecard.UpdateTimecardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update timecard decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.timecardService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timecard updated successfully", timecard.NewTimecardResponse(updated, h.formatter))
}

// DeleteTimecard implements TimecardHandler.
func (h *timecardHandlerImpl) DeleteTimecard(w http.ResponseWriter, r *http.Request) {
	id, ok := queryInt(r, "timecard_id")
	if !ok {
		response.BadRequest(w, "Invalid request format", map[string]string{"timecard_id": "timecard_id must be an integer"})
		return
	}

	n, err := h.timecardService.Delete(r.Context(), companyParam(r), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("Timecard %d deleted", id), DeleteResponse{Deleted: n})
}
