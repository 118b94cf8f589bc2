package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/genbaflow/genba-backend-go/internal/domain/record"
	"github.com/genbaflow/genba-backend-go/internal/handler/http/response"
)

type ReviewHandler interface {
	Sync(w http.ResponseWriter, r *http.Request)
	ApproveAll(w http.ResponseWriter, r *http.Request)
	RejectAll(w http.ResponseWriter, r *http.Request)
	SetOverrides(w http.ResponseWriter, r *http.Request)
	ResetAll(w http.ResponseWriter, r *http.Request)

	ListPending(w http.ResponseWriter, r *http.Request)
	ListApproved(w http.ResponseWriter, r *http.Request)
	ListRejected(w http.ResponseWriter, r *http.Request)
}

type reviewHandlerImpl struct {
	reviewService record.ReviewService
}

func NewReviewHandler(reviewService record.ReviewService) ReviewHandler {
	return &reviewHandlerImpl{reviewService: reviewService}
}

func (h *reviewHandlerImpl) Sync(w http.ResponseWriter, r *http.Request) {
	result, err := h.reviewService.Sync(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

type decisionRequest struct {
	Actor  string `json:"actor"`
	Reason string `json:"reason"`
}

func (h *reviewHandlerImpl) ApproveAll(w http.ResponseWriter, r *http.Request) {
	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	moved, err := h.reviewService.ApproveAllOpen(r.Context(), req.Actor, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int{"approved": moved})
}

func (h *reviewHandlerImpl) RejectAll(w http.ResponseWriter, r *http.Request) {
	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	moved, err := h.reviewService.RejectAllOpen(r.Context(), req.Actor, req.Reason, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int{"rejected": moved})
}

type overridesRequest struct {
	Client        *string  `json:"client"`
	WorkType      *string  `json:"work_type"`
	Site          *string  `json:"site"`
	WorkerName    *string  `json:"worker_name"`
	Quantity      *float64 `json:"quantity"`
	OvertimeHours *float64 `json:"overtime_hours"`
}

func (h *reviewHandlerImpl) SetOverrides(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req overridesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	overrides := record.Overrides{
		Client:        req.Client,
		WorkType:      req.WorkType,
		Site:          req.Site,
		WorkerName:    req.WorkerName,
		Quantity:      req.Quantity,
		OvertimeHours: req.OvertimeHours,
	}

	if err := h.reviewService.SetOverrides(r.Context(), key, overrides); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overrides updated", nil)
}

func (h *reviewHandlerImpl) ResetAll(w http.ResponseWriter, r *http.Request) {
	if err := h.reviewService.ResetAll(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Review collections cleared", nil)
}

func (h *reviewHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	result, err := h.reviewService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reviewHandlerImpl) ListApproved(w http.ResponseWriter, r *http.Request) {
	result, err := h.reviewService.ListApproved(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reviewHandlerImpl) ListRejected(w http.ResponseWriter, r *http.Request) {
	result, err := h.reviewService.ListRejected(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
