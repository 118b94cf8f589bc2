package http

import (
	"net/http"

	"github.com/genbaflow/genba-backend-go/internal/domain/payroll"
	"github.com/genbaflow/genba-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Export(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	exportService payroll.ExportService
	payrollRepo   payroll.Repository
}

func NewPayrollHandler(exportService payroll.ExportService, payrollRepo payroll.Repository) PayrollHandler {
	return &payrollHandlerImpl{
		exportService: exportService,
		payrollRepo:   payrollRepo,
	}
}

func (h *payrollHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	result, err := h.exportService.ExportApproved(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.payrollRepo.ReadAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
