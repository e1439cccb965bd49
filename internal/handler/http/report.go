package http

import (
	"net/http"

	"github.com/staffly/hrms-backend-go/internal/domain/report"
	"github.com/staffly/hrms-backend-go/internal/handler/http/response"
	reportService "github.com/staffly/hrms-backend-go/internal/service/report"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService *reportService.ReportService
}

func NewReportHandler(s *reportService.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: s}
}

func (h *ReportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{
		Month: r.URL.Query().Get("month"),
	}
	if staffID := r.URL.Query().Get("staff_id"); staffID != "" {
		req.EmployeeID = &staffID
	}

	resp, err := h.reportService.Monthly(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
