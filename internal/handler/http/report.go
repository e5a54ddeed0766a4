package http

import (
	"net/http"

	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/report"
	"github.com/shopfloor-hr/overtime-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Grouped(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Grouped implements ReportHandler.
func (h *reportHandlerImpl) Grouped(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := report.GroupedReportRequest{
		PeriodType: query.Get("period"),
		From:       query.Get("from"),
		To:         query.Get("to"),
	}

	result, err := h.reportService.Grouped(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
