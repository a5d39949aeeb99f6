package handlers

import (
	"net/http"

	response "cityfuture/internal/adapter/http/dto/response"
	"cityfuture/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the aggregated construction report and the
// project-level summary views.

type ReportHandler struct {
	usecase usecase.IConstructionOrderUseCase
}

func NewReportHandler(uc usecase.IConstructionOrderUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := h.usecase.GenerateReport(c.Request.Context())
	if err != nil {
		appErr := mapConstructionOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConstructionReport(report))
}

func (h *ReportHandler) GetProjectSummary(c *gin.Context) {
	summary, err := h.usecase.GetProjectSummary(c.Request.Context())
	if err != nil {
		appErr := mapConstructionOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjectSummary(summary))
}

func (h *ReportHandler) GetProjectEndDate(c *gin.Context) {
	endDate, err := h.usecase.GetProjectEndDate(c.Request.Context())
	if err != nil {
		appErr := mapConstructionOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjectEndDate(endDate))
}
