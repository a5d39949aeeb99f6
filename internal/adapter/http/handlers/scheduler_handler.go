package handlers

import (
	"errors"
	"net/http"
	"time"

	response "cityfuture/internal/adapter/http/dto/response"
	"cityfuture/internal/usecase"
	"cityfuture/internal/usecase/interfaces"
	"cityfuture/pkg"

	"github.com/gin-gonic/gin"
)

const schedulerDateLayout = "2006-01-02"

var (
	errInvalidSchedulerDate = pkg.NewDomainErrorSimple("INVALID_DATE", "Dates must use the YYYY-MM-DD format", http.StatusBadRequest)
)

// SchedulerHandler exposes the status-transition engine over HTTP. Every
// endpoint takes dates as YYYY-MM-DD query parameters; the single-date
// endpoints default to today.

type SchedulerHandler struct {
	usecase usecase.ISchedulerUseCase
	clock   interfaces.Clock
}

func NewSchedulerHandler(uc usecase.ISchedulerUseCase, clock interfaces.Clock) *SchedulerHandler {
	return &SchedulerHandler{usecase: uc, clock: clock}
}

func (h *SchedulerHandler) Advance(c *gin.Context) {
	date, ok := h.dateQuery(c, "date")
	if !ok {
		return
	}

	transition, err := h.usecase.Advance(c.Request.Context(), date)
	if err != nil {
		appErr := mapSchedulerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NewDailyTransitionResponse(transition.Date, transition.Started, transition.Finished))
}

func (h *SchedulerHandler) ProcessOverdue(c *gin.Context) {
	date, ok := h.dateQuery(c, "date")
	if !ok {
		return
	}

	processed, err := h.usecase.ProcessOverdue(c.Request.Context(), date)
	if err != nil {
		appErr := mapSchedulerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NewProcessedOrdersResponse(processed))
}

func (h *SchedulerHandler) Simulate(c *gin.Context) {
	date, ok := h.dateQuery(c, "date")
	if !ok {
		return
	}

	transition, err := h.usecase.SimulateForDate(c.Request.Context(), date)
	if err != nil {
		appErr := mapSchedulerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NewDailyTransitionResponse(transition.Date, transition.Started, transition.Finished))
}

// RunRange replays the daily advancement for every date from start to end
// inclusive. Both parameters are required.
func (h *SchedulerHandler) RunRange(c *gin.Context) {
	start, err := time.Parse(schedulerDateLayout, c.Query("start"))
	if err != nil {
		c.JSON(errInvalidSchedulerDate.HTTPStatus, errInvalidSchedulerDate.ToHTTPError())
		return
	}
	end, err := time.Parse(schedulerDateLayout, c.Query("end"))
	if err != nil {
		c.JSON(errInvalidSchedulerDate.HTTPStatus, errInvalidSchedulerDate.ToHTTPError())
		return
	}

	days, err := h.usecase.RunRange(c.Request.Context(), start, end)
	if err != nil {
		appErr := mapSchedulerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.DailyTransitionResponse, 0, len(days))
	for _, day := range days {
		out = append(out, response.NewDailyTransitionResponse(day.Date, day.Started, day.Finished))
	}
	c.JSON(http.StatusOK, out)
}

// dateQuery parses the named date parameter, defaulting to today when absent.
// A false return means the error response was already written.
func (h *SchedulerHandler) dateQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return h.clock.Today(), true
	}

	date, err := time.Parse(schedulerDateLayout, raw)
	if err != nil {
		c.JSON(errInvalidSchedulerDate.HTTPStatus, errInvalidSchedulerDate.ToHTTPError())
		return time.Time{}, false
	}
	return date, true
}

func mapSchedulerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "The end date must not precede the start date", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
