package hours

import (
	"fmt"
	"net/http"

	"tavolo/infras/otel"
	"tavolo/internal/domains/hours/model/dto"
	"tavolo/internal/domains/hours/service"
	"tavolo/shared/constant"
	"tavolo/shared/failure"
	"tavolo/shared/timezone"
	"tavolo/shared/validator"
	"tavolo/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

// Default range of the schedule listing when the caller gives no bounds.
const defaultRangeDays = 7

type Handler struct {
	service service.Hours
	otel    otel.Otel
}

func New(service service.Hours, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hours", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSchedules)
		routerGroup.Put("/weekly", handler.SetWeeklyDefault)
		routerGroup.Get("/{date}", handler.GetSchedule)
		routerGroup.Put("/{date}", handler.SetSchedule)
	})
}

// GetSchedules lists the stored opening hours over a date range.
// @Summary List opening hours
// @Description Retrieve the stored opening hours between two dates. Defaults to the coming week.
// @Tags Hours
// @Accept json
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[[]dto.OpeningHoursResponse] "Opening hours"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hours [get]
func (handler *Handler) GetSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSchedules")
	defer scope.End()

	from := timezone.Now()
	to := from.AddDate(0, 0, defaultRangeDays)

	var err error

	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err = timezone.Parse(constant.CalendarDateFormat, raw)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", raw)))

			return
		}
	}

	if raw := r.URL.Query().Get("to"); raw != "" {
		to, err = timezone.Parse(constant.CalendarDateFormat, raw)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", raw)))

			return
		}
	}

	schedules, err := handler.service.ListRange(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list opening hours")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Opening hours retrieved successfully")

	response.WithJSON(w, http.StatusOK, schedules)
}

// GetSchedule resolves the effective schedule of one date.
// @Summary Get the schedule of a date
// @Description Resolve the effective schedule of a date, falling back to the weekly pattern or the default hours when no record exists.
// @Tags Hours
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.DayScheduleResponse] "Resolved schedule"
// @Failure 400 {object} response.Error
// @Router /v1/hours/{date} [get]
func (handler *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSchedule")
	defer scope.End()

	raw := chi.URLParam(r, constant.RequestParamDate)

	date, err := timezone.Parse(constant.CalendarDateFormat, raw)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", raw)))

		return
	}

	resolution := handler.service.Resolve(ctx, date)

	res := dto.DayScheduleResponse{}
	res.FromResolution(raw, resolution)

	scope.AddEvent("Schedule resolved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// SetSchedule sets custom opening hours for one date.
// @Summary Set the schedule of a date
// @Description Store custom opening hours for a date. The date is marked custom and survives weekly pattern changes.
// @Tags Hours
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param request body dto.SetDateRequest true "Set Date Request"
// @Success 200 {object} response.Message "Schedule updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hours/{date} [put]
// @Security ApiKeyAuth
func (handler *Handler) SetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetSchedule")
	defer scope.End()

	raw := chi.URLParam(r, constant.RequestParamDate)

	date, err := timezone.Parse(constant.CalendarDateFormat, raw)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", raw)))

		return
	}

	req := dto.SetDateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetDate(ctx, date, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set schedule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Schedule updated successfully")

	response.WithMessage(w, http.StatusOK, "Schedule updated successfully")
}

// SetWeeklyDefault sets the recurring schedule of one weekday.
// @Summary Set the weekly default of a weekday
// @Description Store the recurring schedule of a weekday and regenerate the non-custom dates derived from it.
// @Tags Hours
// @Accept json
// @Produce json
// @Param request body dto.SetWeeklyDefaultRequest true "Set Weekly Default Request"
// @Success 200 {object} response.Message "Weekly default updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hours/weekly [put]
// @Security ApiKeyAuth
func (handler *Handler) SetWeeklyDefault(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetWeeklyDefault")
	defer scope.End()

	req := dto.SetWeeklyDefaultRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetWeeklyDefault(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set weekly default")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Weekly default updated successfully")

	response.WithMessage(w, http.StatusOK, "Weekly default updated successfully")
}
