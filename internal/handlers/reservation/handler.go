package reservation

import (
	"net/http"

	"tavolo/infras/otel"
	"tavolo/internal/domains/reservation/model"
	"tavolo/internal/domains/reservation/model/dto"
	"tavolo/internal/domains/reservation/service"
	"tavolo/shared/constant"
	gDto "tavolo/shared/dto"
	"tavolo/shared/failure"
	"tavolo/shared/validator"
	"tavolo/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	booking      service.Booking
	availability service.Availability
	otel         otel.Otel
}

func New(booking service.Booking, availability service.Availability, otel otel.Otel) Handler {
	return Handler{
		booking:      booking,
		availability: availability,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Post("/check", handler.CheckAvailability)
		routerGroup.Get("/next", handler.FindNextAvailable)
	})

	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Patch("/{id}", handler.ModifyReservation)
		routerGroup.Delete("/{id}", handler.CancelReservation)
	})
}

// CheckAvailability scans one date for the party size.
// @Summary Check the availability of a date
// @Description List every candidate slot of a date with its feasibility for the party size.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CheckAvailabilityRequest true "Check Availability Request"
// @Success 200 {object} response.Data[dto.DayAvailabilityResponse] "Slot-by-slot availability"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/check [post]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	req := dto.CheckAvailabilityRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	availability, err := handler.availability.CheckAvailability(ctx, req.Date, req.PartySize)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability checked successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// FindNextAvailable suggests the nearest feasible slot.
// @Summary Find the next available slot
// @Description Walk forward from the requested date and time and return the nearest feasible slot within the search horizon.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Time (HH:MM)"
// @Param party_size query int true "Party size"
// @Success 200 {object} response.Data[dto.SlotSuggestion] "Nearest feasible slot, null when the horizon is booked out"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/next [get]
func (handler *Handler) FindNextAvailable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FindNextAvailable")
	defer scope.End()

	query := dto.NextAvailableQuery{
		Date:      r.URL.Query().Get("date"),
		Time:      r.URL.Query().Get("time"),
		PartySize: r.URL.Query().Get("party_size"),
	}

	date, clock, partySize, err := query.Parse()
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse availability query")

		response.WithError(w, err)

		return
	}

	suggestion, err := handler.availability.FindNextAvailable(ctx, date, clock, partySize)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find next available slot")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Next available slot searched successfully")

	response.WithJSON(w, http.StatusOK, suggestion)
}

// CreateReservation books a slot or answers with the nearest alternative.
// @Summary Create a reservation
// @Description Book the requested slot. When it is not feasible the response carries the nearest feasible alternative instead of a booking.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} response.Data[dto.CreateReservationResponse] "Booking confirmation or alternative"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [post]
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.booking.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
		scope.AddEvent("Reservation created successfully")
	} else {
		scope.AddEvent("Reservation not available, alternative suggested")
	}

	response.WithJSON(w, status, res)
}

// GetReservations retrieves reservations based on query parameters.
// @Summary Get all reservations
// @Description Retrieve reservations with optional filtering and pagination.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param phone query string false "Filter by phone"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Param status query string false "Filter by status (confirmed, cancelled, completed, no_show)"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [get]
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	phone := r.URL.Query().Get(model.FieldPhone)
	date := r.URL.Query().Get(model.FieldDate)
	status := r.URL.Query().Get(model.FieldStatus)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if phone != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPhone,
			Operator: gDto.FilterOperatorEq,
			Value:    phone,
			Table:    model.TableName,
		})
	}

	if date != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorEq,
			Value:    date,
			Table:    model.TableName,
		})
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	reservations, err := handler.booking.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetReservationByID retrieves a reservation by its ID.
// @Summary Get a reservation by ID
// @Description Retrieve a reservation by its unique identifier.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [get]
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	reservation, err := handler.booking.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservation)
}

// ModifyReservation rebooks a reservation's group on new details.
// @Summary Modify a reservation
// @Description Change the date, time, party size or notes of a reservation. The whole booking group is rebooked as a unit.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param phone query string true "Phone the reservation was booked under"
// @Param request body dto.ModifyReservationRequest true "Modify Reservation Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [patch]
func (handler *Handler) ModifyReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ModifyReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	phone := r.URL.Query().Get(model.FieldPhone)
	if phone == "" {
		response.WithError(w, failure.BadRequestFromString("phone query parameter is required"))

		return
	}

	req := dto.ModifyReservationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.booking.Modify(ctx, id, phone, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to modify reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation modified successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// CancelReservation cancels a reservation's whole booking group.
// @Summary Cancel a reservation
// @Description Cancel every table of the reservation's booking group.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param phone query string true "Phone the reservation was booked under"
// @Success 200 {object} response.Message "Reservation cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [delete]
func (handler *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	phone := r.URL.Query().Get(model.FieldPhone)
	if phone == "" {
		response.WithError(w, failure.BadRequestFromString("phone query parameter is required"))

		return
	}

	if err := handler.booking.Cancel(ctx, id, phone); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation cancelled successfully")

	response.WithMessage(w, http.StatusOK, "Reservation cancelled successfully")
}
