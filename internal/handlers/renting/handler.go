package renting

import (
	"net/http"

	"ehotel/infras/otel"
	"ehotel/internal/domains/renting/model/dto"
	rentingService "ehotel/internal/domains/renting/service"
	transactionDto "ehotel/internal/domains/transaction/model/dto"
	transactionService "ehotel/internal/domains/transaction/service"
	"ehotel/shared"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/failure"
	"ehotel/shared/validator"
	"ehotel/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service     rentingService.Renting
	transaction transactionService.Transaction
	otel        otel.Otel
}

func New(service rentingService.Renting, transaction transactionService.Transaction, otel otel.Otel) Handler {
	return Handler{
		service:     service,
		transaction: transaction,
		otel:        otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rentings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRenting)
		routerGroup.Get("/", handler.GetRentings)
		routerGroup.Get("/{id}", handler.GetRentingByID)
		routerGroup.Post("/{id}/check-out", handler.CheckOut)
		routerGroup.Post("/{id}/payment", handler.Pay)
		routerGroup.Get("/{id}/payments", handler.GetPayments)
	})
}

// CreateRenting opens a walk-in renting handled by the authenticated employee.
// @Summary Create a new renting
// @Description Rent a room to a walk-in customer starting immediately. The renting is rejected when the room is occupied or booked for an overlapping stay.
// @Tags Renting
// @Accept json
// @Produce json
// @Param request body dto.CreateRentingRequest true "Create Renting Request"
// @Success 201 {object} response.Data[dto.CreateRentingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentings [post]
// @Security BearerAuth
func (handler *Handler) CreateRenting(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRenting")
	defer scope.End()

	employeeID, ok := ctx.Value(constant.ContextKeyUserID).(int64)
	if !ok || employeeID == 0 {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	req := dto.CreateRentingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	renting, err := handler.service.Create(ctx, employeeID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create renting")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Renting created successfully")

	response.WithJSON(w, http.StatusCreated, renting)
}

// GetRentings retrieves all rentings with pagination.
// @Summary Get all rentings
// @Description Retrieve all rentings with pagination.
// @Tags Renting
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetRentingsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/rentings [get]
// @Security BearerAuth
func (handler *Handler) GetRentings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRentings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	rentings, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rentings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rentings retrieved successfully")

	response.WithJSON(w, http.StatusOK, rentings)
}

// GetRentingByID retrieves a renting with its payment state.
// @Summary Get a renting by ID
// @Description Retrieve a renting with its payment state.
// @Tags Renting
// @Produce json
// @Param id path int true "Renting ID"
// @Success 200 {object} response.Data[dto.RentingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRentingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRentingByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid renting ID")

		response.WithError(w, err)

		return
	}

	renting, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get renting by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Renting retrieved successfully")

	response.WithJSON(w, http.StatusOK, renting)
}

// CheckOut closes a renting once its balance is settled.
// @Summary Check out a renting
// @Description Close a renting. The renting must be paid in full before it can be closed.
// @Tags Renting
// @Produce json
// @Param id path int true "Renting ID"
// @Success 200 {object} response.Data[dto.RentingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentings/{id}/check-out [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid renting ID")

		response.WithError(w, err)

		return
	}

	renting, err := handler.service.CheckOut(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out renting")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Renting checked out successfully")

	response.WithJSON(w, http.StatusOK, renting)
}

// Pay records a payment against a renting.
// @Summary Record a payment
// @Description Record a payment against a renting. Payments above the remaining balance are rejected.
// @Tags Renting
// @Accept json
// @Produce json
// @Param id path int true "Renting ID"
// @Param request body transactionDto.PayRequest true "Pay Request"
// @Success 201 {object} response.Data[transactionDto.TransactionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentings/{id}/payment [post]
// @Security BearerAuth
func (handler *Handler) Pay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Pay")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid renting ID")

		response.WithError(w, err)

		return
	}

	req := transactionDto.PayRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	transaction, err := handler.transaction.Pay(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment recorded successfully")

	response.WithJSON(w, http.StatusCreated, transaction)
}

// GetPayments lists the payment ledger of a renting.
// @Summary Get payments of a renting
// @Description List the payments recorded against a renting together with the running totals.
// @Tags Renting
// @Produce json
// @Param id path int true "Renting ID"
// @Success 200 {object} response.Data[transactionDto.GetLedgerResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentings/{id}/payments [get]
// @Security BearerAuth
func (handler *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayments")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid renting ID")

		response.WithError(w, err)

		return
	}

	ledger, err := handler.transaction.ListByRenting(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payments retrieved successfully")

	response.WithJSON(w, http.StatusOK, ledger)
}
