package room

import (
	"net/http"

	"ehotel/infras/otel"
	"ehotel/internal/domains/room/model/dto"
	"ehotel/internal/domains/room/service"
	"ehotel/shared"
	"ehotel/shared/constant"
	"ehotel/shared/validator"
	"ehotel/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotels/{id}/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRoomsByHotel)
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Patch("/{roomID}", handler.UpdateRoom)
		routerGroup.Delete("/{roomID}", handler.DeleteRoom)
	})

	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/search", handler.SearchRooms)
	})
}

// CreateRoom adds a room to a hotel.
// @Summary Create a new room
// @Description Add a room to a hotel. The room number is assigned by the server.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path int true "Hotel ID"
// @Param request body dto.CreateRoomRequest true "Create Room Request"
// @Success 201 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	hotelID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid hotel ID")

		response.WithError(w, err)

		return
	}

	req := dto.CreateRoomRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.Create(ctx, hotelID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room created successfully")

	response.WithJSON(w, http.StatusCreated, room)
}

// GetRoomsByHotel lists the rooms of a hotel.
// @Summary Get rooms of a hotel
// @Description List the rooms of a hotel.
// @Tags Room
// @Produce json
// @Param id path int true "Hotel ID"
// @Success 200 {object} response.Data[dto.GetRoomsResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/rooms [get]
func (handler *Handler) GetRoomsByHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomsByHotel")
	defer scope.End()

	hotelID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid hotel ID")

		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.GetByHotel(ctx, hotelID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms by hotel")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// UpdateRoom updates the mutable attributes of a room.
// @Summary Update a room
// @Description Update the price, capacity, amenities or damage description of a room.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path int true "Hotel ID"
// @Param roomID path int true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Update Room Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/rooms/{roomID} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	hotelID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid hotel ID")

		response.WithError(w, err)

		return
	}

	roomID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamRoomID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid room ID")

		response.WithError(w, err)

		return
	}

	req := dto.UpdateRoomRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, hotelID, roomID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room updated successfully")

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// DeleteRoom removes a room from a hotel.
// @Summary Delete a room
// @Description Remove a room from a hotel and decrement its room count.
// @Tags Room
// @Produce json
// @Param id path int true "Hotel ID"
// @Param roomID path int true "Room ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/rooms/{roomID} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	hotelID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid hotel ID")

		response.WithError(w, err)

		return
	}

	roomID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamRoomID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid room ID")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, hotelID, roomID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room deleted successfully")

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}

// SearchRooms searches available rooms across hotels.
// @Summary Search rooms
// @Description Search rooms by capacity, price, area, chain, star rating, hotel size and stay dates. Rooms already booked or rented for an overlapping stay are excluded when dates are given.
// @Tags Room
// @Produce json
// @Param capacity query string false "Filter by capacity (single, double, suite)"
// @Param min_price query int false "Minimum nightly price"
// @Param max_price query int false "Maximum nightly price"
// @Param area query string false "Filter by hotel area"
// @Param chain_id query int false "Filter by chain ID"
// @Param star_rating query int false "Filter by star rating"
// @Param min_room_count query int false "Minimum number of rooms in the hotel"
// @Param start_date query string false "Stay start date (YYYY-MM-DD)"
// @Param end_date query string false "Stay end date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.SearchRoomsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/search [get]
func (handler *Handler) SearchRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchRooms")
	defer scope.End()

	query := r.URL.Query()
	req := dto.SearchRoomsRequest{
		Capacity:     query.Get("capacity"),
		MinPrice:     query.Get("min_price"),
		MaxPrice:     query.Get("max_price"),
		Area:         query.Get("area"),
		ChainID:      query.Get("chain_id"),
		StarRating:   query.Get("star_rating"),
		MinRoomCount: query.Get("min_room_count"),
		StartDate:    query.Get("start_date"),
		EndDate:      query.Get("end_date"),
	}

	rooms, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms searched successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}
