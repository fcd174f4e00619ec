package submit_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/WGS-BookingService/internal/api/handlers"
	submitBooking "github.com/m04kA/WGS-BookingService/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidTanggal      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput        = "некорректные данные бронирования"
	msgRoomNotFound        = "комната не найдена"
	msgInvalidDate         = "дата или время аренды уже прошли"
	msgOutsideWorkingHours = "аренда выходит за часы работы студии"
	msgSlotNotAvailable    = "выбранное время уже занято"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid tanggal format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTanggal)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: room_id=%d, jam_mulai=%s", req.RoomID, req.JamMulai)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, submitBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, submitBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: room_id=%d, tanggal=%s", req.RoomID, req.Tanggal)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, submitBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: room_id=%d, jam_mulai=%s", req.RoomID, req.JamMulai)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: id=%d, room_id=%d, jam=%s",
		result.ID, result.RoomID, result.Jam)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
