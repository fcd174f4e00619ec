package get_available_starts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/WGS-BookingService/internal/api/handlers"
	getAvailableStarts "github.com/m04kA/WGS-BookingService/internal/usecase/get_available_starts"
)

const (
	msgInvalidRoomID  = "некорректный ID комнаты"
	msgMissingTanggal = "дата обязательна"
	msgInvalidTanggal = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDurasi  = "некорректная длительность аренды"
	msgRoomNotFound   = "комната не найдена"
)

type Handler struct {
	useCase GetAvailableStartsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableStartsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/available-starts
// Query params: tanggal (required, YYYY-MM-DD), durasi (optional, hours)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomIDStr := vars["roomId"]
	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/available-starts - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	tanggalStr := r.URL.Query().Get("tanggal")
	if tanggalStr == "" {
		h.logger.Warn("GET /rooms/{id}/available-starts - Missing tanggal")
		handlers.RespondBadRequest(w, msgMissingTanggal)
		return
	}

	var durasi *int
	if durasiStr := r.URL.Query().Get("durasi"); durasiStr != "" {
		parsed, err := strconv.Atoi(durasiStr)
		if err != nil {
			h.logger.Warn("GET /rooms/{id}/available-starts - Invalid durasi: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDurasi)
			return
		}
		durasi = &parsed
	}

	useCaseReq, err := ToUseCaseRequest(roomID, tanggalStr, durasi)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/available-starts - Invalid tanggal format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTanggal)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableStarts.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/available-starts - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getAvailableStarts.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/available-starts - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidDurasi)

		default:
			h.logger.Error("GET /rooms/{id}/available-starts - Failed to get starts: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/available-starts - Starts retrieved successfully: room_id=%d, tanggal=%s, count=%d",
		roomID, tanggalStr, len(result.Starts))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
