package list_bookings

import (
	"net/http"

	"github.com/m04kA/WGS-BookingService/internal/api/handlers"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Query params: search (optional, фильтр по имени, номеру WhatsApp или дате)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	result, err := h.service.List(r.Context(), search)
	if err != nil {
		h.logger.Error("GET /admin/bookings - Failed to list bookings: search=%q, error=%v", search, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved successfully: search=%q, count=%d",
		search, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
