package list_cancelled

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

// Handle GET /api/v1/admin/cancelled-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCancelled(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/cancelled-bookings - Failed to list cancelled bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/cancelled-bookings - Cancelled bookings retrieved: count=%d", len(result.Cancelled))
	handlers.RespondJSON(w, http.StatusOK, result)
}
