package list_cancelled

import (
	"context"

	"github.com/m04kA/WGS-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	ListCancelled(ctx context.Context) (*models.CancelledBookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
