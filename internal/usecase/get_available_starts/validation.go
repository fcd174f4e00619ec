package get_available_starts

import (
	"fmt"

	"github.com/m04kA/WGS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Tanggal.IsZero() {
		return fmt.Errorf("%w: tanggal is required", ErrInvalidInput)
	}

	if req.Durasi != nil && !domain.IsSupportedDuration(*req.Durasi) {
		return fmt.Errorf("%w: durasi must be one of %v hours", ErrInvalidInput, domain.SupportedDurations)
	}

	return nil
}
