package get_available_starts

import (
	"context"

	getAvailableStarts "github.com/m04kA/WGS-BookingService/internal/usecase/get_available_starts"
)

type GetAvailableStartsUseCase interface {
	Execute(ctx context.Context, req *getAvailableStarts.Request) (*getAvailableStarts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
