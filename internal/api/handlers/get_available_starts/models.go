package get_available_starts

import (
	"time"

	"github.com/m04kA/WGS-BookingService/internal/domain"
	getAvailableStarts "github.com/m04kA/WGS-BookingService/internal/usecase/get_available_starts"
)

// AvailableStartsResponse HTTP response model
type AvailableStartsResponse struct {
	RoomID  int64    `json:"roomId"`
	Tanggal string   `json:"tanggal"`
	Durasi  int      `json:"durasi"`
	Starts  []string `json:"starts"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableStarts.Response) *AvailableStartsResponse {
	starts := make([]string, len(resp.Starts))
	for i, start := range resp.Starts {
		starts[i] = start.String()
	}

	return &AvailableStartsResponse{
		RoomID:  resp.RoomID,
		Tanggal: resp.Tanggal.Format(domain.DateFormat),
		Durasi:  resp.Durasi,
		Starts:  starts,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(roomID int64, tanggalStr string, durasi *int) (*getAvailableStarts.Request, error) {
	tanggal, err := time.Parse(domain.DateFormat, tanggalStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableStarts.Request{
		RoomID:  roomID,
		Tanggal: tanggal,
		Durasi:  durasi,
	}, nil
}
