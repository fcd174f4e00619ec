package submit_booking

import (
	"time"

	"github.com/m04kA/WGS-BookingService/internal/domain"
	submitBooking "github.com/m04kA/WGS-BookingService/internal/usecase/submit_booking"
	"github.com/m04kA/WGS-BookingService/pkg/types"
)

// SubmitBookingRequest HTTP request model
type SubmitBookingRequest struct {
	RoomID   int64  `json:"roomId"`
	Nama     string `json:"nama"`
	Whatsapp string `json:"whatsapp"`
	Tanggal  string `json:"tanggal"`  // "2026-09-10"
	JamMulai string `json:"jamMulai"` // "16:00"
	Durasi   *int   `json:"durasi,omitempty"`
}

// SubmitBookingResponse HTTP response model
type SubmitBookingResponse struct {
	ID         int64     `json:"id"`
	RoomID     int64     `json:"roomId"`
	RoomName   string    `json:"roomName"`
	Nama       string    `json:"nama"`
	Whatsapp   string    `json:"whatsapp"`
	Tanggal    string    `json:"tanggal"`
	Jam        string    `json:"jam"`
	DurasiSewa int       `json:"durasiSewa"`
	Status     string    `json:"status"`
	NotifyLink string    `json:"notifyLink"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *SubmitBookingRequest) ToUseCaseRequest() (*submitBooking.Request, error) {
	tanggal, err := time.Parse(domain.DateFormat, r.Tanggal)
	if err != nil {
		return nil, err
	}

	return &submitBooking.Request{
		RoomID:   r.RoomID,
		Nama:     r.Nama,
		Whatsapp: r.Whatsapp,
		Tanggal:  tanggal,
		JamMulai: types.TimeString(r.JamMulai),
		Durasi:   r.Durasi,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *SubmitBookingResponse {
	return &SubmitBookingResponse{
		ID:         resp.ID,
		RoomID:     resp.RoomID,
		RoomName:   resp.RoomName,
		Nama:       resp.Nama,
		Whatsapp:   resp.Whatsapp,
		Tanggal:    resp.Tanggal.Format(domain.DateFormat),
		Jam:        resp.Jam,
		DurasiSewa: resp.DurasiSewa,
		Status:     resp.Status,
		NotifyLink: resp.NotifyLink,
		CreatedAt:  resp.CreatedAt,
	}
}
