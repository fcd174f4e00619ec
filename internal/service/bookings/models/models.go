package models

import (
	"time"

	"github.com/m04kA/WGS-BookingService/internal/domain"
)

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64     `json:"id"`
	RoomID     int64     `json:"roomId"`
	Nama       string    `json:"nama"`
	Whatsapp   string    `json:"whatsapp"`
	Tanggal    string    `json:"tanggal"` // "2026-09-10"
	Jam        string    `json:"jam"`     // "16:00 - 18:00"
	DurasiSewa int       `json:"durasiSewa"`
	Status     string    `json:"status"` // pending, booked или used
	CreatedAt  time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// CancelledBookingResponse ответ с данными отменённого бронирования
type CancelledBookingResponse struct {
	ID          int64     `json:"id"`
	RoomID      int64     `json:"roomId"`
	Nama        string    `json:"nama"`
	Whatsapp    string    `json:"whatsapp"`
	Tanggal     string    `json:"tanggal"`
	Jam         string    `json:"jam"`
	DurasiSewa  int       `json:"durasiSewa"`
	CreatedAt   time.Time `json:"createdAt"`
	CancelledAt time.Time `json:"cancelledAt"`
}

// CancelledBookingListResponse ответ со списком отменённых бронирований
type CancelledBookingListResponse struct {
	Cancelled []CancelledBookingResponse `json:"cancelled"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO.
// Статус отображается с учетом текущего времени: завершенная подтвержденная
// аренда показывается как used.
func FromDomainBooking(b *domain.Booking, now time.Time) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:         b.ID,
		RoomID:     b.RoomID,
		Nama:       b.Nama,
		Whatsapp:   b.Whatsapp,
		Tanggal:    b.Tanggal.Format(domain.DateFormat),
		Jam:        b.JamRange(),
		DurasiSewa: b.DurasiSewa,
		Status:     b.DisplayStatus(now),
		CreatedAt:  b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, now time.Time) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, now); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainCancelled конвертирует архивную запись в DTO
func FromDomainCancelled(c *domain.CancelledBooking) *CancelledBookingResponse {
	if c == nil {
		return nil
	}

	return &CancelledBookingResponse{
		ID:          c.ID,
		RoomID:      c.RoomID,
		Nama:        c.Nama,
		Whatsapp:    c.Whatsapp,
		Tanggal:     c.Tanggal.Format(domain.DateFormat),
		Jam:         c.Jam,
		DurasiSewa:  c.DurasiSewa,
		CreatedAt:   c.CreatedAt,
		CancelledAt: c.CancelledAt,
	}
}

// FromDomainCancelledList конвертирует список архивных записей в DTO
func FromDomainCancelledList(cancelled []*domain.CancelledBooking) *CancelledBookingListResponse {
	resp := &CancelledBookingListResponse{
		Cancelled: make([]CancelledBookingResponse, 0, len(cancelled)),
	}

	for _, item := range cancelled {
		if itemResp := FromDomainCancelled(item); itemResp != nil {
			resp.Cancelled = append(resp.Cancelled, *itemResp)
		}
	}

	return resp
}
