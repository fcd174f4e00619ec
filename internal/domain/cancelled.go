package domain

import "time"

// CancelledBooking архивная запись отменённого бронирования.
// Создаётся ДО удаления активной записи и после этого не изменяется.
type CancelledBooking struct {
	ID         int64
	RoomID     int64
	Nama       string
	Whatsapp   string
	Tanggal    time.Time
	Jam        string // диапазон "HH:00 - HH:00" как хранился в bookings
	DurasiSewa int

	CreatedAt   time.Time // когда было создано исходное бронирование
	CancelledAt time.Time
}
