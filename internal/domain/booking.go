package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/WGS-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusPending бронирование создано клиентом, ждёт подтверждения администратором
	StatusPending BookingStatus = "pending"
	// StatusBooked администратор подтвердил оплату, слот заблокирован
	StatusBooked BookingStatus = "booked"
)

// DisplayStatusUsed производный статус для отображения: подтверждённое
// бронирование, время которого уже прошло. Никогда не хранится в БД.
const DisplayStatusUsed = "used"

// Booking represents a studio rehearsal booking
type Booking struct {
	ID         int64
	RoomID     int64
	Nama       string
	Whatsapp   string
	Tanggal    time.Time        // календарная дата без времени
	JamMulai   types.TimeString // час начала, всегда "HH:00"
	DurasiSewa int              // длительность в целых часах
	Status     BookingStatus

	CreatedAt time.Time
}

// JamSelesai возвращает час окончания (может быть 24 для слотов до полуночи)
func (b *Booking) JamSelesai() int {
	return b.JamMulai.Hour() + b.DurasiSewa
}

// JamRange возвращает диапазон в формате хранения: "16:00 - 18:00".
// Час 24 записывается как "24:00" - так исторически хранит исходная схема.
func (b *Booking) JamRange() string {
	return fmt.Sprintf("%s - %02d:00", b.JamMulai, b.JamSelesai())
}

// Interval возвращает интервал бронирования для проверки пересечений
func (b *Booking) Interval() Interval {
	return Interval{JamMulai: b.JamMulai.Hour(), DurasiSewa: b.DurasiSewa}
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusBooked
}

// CanBeConfirmed returns true if the booking can transition to booked
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// IsFinished возвращает true, когда время бронирования уже прошло
func (b *Booking) IsFinished(now time.Time) bool {
	end := time.Date(b.Tanggal.Year(), b.Tanggal.Month(), b.Tanggal.Day(), 0, 0, 0, 0, now.Location()).
		Add(time.Duration(b.JamSelesai()) * time.Hour)
	return !now.Before(end)
}

// DisplayStatus возвращает статус для отображения в админ-панели.
// Подтверждённое бронирование с прошедшим временем показывается как "used" -
// это вычисляемое представление, а не отдельное хранимое состояние.
func (b *Booking) DisplayStatus(now time.Time) string {
	if b.Status == StatusBooked && b.IsFinished(now) {
		return DisplayStatusUsed
	}
	return string(b.Status)
}
