package get_available_starts

import (
	"time"

	"github.com/m04kA/WGS-BookingService/pkg/types"
)

// Request модель запроса на получение доступных времен начала
type Request struct {
	RoomID  int64     // ID комнаты студии
	Tanggal time.Time // Дата аренды (без времени)
	Durasi  *int      // Длительность аренды в часах; nil - берем из настроек студии
}

// Response модель ответа со списком доступных времен начала
type Response struct {
	RoomID  int64              // ID комнаты
	Tanggal time.Time          // Дата, на которую запрашивалась доступность
	Durasi  int                // Фактически использованная длительность
	Starts  []types.TimeString // Доступные времена начала (может быть пустым)
}
