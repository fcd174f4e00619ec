package submit_booking

import (
	"time"

	"github.com/m04kA/WGS-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	RoomID   int64            // ID комнаты студии
	Nama     string           // Имя клиента
	Whatsapp string           // Номер WhatsApp клиента
	Tanggal  time.Time        // Дата аренды (без времени)
	JamMulai types.TimeString // Время начала, например "16:00"
	Durasi   *int             // Длительность в часах; nil - берем из настроек студии
}

// Response модель ответа на создание бронирования
type Response struct {
	ID         int64     // ID созданного бронирования
	RoomID     int64     // ID комнаты
	RoomName   string    // Название комнаты
	Nama       string    // Имя клиента
	Whatsapp   string    // Номер WhatsApp клиента
	Tanggal    time.Time // Дата аренды
	Jam        string    // Интервал аренды, например "16:00 - 18:00"
	DurasiSewa int       // Длительность в часах
	Status     string    // Статус бронирования (pending)
	NotifyLink string    // Ссылка wa.me для уведомления администратора
	CreatedAt  time.Time // Время создания записи
}
