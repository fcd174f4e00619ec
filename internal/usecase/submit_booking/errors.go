package submit_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrInvalidDate возвращается при дате аренды в прошлом
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrOutsideWorkingHours возвращается, когда интервал аренды выходит
	// за часы работы студии
	ErrOutsideWorkingHours = errors.New("booking is outside working hours")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с активным
	// бронированием или его успел занять другой клиент
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
