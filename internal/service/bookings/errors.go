package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrArchiveFailed возвращается, когда не удалось сохранить запись
	// в архив перед удалением бронирования
	ErrArchiveFailed = errors.New("failed to archive booking")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
