package settings

import "errors"

var (
	// ErrInvalidSettings возвращается при некорректных настройках студии
	ErrInvalidSettings = errors.New("invalid studio settings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
