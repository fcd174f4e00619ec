package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/WGS-BookingService/pkg/types"
)

var (
	// ErrInvalidSettings возвращается при некорректных настройках студии
	ErrInvalidSettings = errors.New("domain: invalid studio settings")
)

// StudioSettings единственная строка настроек студии (id = 1).
// Читается каждым расчётом доступности, изменяется только администратором.
type StudioSettings struct {
	ID         int64
	JamBuka    types.TimeString // час открытия, "HH:MM"
	JamTutup   types.TimeString // час закрытия; "00:00" означает конец дня (час 24)
	DurasiSewa int              // минимальная длительность аренды по умолчанию

	UpdatedAt time.Time
}

// DefaultSettings настройки, используемые пока администратор не сохранил свои
func DefaultSettings() *StudioSettings {
	return &StudioSettings{
		ID:         1,
		JamBuka:    types.TimeString(DefaultJamBuka),
		JamTutup:   types.TimeString(DefaultJamTutup),
		DurasiSewa: DefaultDurasiSewa,
	}
}

// OpenHour возвращает час открытия как целое
func (s *StudioSettings) OpenHour() int {
	return s.JamBuka.Hour()
}

// CloseHour возвращает час закрытия; полночь интерпретируется как 24
func (s *StudioSettings) CloseHour() int {
	h := s.JamTutup.Hour()
	if h == 0 {
		return 24
	}
	return h
}

// Validate проверяет настройки перед сохранением
func (s *StudioSettings) Validate() error {
	if err := s.JamBuka.Validate(); err != nil {
		return fmt.Errorf("%w: jam_buka: %v", ErrInvalidSettings, err)
	}
	if err := s.JamTutup.Validate(); err != nil {
		return fmt.Errorf("%w: jam_tutup: %v", ErrInvalidSettings, err)
	}
	if !IsSupportedDuration(s.DurasiSewa) {
		return fmt.Errorf("%w: durasi_sewa %d is not supported", ErrInvalidSettings, s.DurasiSewa)
	}
	// Должен оставаться хотя бы один валидный слот минимальной длительности
	if s.OpenHour() > s.CloseHour()-s.DurasiSewa {
		return fmt.Errorf("%w: no slot of %d hours fits between %s and %s",
			ErrInvalidSettings, s.DurasiSewa, s.JamBuka, s.JamTutup)
	}
	return nil
}
