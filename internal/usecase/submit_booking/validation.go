package submit_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/WGS-BookingService/internal/domain"
	"github.com/m04kA/WGS-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	nama := strings.TrimSpace(req.Nama)
	if nama == "" {
		return fmt.Errorf("%w: nama is required", ErrInvalidInput)
	}
	if len(nama) > domain.MaxNamaLength {
		return fmt.Errorf("%w: nama must be at most %d characters", ErrInvalidInput, domain.MaxNamaLength)
	}

	if err := validateWhatsapp(req.Whatsapp); err != nil {
		return err
	}

	// Проверяем, что дата не является нулевой
	if req.Tanggal.IsZero() {
		return fmt.Errorf("%w: tanggal is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.JamMulai.IsZero() {
		return fmt.Errorf("%w: jamMulai is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.JamMulai.Validate(); err != nil {
		return fmt.Errorf("%w: invalid jamMulai format: %v", ErrInvalidInput, err)
	}

	// Аренда начинается только с начала часа
	if req.JamMulai.Minute() != 0 {
		return fmt.Errorf("%w: jamMulai must be on the hour", ErrInvalidInput)
	}

	if req.Durasi != nil && !domain.IsSupportedDuration(*req.Durasi) {
		return fmt.Errorf("%w: durasi must be one of %v hours", ErrInvalidInput, domain.SupportedDurations)
	}

	return nil
}

// validateWhatsapp проверяет номер WhatsApp: цифры с опциональным ведущим плюсом
func validateWhatsapp(whatsapp string) error {
	whatsapp = strings.TrimSpace(whatsapp)
	if whatsapp == "" {
		return fmt.Errorf("%w: whatsapp is required", ErrInvalidInput)
	}
	if len(whatsapp) > domain.MaxWhatsappLength {
		return fmt.Errorf("%w: whatsapp must be at most %d characters", ErrInvalidInput, domain.MaxWhatsappLength)
	}

	digits := strings.TrimPrefix(whatsapp, "+")
	if digits == "" {
		return fmt.Errorf("%w: whatsapp must contain digits", ErrInvalidInput)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: whatsapp must contain only digits", ErrInvalidInput)
		}
	}

	return nil
}

// validateDate проверяет, что дата аренды не в прошлом
func validateDate(tanggal time.Time, now time.Time) error {
	if domain.IsDateInPast(tanggal, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateWithinWorkingHours проверяет, что интервал [jamMulai, jamMulai+durasi]
// укладывается в часы работы студии, а для сегодняшней даты начало еще не прошло
func validateWithinWorkingHours(
	jamMulai types.TimeString,
	durasi int,
	settings *domain.StudioSettings,
	tanggal time.Time,
	now time.Time,
) error {
	startHour := jamMulai.Hour()

	if startHour < settings.OpenHour() || startHour+durasi > settings.CloseHour() {
		return fmt.Errorf("%w: %s with %d hours does not fit into %s - %s",
			ErrOutsideWorkingHours, jamMulai, durasi, settings.JamBuka, settings.JamTutup)
	}

	// Для сегодняшней даты начало должно быть строго в будущем
	if isSameDay(tanggal, now) {
		start := time.Date(tanggal.Year(), tanggal.Month(), tanggal.Day(),
			startHour, 0, 0, 0, now.Location())
		if !start.After(now) {
			return fmt.Errorf("%w: start time %s has already passed", ErrInvalidDate, jamMulai)
		}
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
