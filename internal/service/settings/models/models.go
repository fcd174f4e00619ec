package models

import (
	"time"

	"github.com/m04kA/WGS-BookingService/internal/domain"
	"github.com/m04kA/WGS-BookingService/pkg/types"
)

// UpdateSettingsRequest запрос на обновление настроек студии
type UpdateSettingsRequest struct {
	JamBuka    string `json:"jamBuka"`    // "10:00"
	JamTutup   string `json:"jamTutup"`   // "00:00" означает полночь
	DurasiSewa int    `json:"durasiSewa"` // длительность аренды по умолчанию, часы
}

// ToDomain конвертирует request в domain модель
func (r *UpdateSettingsRequest) ToDomain() *domain.StudioSettings {
	return &domain.StudioSettings{
		JamBuka:    types.TimeString(r.JamBuka),
		JamTutup:   types.TimeString(r.JamTutup),
		DurasiSewa: r.DurasiSewa,
	}
}

// SettingsResponse ответ с настройками студии
type SettingsResponse struct {
	JamBuka    string    `json:"jamBuka"`
	JamTutup   string    `json:"jamTutup"`
	DurasiSewa int       `json:"durasiSewa"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// FromDomain конвертирует domain модель в DTO
func FromDomain(s *domain.StudioSettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	return &SettingsResponse{
		JamBuka:    s.JamBuka.String(),
		JamTutup:   s.JamTutup.String(),
		DurasiSewa: s.DurasiSewa,
		UpdatedAt:  s.UpdatedAt,
	}
}
