package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/WGS-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/WGS-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/WGS-BookingService/internal/service/settings/models"
)

// Service сервис настроек студии
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get получает настройки студии
// Если строка настроек еще не создана, возвращает дефолтные значения
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching studio settings")

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Info("Get: settings row missing, returning defaults")
			return models.FromDomain(domain.DefaultSettings()), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomain(settings), nil
}

// Update обновляет настройки студии
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings jam_buka=%s, jam_tutup=%s, durasi_sewa=%d",
		req.JamBuka, req.JamTutup, req.DurasiSewa)

	settings := req.ToDomain()
	if err := settings.Validate(); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	updated, err := s.settingsRepo.Upsert(ctx, settings)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings successfully updated")
	return models.FromDomain(updated), nil
}
