package get_available_starts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/WGS-BookingService/internal/domain"
	roomRepo "github.com/m04kA/WGS-BookingService/internal/infra/storage/room"
	settingsRepo "github.com/m04kA/WGS-BookingService/internal/infra/storage/settings"
)

// UseCase use case для получения доступных времен начала аренды
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		settingsRepo: settingsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных времен начала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableStarts: room=%d, tanggal=%s",
		req.RoomID, req.Tanggal.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableStarts: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование комнаты
	if _, err := uc.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetAvailableStarts: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetAvailableStarts: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 4. Получаем настройки студии (часы работы, длительность по умолчанию)
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("GetAvailableStarts: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		// Строки настроек может еще не быть - работаем с дефолтами
		settings = domain.DefaultSettings()
		uc.logger.Info("GetAvailableStarts: settings row missing, using defaults")
	}

	// 5. Определяем длительность: из запроса или из настроек
	durasi := settings.DurasiSewa
	if req.Durasi != nil {
		durasi = *req.Durasi
	}

	// 6. Получаем активные бронирования комнаты на дату
	bookings, err := uc.bookingRepo.GetActiveByRoomAndDate(ctx, req.RoomID, req.Tanggal)
	if err != nil {
		uc.logger.Error("GetAvailableStarts: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	existing := make([]domain.Interval, 0, len(bookings))
	for _, b := range bookings {
		existing = append(existing, b.Interval())
	}

	// 7. Вычисляем доступные времена начала
	starts := domain.ComputeValidStarts(
		settings.OpenHour(),
		settings.CloseHour(),
		durasi,
		req.Tanggal,
		now,
		existing,
	)

	uc.logger.Info("GetAvailableStarts: room=%d, tanggal=%s, durasi=%d, found %d starts",
		req.RoomID, req.Tanggal.Format(domain.DateFormat), durasi, len(starts))

	return &Response{
		RoomID:  req.RoomID,
		Tanggal: req.Tanggal,
		Durasi:  durasi,
		Starts:  starts,
	}, nil
}
