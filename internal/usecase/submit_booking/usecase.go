package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/WGS-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/WGS-BookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/WGS-BookingService/internal/infra/storage/room"
	settingsRepo "github.com/m04kA/WGS-BookingService/internal/infra/storage/settings"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	settingsRepo SettingsRepository
	linkBuilder  NotifyLinkBuilder
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	settingsRepo SettingsRepository,
	linkBuilder NotifyLinkBuilder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		settingsRepo: settingsRepo,
		linkBuilder:  linkBuilder,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка доступности и вставка выполняются атомарно, а уникальный индекс
// в bookings страхует от гонки на уровне БД
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: room=%d, tanggal=%s, jam_mulai=%s",
		req.RoomID, req.Tanggal.Format(domain.DateFormat), req.JamMulai)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем дату аренды
	if err := validateDate(req.Tanggal, now); err != nil {
		uc.logger.Warn("SubmitBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем комнату (название нужно для уведомления администратора)
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("SubmitBooking: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("SubmitBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем настройки студии
		settings, err := uc.settingsRepo.Get(txCtx)
		if err != nil {
			if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
				uc.logger.Error("SubmitBooking: failed to get settings: %v", err)
				return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
			}
			settings = domain.DefaultSettings()
			uc.logger.Info("SubmitBooking: settings row missing, using defaults")
		}

		// 5.2. Определяем длительность: из запроса или из настроек
		durasi := settings.DurasiSewa
		if req.Durasi != nil {
			durasi = *req.Durasi
		}

		// 5.3. Проверяем часы работы и что начало не в прошлом
		if err := validateWithinWorkingHours(req.JamMulai, durasi, settings, req.Tanggal, now); err != nil {
			uc.logger.Warn("SubmitBooking: working hours validation failed: %v", err)
			return err
		}

		// 5.4. Получаем активные бронирования комнаты с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetActiveByRoomAndDate(txCtx, req.RoomID, req.Tanggal)
		if err != nil {
			uc.logger.Error("SubmitBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.5. Проверяем пересечение с существующими бронированиями
		existing := make([]domain.Interval, 0, len(bookings))
		for _, b := range bookings {
			existing = append(existing, b.Interval())
		}

		candidate := domain.Interval{JamMulai: req.JamMulai.Hour(), DurasiSewa: durasi}
		if domain.IsConflicting(candidate, existing) {
			uc.logger.Warn("SubmitBooking: slot %s (%dh) conflicts with existing booking", req.JamMulai, durasi)
			return ErrSlotNotAvailable
		}

		// 5.6. Создаем бронирование в статусе pending
		booking := &domain.Booking{
			RoomID:     req.RoomID,
			Nama:       req.Nama,
			Whatsapp:   req.Whatsapp,
			Tanggal:    req.Tanggal,
			JamMulai:   req.JamMulai,
			DurasiSewa: durasi,
			Status:     domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Уникальный индекс сработал - слот заняли между проверкой и вставкой
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("SubmitBooking: slot %s taken concurrently", req.JamMulai)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("SubmitBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SubmitBooking: successfully created booking id=%d", result.ID)

	// 6. Формируем ссылку для уведомления администратора
	notifyLink := uc.linkBuilder.NewBookingLink(
		room.Name,
		result.Nama,
		result.Tanggal.Format(domain.DateFormat),
		result.JamRange(),
	)

	return &Response{
		ID:         result.ID,
		RoomID:     result.RoomID,
		RoomName:   room.Name,
		Nama:       result.Nama,
		Whatsapp:   result.Whatsapp,
		Tanggal:    result.Tanggal,
		Jam:        result.JamRange(),
		DurasiSewa: result.DurasiSewa,
		Status:     string(result.Status),
		NotifyLink: notifyLink,
		CreatedAt:  result.CreatedAt,
	}, nil
}
