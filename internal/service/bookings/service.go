package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/WGS-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/WGS-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/WGS-BookingService/internal/service/bookings/models"
)

// Service сервис администрирования бронирований
type Service struct {
	bookingRepo  BookingRepository
	archiveRepo  ArchiveRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	archiveRepo ArchiveRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		archiveRepo:  archiveRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List получает все бронирования с опциональным поиском по имени,
// номеру WhatsApp или дате
func (s *Service) List(ctx context.Context, search string) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, search=%q", search)

	bookings, err := s.bookingRepo.List(ctx, search)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings, s.timeProvider.Now()), nil
}

// Confirm подтверждает бронирование (pending -> booked)
// Повторное подтверждение уже подтвержденного бронирования не является ошибкой
func (s *Service) Confirm(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Confirm: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	if booking.CanBeConfirmed() {
		if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusBooked); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Confirm: booking id=%d not found during update", id)
				return nil, ErrBookingNotFound
			}
			s.logger.Error("Confirm: repository error for booking id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
		}
		booking.Status = domain.StatusBooked
	} else {
		s.logger.Info("Confirm: booking id=%d already has status=%s", id, booking.Status)
	}

	s.logger.Info("Confirm: booking id=%d confirmed", id)
	return models.FromDomainBooking(booking, s.timeProvider.Now()), nil
}

// Cancel отменяет бронирование: сначала копирует его в архив, затем удаляет.
// Порядок операций сознательно не обёрнут в одну транзакцию - при сбое
// удаления архивная запись уже сохранена и история не теряется.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// 1. Архивируем
	archived := &domain.CancelledBooking{
		RoomID:     booking.RoomID,
		Nama:       booking.Nama,
		Whatsapp:   booking.Whatsapp,
		Tanggal:    booking.Tanggal,
		Jam:        booking.JamRange(),
		DurasiSewa: booking.DurasiSewa,
		CreatedAt:  booking.CreatedAt,
	}

	if _, err := s.archiveRepo.Create(ctx, archived); err != nil {
		s.logger.Error("Cancel: failed to archive booking id=%d: %v", id, err)
		return fmt.Errorf("%w: booking id=%d: %v", ErrArchiveFailed, id, err)
	}

	// 2. Удаляем исходную запись
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Запись уже удалили параллельно - архив при этом сохранен
			s.logger.Warn("Cancel: booking id=%d already deleted", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: failed to delete booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - delete error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return nil
}

// ListCancelled получает архив отменённых бронирований
func (s *Service) ListCancelled(ctx context.Context) (*models.CancelledBookingListResponse, error) {
	s.logger.Info("ListCancelled: fetching cancelled bookings")

	cancelled, err := s.archiveRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListCancelled: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCancelled - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCancelled: successfully fetched %d records", len(cancelled))
	return models.FromDomainCancelledList(cancelled), nil
}
