package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WGS-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/WGS-BookingService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	updatedStatus map[int64]domain.BookingStatus
	deleted       []int64
	deleteErr     error
	listErr       error
	lastSearch    string
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{
		bookings:      make(map[int64]*domain.Booking),
		updatedStatus: make(map[int64]domain.BookingStatus),
	}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) List(_ context.Context, search string) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.lastSearch = search
	result := make([]*domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updatedStatus[id] = status
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.bookings, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeArchiveRepo struct {
	archived  []*domain.CancelledBooking
	createErr error
}

func (f *fakeArchiveRepo) Create(_ context.Context, cancelled *domain.CancelledBooking) (*domain.CancelledBooking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	cancelled.ID = int64(len(f.archived) + 1)
	cancelled.CancelledAt = time.Date(2026, 9, 9, 15, 0, 0, 0, time.UTC)
	f.archived = append(f.archived, cancelled)
	return cancelled, nil
}

func (f *fakeArchiveRepo) List(_ context.Context) ([]*domain.CancelledBooking, error) {
	return f.archived, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		RoomID:     1,
		Nama:       "Budi",
		Whatsapp:   "6281234567890",
		Tanggal:    time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		JamMulai:   "16:00",
		DurasiSewa: 2,
		Status:     domain.StatusPending,
		CreatedAt:  time.Date(2026, 9, 9, 12, 0, 0, 0, time.UTC),
	}
}

func newTestService(repo *fakeBookingRepo, archive *fakeArchiveRepo, now time.Time) *Service {
	svc := NewService(repo, archive, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

func TestConfirm_PendingToBooked(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(1))
	svc := newTestService(repo, &fakeArchiveRepo{}, time.Date(2026, 9, 9, 12, 0, 0, 0, time.UTC))

	resp, err := svc.Confirm(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "booked", resp.Status)
	assert.Equal(t, domain.StatusBooked, repo.updatedStatus[1])
}

func TestConfirm_AlreadyBookedIsIdempotent(t *testing.T) {
	booking := pendingBooking(1)
	booking.Status = domain.StatusBooked

	repo := newFakeBookingRepo(booking)
	svc := newTestService(repo, &fakeArchiveRepo{}, time.Date(2026, 9, 9, 12, 0, 0, 0, time.UTC))

	resp, err := svc.Confirm(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "booked", resp.Status)
	// Повторный Confirm не пишет в хранилище
	assert.Empty(t, repo.updatedStatus)
}

func TestConfirm_NotFound(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), &fakeArchiveRepo{}, time.Now())

	_, err := svc.Confirm(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_ArchivesThenDeletes(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(1))
	archive := &fakeArchiveRepo{}
	svc := newTestService(repo, archive, time.Now())

	err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, archive.archived, 1)
	assert.Equal(t, "Budi", archive.archived[0].Nama)
	assert.Equal(t, "16:00 - 18:00", archive.archived[0].Jam)
	assert.Equal(t, []int64{1}, repo.deleted)
	assert.Empty(t, repo.bookings)
}

func TestCancel_ArchiveFailureKeepsBooking(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(1))
	archive := &fakeArchiveRepo{createErr: errors.New("disk full")}
	svc := newTestService(repo, archive, time.Now())

	err := svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrArchiveFailed)

	// Бронирование не удалено - удаление идет только после архивации
	assert.Contains(t, repo.bookings, int64(1))
	assert.Empty(t, repo.deleted)
}

func TestCancel_DeleteFailureKeepsArchive(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(1))
	repo.deleteErr = errors.New("connection reset")
	archive := &fakeArchiveRepo{}
	svc := newTestService(repo, archive, time.Now())

	err := svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)

	// Архивная запись сохранена несмотря на сбой удаления
	assert.Len(t, archive.archived, 1)
}

func TestCancel_NotFound(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), &fakeArchiveRepo{}, time.Now())

	err := svc.Cancel(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_DisplayStatusUsed(t *testing.T) {
	booking := pendingBooking(1)
	booking.Status = domain.StatusBooked

	repo := newFakeBookingRepo(booking)
	// Сейчас уже после конца аренды (18:00)
	now := time.Date(2026, 9, 10, 19, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &fakeArchiveRepo{}, now)

	resp, err := svc.List(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, domain.DisplayStatusUsed, resp.Bookings[0].Status)
}

func TestList_PassesSearchToRepo(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, &fakeArchiveRepo{}, time.Now())

	_, err := svc.List(context.Background(), "budi")
	require.NoError(t, err)
	assert.Equal(t, "budi", repo.lastSearch)
}

func TestListCancelled(t *testing.T) {
	archive := &fakeArchiveRepo{}
	svc := newTestService(newFakeBookingRepo(pendingBooking(1)), archive, time.Now())

	require.NoError(t, svc.Cancel(context.Background(), 1))

	resp, err := svc.ListCancelled(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Cancelled, 1)
	assert.Equal(t, "Budi", resp.Cancelled[0].Nama)
}
