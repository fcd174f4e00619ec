package submit_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WGS-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/WGS-BookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/WGS-BookingService/internal/infra/storage/room"
	"github.com/m04kA/WGS-BookingService/internal/integrations/whatsapp"
	"github.com/m04kA/WGS-BookingService/pkg/ptr"
	"github.com/m04kA/WGS-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	createErr error
	created   *domain.Booking
	nextID    int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	booking.ID = f.nextID
	booking.CreatedAt = time.Date(2026, 9, 9, 12, 0, 0, 0, time.UTC)
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetActiveByRoomAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeRoomRepo struct {
	room *domain.Room
	err  error
}

func (f *fakeRoomRepo) GetByID(_ context.Context, _ int64) (*domain.Room, error) {
	return f.room, f.err
}

type fakeSettingsRepo struct {
	settings *domain.StudioSettings
	err      error
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.StudioSettings, error) {
	return f.settings, f.err
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func newTestUseCase(bookings *fakeBookingRepo, rooms *fakeRoomRepo, settings *fakeSettingsRepo, now time.Time) *UseCase {
	uc := NewUseCase(
		bookings,
		rooms,
		settings,
		whatsapp.NewLinkBuilder("6285886933826"),
		fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func validRequest(tanggal time.Time) *Request {
	return &Request{
		RoomID:   1,
		Nama:     "Budi",
		Whatsapp: "6281234567890",
		Tanggal:  tanggal,
		JamMulai: "16:00",
	}
}

func TestExecute_Success(t *testing.T) {
	tanggal := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 9, 12, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{}
	uc := newTestUseCase(
		repo,
		&fakeRoomRepo{room: &domain.Room{ID: 1, Name: "Studio A"}},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	resp, err := uc.Execute(context.Background(), validRequest(tanggal))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Studio A", resp.RoomName)
	assert.Equal(t, "16:00 - 18:00", resp.Jam)
	assert.Equal(t, 2, resp.DurasiSewa)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Contains(t, resp.NotifyLink, "https://wa.me/6285886933826?text=")
	assert.Contains(t, resp.NotifyLink, "Studio+A")

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPending, repo.created.Status)
}

func TestExecute_DurasiFromRequest(t *testing.T) {
	tanggal := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 9, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeRoomRepo{room: &domain.Room{ID: 1, Name: "Studio A"}},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	req := validRequest(tanggal)
	req.Durasi = ptr.Ptr(3)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.DurasiSewa)
	assert.Equal(t, "16:00 - 19:00", resp.Jam)
}

func TestExecute_ConflictingSlot(t *testing.T) {
	tanggal := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 9, 12, 0, 0, 0, time.UTC)

	existing := &domain.Booking{
		RoomID:     1,
		Tanggal:    tanggal,
		JamMulai:   "15:00",
		DurasiSewa: 2,
		Status:     domain.StatusPending,
	}

	uc := newTestUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{existing}},
		&fakeRoomRepo{room: &domain.Room{ID: 1, Name: "Studio A"}},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	_, err := uc.Execute(context.Background(), validRequest(tanggal))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_AdjacentSlotAllowed(t *testing.T) {
	tanggal := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 9, 12, 0, 0, 0, time.UTC)

	// Существующая аренда заканчивается ровно в 16:00 - новая может начаться
	existing := &domain.Booking{
		RoomID:     1,
		Tanggal:    tanggal,
		JamMulai:   "14:00",
		DurasiSewa: 2,
		Status:     domain.StatusBooked,
	}

	uc := newTestUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{existing}},
		&fakeRoomRepo{room: &domain.Room{ID: 1, Name: "Studio A"}},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	resp, err := uc.Execute(context.Background(), validRequest(tanggal))
	require.NoError(t, err)
	assert.Equal(t, "16:00 - 18:00", resp.Jam)
}

func TestExecute_UniqueIndexRace(t *testing.T) {
	tanggal := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 9, 12, 0, 0, 0, time.UTC)

	// Проверка доступности прошла, но вставка уперлась в уникальный индекс
	uc := newTestUseCase(
		&fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken},
		&fakeRoomRepo{room: &domain.Room{ID: 1, Name: "Studio A"}},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	_, err := uc.Execute(context.Background(), validRequest(tanggal))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	tanggal := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 9, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeRoomRepo{room: &domain.Room{ID: 1, Name: "Studio A"}},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	tests := []struct {
		name     string
		jamMulai types.TimeString
	}{
		{"before opening", "09:00"},
		{"end past closing", "23:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(tanggal)
			req.JamMulai = tt.jamMulai
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrOutsideWorkingHours)
		})
	}
}

func TestExecute_TodayPastStartRejected(t *testing.T) {
	now := time.Date(2026, 9, 10, 16, 30, 0, 0, time.UTC)
	tanggal := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeRoomRepo{room: &domain.Room{ID: 1, Name: "Studio A"}},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	_, err := uc.Execute(context.Background(), validRequest(tanggal))
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_PastDateRejected(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	tanggal := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeRoomRepo{room: &domain.Room{ID: 1, Name: "Studio A"}},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	_, err := uc.Execute(context.Background(), validRequest(tanggal))
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_RoomNotFound(t *testing.T) {
	tanggal := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 9, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeRoomRepo{err: roomRepo.ErrRoomNotFound},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	_, err := uc.Execute(context.Background(), validRequest(tanggal))
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tanggal := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 9, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeRoomRepo{room: &domain.Room{ID: 1, Name: "Studio A"}},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"empty nama", func(req *Request) { req.Nama = "  " }},
		{"empty whatsapp", func(req *Request) { req.Whatsapp = "" }},
		{"whatsapp with letters", func(req *Request) { req.Whatsapp = "62abc" }},
		{"zero room id", func(req *Request) { req.RoomID = 0 }},
		{"off the hour start", func(req *Request) { req.JamMulai = "16:30" }},
		{"unsupported durasi", func(req *Request) { req.Durasi = ptr.Ptr(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(tanggal)
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
