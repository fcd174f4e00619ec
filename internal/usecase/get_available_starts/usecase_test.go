package get_available_starts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WGS-BookingService/internal/domain"
	roomRepo "github.com/m04kA/WGS-BookingService/internal/infra/storage/room"
	settingsRepo "github.com/m04kA/WGS-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/WGS-BookingService/pkg/ptr"
	"github.com/m04kA/WGS-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetActiveByRoomAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
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
	uc := NewUseCase(bookings, rooms, settings, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_FullDay(t *testing.T) {
	tanggal := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 9, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeRoomRepo{room: &domain.Room{ID: 1, Name: "Studio A"}},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Tanggal: tanggal})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Durasi)
	require.Len(t, resp.Starts, 13)
	assert.Equal(t, types.TimeString("10:00"), resp.Starts[0])
	assert.Equal(t, types.TimeString("22:00"), resp.Starts[12])
}

func TestExecute_ExcludesConflictingStarts(t *testing.T) {
	tanggal := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 9, 12, 0, 0, 0, time.UTC)

	booked := &domain.Booking{
		RoomID:     1,
		Tanggal:    tanggal,
		JamMulai:   "14:00",
		DurasiSewa: 3,
		Status:     domain.StatusBooked,
	}

	uc := newTestUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{booked}},
		&fakeRoomRepo{room: &domain.Room{ID: 1, Name: "Studio A"}},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Tanggal: tanggal})
	require.NoError(t, err)

	for _, start := range resp.Starts {
		assert.NotContains(t, []types.TimeString{"13:00", "14:00", "15:00", "16:00"}, start)
	}
	assert.Contains(t, resp.Starts, types.TimeString("12:00"))
	assert.Contains(t, resp.Starts, types.TimeString("17:00"))
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

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Tanggal: tanggal, Durasi: ptr.Ptr(5)})
	require.NoError(t, err)

	assert.Equal(t, 5, resp.Durasi)
	require.NotEmpty(t, resp.Starts)
	// Открытие 10:00, закрытие 00:00 (24), последний старт для 5 часов - 19:00
	assert.Equal(t, types.TimeString("19:00"), resp.Starts[len(resp.Starts)-1])
}

func TestExecute_SettingsMissingUsesDefaults(t *testing.T) {
	tanggal := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 9, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeRoomRepo{room: &domain.Room{ID: 1, Name: "Studio A"}},
		&fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Tanggal: tanggal})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDurasiSewa, resp.Durasi)
	assert.NotEmpty(t, resp.Starts)
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeRoomRepo{err: roomRepo.ErrRoomNotFound},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		time.Now(),
	)

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:  42,
		Tanggal: time.Now().AddDate(0, 0, 1),
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_PastDateReturnsEmpty(t *testing.T) {
	tanggal := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 9, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeRoomRepo{room: &domain.Room{ID: 1, Name: "Studio A"}},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Tanggal: tanggal})
	require.NoError(t, err)
	assert.NotNil(t, resp.Starts)
	assert.Empty(t, resp.Starts)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeRoomRepo{room: &domain.Room{ID: 1}},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		time.Now(),
	)

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero room id", &Request{Tanggal: time.Now()}},
		{"zero date", &Request{RoomID: 1}},
		{"unsupported durasi", &Request{RoomID: 1, Tanggal: time.Now(), Durasi: ptr.Ptr(7)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_BookingRepoFailure(t *testing.T) {
	tanggal := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 9, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{err: errors.New("connection reset")},
		&fakeRoomRepo{room: &domain.Room{ID: 1, Name: "Studio A"}},
		&fakeSettingsRepo{settings: domain.DefaultSettings()},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{RoomID: 1, Tanggal: tanggal})
	assert.ErrorIs(t, err, ErrInternal)
}
