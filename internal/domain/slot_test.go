package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WGS-BookingService/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "identical intervals",
			a:    Interval{JamMulai: 10, DurasiSewa: 2},
			b:    Interval{JamMulai: 10, DurasiSewa: 2},
			want: true,
		},
		{
			name: "partial overlap from the left",
			a:    Interval{JamMulai: 13, DurasiSewa: 2},
			b:    Interval{JamMulai: 14, DurasiSewa: 3},
			want: true,
		},
		{
			name: "candidate fully inside existing",
			a:    Interval{JamMulai: 15, DurasiSewa: 2},
			b:    Interval{JamMulai: 14, DurasiSewa: 5},
			want: true,
		},
		{
			name: "existing fully inside candidate",
			a:    Interval{JamMulai: 10, DurasiSewa: 5},
			b:    Interval{JamMulai: 12, DurasiSewa: 2},
			want: true,
		},
		{
			name: "adjacent: a ends where b starts",
			a:    Interval{JamMulai: 10, DurasiSewa: 2},
			b:    Interval{JamMulai: 12, DurasiSewa: 2},
			want: false,
		},
		{
			name: "adjacent: b ends where a starts",
			a:    Interval{JamMulai: 12, DurasiSewa: 2},
			b:    Interval{JamMulai: 10, DurasiSewa: 2},
			want: false,
		},
		{
			name: "fully disjoint",
			a:    Interval{JamMulai: 10, DurasiSewa: 2},
			b:    Interval{JamMulai: 18, DurasiSewa: 3},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a))
		})
	}
}

func TestIsConflicting(t *testing.T) {
	existing := []Interval{
		{JamMulai: 14, DurasiSewa: 3}, // 14-17
	}

	assert.True(t, IsConflicting(Interval{JamMulai: 13, DurasiSewa: 2}, existing), "13-15 overlaps 14-17")
	assert.False(t, IsConflicting(Interval{JamMulai: 11, DurasiSewa: 2}, existing), "11-13 does not touch 14-17")
	assert.False(t, IsConflicting(Interval{JamMulai: 17, DurasiSewa: 2}, existing), "17-19 is adjacent, not overlapping")
	assert.False(t, IsConflicting(Interval{JamMulai: 12, DurasiSewa: 2}, existing), "12-14 is adjacent, not overlapping")
	assert.False(t, IsConflicting(Interval{JamMulai: 10, DurasiSewa: 2}, nil))
}

func TestComputeValidStarts_FullDayNoBookings(t *testing.T) {
	// Открыто 10:00-24:00, броней нет, durasi=2, сейчас 09:00 того же дня
	tanggal := date(2026, time.March, 14)
	now := at(2026, time.March, 14, 9, 0)

	got := ComputeValidStarts(10, 24, 2, tanggal, now, nil)

	want := []types.TimeString{
		"10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00",
		"17:00", "18:00", "19:00", "20:00", "21:00", "22:00",
	}
	assert.Equal(t, want, got)
}

func TestComputeValidStarts_ExcludesOverlapping(t *testing.T) {
	// Бронь 14:00 на 3 часа занимает 14-17
	tanggal := date(2026, time.March, 20)
	now := at(2026, time.March, 14, 9, 0)
	existing := []Interval{{JamMulai: 14, DurasiSewa: 3}}

	got := ComputeValidStarts(10, 24, 2, tanggal, now, existing)

	assert.NotContains(t, got, types.TimeString("13:00"), "13-15 overlaps 14-17")
	assert.NotContains(t, got, types.TimeString("14:00"))
	assert.NotContains(t, got, types.TimeString("15:00"))
	assert.NotContains(t, got, types.TimeString("16:00"))
	assert.Contains(t, got, types.TimeString("11:00"))
	assert.Contains(t, got, types.TimeString("12:00"), "12-14 is adjacent to 14-17")
	assert.Contains(t, got, types.TimeString("17:00"), "17-19 starts where the booking ends")
}

func TestComputeValidStarts_LatestStartAtFiveHours(t *testing.T) {
	// Граница: durasi=5, открыто 10-24 → последний валидный старт 19:00
	tanggal := date(2026, time.March, 20)
	now := at(2026, time.March, 14, 9, 0)

	got := ComputeValidStarts(10, 24, 5, tanggal, now, nil)

	require.NotEmpty(t, got)
	assert.Equal(t, types.TimeString("19:00"), got[len(got)-1])
	assert.NotContains(t, got, types.TimeString("20:00"))
}

func TestComputeValidStarts_TodayClampsPastHours(t *testing.T) {
	tanggal := date(2026, time.March, 14)

	t.Run("mid-day cuts off everything up to the current hour", func(t *testing.T) {
		now := at(2026, time.March, 14, 15, 30)
		got := ComputeValidStarts(10, 24, 2, tanggal, now, nil)

		assert.NotContains(t, got, types.TimeString("15:00"), "15:00 already started")
		assert.Contains(t, got, types.TimeString("16:00"))
		assert.Equal(t, types.TimeString("16:00"), got[0])
	})

	t.Run("exact hour boundary is not strictly in the future", func(t *testing.T) {
		now := at(2026, time.March, 14, 15, 0)
		got := ComputeValidStarts(10, 24, 2, tanggal, now, nil)

		assert.NotContains(t, got, types.TimeString("15:00"))
		assert.Contains(t, got, types.TimeString("16:00"))
	})

	t.Run("other dates are not clamped", func(t *testing.T) {
		now := at(2026, time.March, 13, 23, 0)
		got := ComputeValidStarts(10, 24, 2, tanggal, now, nil)

		assert.Equal(t, types.TimeString("10:00"), got[0])
	})
}

func TestComputeValidStarts_NoRoomForDuration(t *testing.T) {
	// buka > tutup - durasi → пустой результат, не ошибка
	tanggal := date(2026, time.March, 20)
	now := at(2026, time.March, 14, 9, 0)

	got := ComputeValidStarts(10, 11, 2, tanggal, now, nil)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestComputeValidStarts_PastDate(t *testing.T) {
	tanggal := date(2026, time.March, 10)
	now := at(2026, time.March, 14, 9, 0)

	got := ComputeValidStarts(10, 24, 2, tanggal, now, nil)
	assert.Empty(t, got)
}

func TestComputeValidStarts_RecomputeAfterBooking(t *testing.T) {
	// Round-trip: добавленное бронирование исключает свой интервал
	tanggal := date(2026, time.March, 20)
	now := at(2026, time.March, 14, 9, 0)

	before := ComputeValidStarts(10, 24, 2, tanggal, now, nil)
	require.Contains(t, before, types.TimeString("18:00"))

	after := ComputeValidStarts(10, 24, 2, tanggal, now, []Interval{{JamMulai: 18, DurasiSewa: 2}})
	assert.NotContains(t, after, types.TimeString("18:00"))
	assert.NotContains(t, after, types.TimeString("17:00"), "17-19 overlaps 18-20")
	assert.Contains(t, after, types.TimeString("16:00"))
	assert.Contains(t, after, types.TimeString("20:00"))
}
