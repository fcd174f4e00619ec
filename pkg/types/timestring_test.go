package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "10:00", want: "10:00"},
		{name: "valid with minutes", input: "16:30", want: "16:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "missing minutes", input: "10", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeStringFromHour(t *testing.T) {
	ts, err := NewTimeStringFromHour(9)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), ts)

	_, err = NewTimeStringFromHour(24)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromHour(-1)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_HourMinute(t *testing.T) {
	ts := TimeString("16:30")
	assert.Equal(t, 16, ts.Hour())
	assert.Equal(t, 30, ts.Minute())

	invalid := TimeString("nope")
	assert.Equal(t, -1, invalid.Hour())
	assert.Equal(t, -1, invalid.Minute())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("16:30")))
	assert.Equal(t, TimeString("16:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.ErrorIs(t, ts.Scan(42), ErrInvalidTimeString)
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("99:99").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
