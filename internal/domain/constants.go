package domain

// Default settings values
// Используются, когда строка studio_settings ещё не создана администратором
const (
	DefaultJamBuka    = "10:00"
	DefaultJamTutup   = "00:00" // полночь = конец дня (час 24)
	DefaultDurasiSewa = 2
)

// Business validation constants
const (
	MinDurasiSewa = 2
	MaxDurasiSewa = 5

	MaxNamaLength     = 120
	MaxWhatsappLength = 20
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// SupportedDurations допустимые длительности аренды в часах
var SupportedDurations = []int{2, 3, 4, 5}

// IsSupportedDuration проверяет, что длительность входит в допустимый набор
func IsSupportedDuration(d int) bool {
	for _, v := range SupportedDurations {
		if v == d {
			return true
		}
	}
	return false
}

// ActiveStatuses статусы бронирований, занимающих слот.
// Используются во всех выборках для расчёта доступности.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusBooked,
}
