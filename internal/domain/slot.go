package domain

import (
	"time"

	"github.com/m04kA/WGS-BookingService/pkg/types"
)

// Interval занятый или кандидатный интервал аренды: [JamMulai, JamMulai+DurasiSewa)
type Interval struct {
	JamMulai   int // час начала
	DurasiSewa int // длительность в часах
}

// Selesai возвращает час окончания интервала
func (i Interval) Selesai() int {
	return i.JamMulai + i.DurasiSewa
}

// Overlaps проверяет РЕАЛЬНОЕ пересечение полуоткрытых интервалов.
// Интервалы пересекаются, только если:
// - начало одного СТРОГО раньше конца другого И
// - конец одного СТРОГО позже начала другого
//
// Граничные случаи пересечением не считаются:
// - [12, 14) и [14, 16) → НЕТ пересечения (граничат)
// - [13, 15) и [14, 17) → ЕСТЬ пересечение (14-15)
func Overlaps(a, b Interval) bool {
	return a.JamMulai < b.Selesai() && a.Selesai() > b.JamMulai
}

// IsConflicting проверяет кандидата против всех занятых интервалов.
// Используется и при построении списка доступных стартов, и как финальная
// проверка непосредственно перед записью бронирования.
func IsConflicting(candidate Interval, existing []Interval) bool {
	for _, b := range existing {
		if Overlaps(candidate, b) {
			return true
		}
	}
	return false
}

// ComputeValidStarts вычисляет упорядоченный список допустимых часов начала
// аренды на дату tanggal при длительности durasi часов.
//
// Кандидаты - целые часы h в [buka, tutup-durasi] (включительно). Час
// исключается, если:
// - tanggal сегодня и момент h:00 уже не строго в будущем относительно now;
// - интервал [h, h+durasi) пересекается с одним из занятых интервалов.
//
// Отсутствие валидных слотов - нормальный результат (пустой список), не ошибка.
// Результат не кэшируется: вызывающий обязан пересчитывать при каждом
// изменении настроек, даты, длительности или списка занятых интервалов.
func ComputeValidStarts(
	buka int,
	tutup int,
	durasi int,
	tanggal time.Time,
	now time.Time,
	existing []Interval,
) []types.TimeString {
	starts := make([]types.TimeString, 0)

	// Прошедшая дата - слотов нет
	if isDateInPast(tanggal, now) {
		return starts
	}

	today := isSameDay(tanggal, now)

	for h := buka; h <= tutup-durasi; h++ {
		if today {
			target := time.Date(tanggal.Year(), tanggal.Month(), tanggal.Day(), h, 0, 0, 0, now.Location())
			if !target.After(now) {
				continue
			}
		}

		if IsConflicting(Interval{JamMulai: h, DurasiSewa: durasi}, existing) {
			continue
		}

		jam, err := types.NewTimeStringFromHour(h)
		if err != nil {
			continue
		}
		starts = append(starts, jam)
	}

	return starts
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// IsDateInPast экспортированная проверка для валидации даты бронирования
func IsDateInPast(date, now time.Time) bool {
	return isDateInPast(date, now)
}
