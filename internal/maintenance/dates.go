package maintenance

import (
	"fmt"
	"strings"
	"time"

	"gearguard/pkg/constants"
)

// Date - календарная дата без времени и часового пояса.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf берёт календарную дату момента t в его собственном часовом поясе.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// timestampLayouts - метки времени, которые бэкенд может прислать вместо даты.
// Без зоны - так пишут isoformat() у Python и str(datetime).
var timestampLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"}

// ParseDate разбирает дату заявки. Принимает "2025-01-15" и полные метки
// времени ("2025-01-15T08:00:00Z"), у которых берётся дата как написана.
// Строка разбирается целиком: пустая или кривая даёт ok=false, а не ошибку.
func ParseDate(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(constants.DateLayout, s); err == nil {
		return DateOf(t), true
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), true
		}
	}
	return Date{}, false
}

func (d Date) IsZero() bool { return d == Date{} }

func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	}
	return cmpInt(d.Day, o.Day)
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

func (d Date) Weekday() time.Weekday { return d.Time(time.UTC).Weekday() }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, ok := ParseDate(string(b))
	if !ok {
		return fmt.Errorf("некорректная дата %q", string(b))
	}
	*d = parsed
	return nil
}

// YearMonth - отображаемый месяц календаря.
type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func MonthOf(d Date) YearMonth { return YearMonth{Year: d.Year, Month: d.Month} }

// NewYearMonth нормализует месяц вне 1..12 (13 -> январь следующего года).
func NewYearMonth(year int, month time.Month) YearMonth {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

func (ym YearMonth) Prev() YearMonth { return NewYearMonth(ym.Year, ym.Month-1) }

func (ym YearMonth) Next() YearMonth { return NewYearMonth(ym.Year, ym.Month+1) }

func (ym YearMonth) First() Date { return Date{Year: ym.Year, Month: ym.Month, Day: 1} }

// DaysIn - число дней в месяце (день 0 следующего месяца).
func (ym YearMonth) DaysIn() int {
	return time.Date(ym.Year, ym.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (ym YearMonth) Contains(d Date) bool {
	return d.Year == ym.Year && d.Month == ym.Month
}

func (ym YearMonth) Title() string {
	return fmt.Sprintf("%s %d", ym.Month.String(), ym.Year)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
