package exchangerates

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	MinDays = 1
	MaxDays = 10

	// DateLayout is the DD.MM.YYYY form used by the PrivatBank archive.
	DateLayout = "02.01.2006"
)

var (
	ErrInvalidDays    = errors.New("invalid number of days")
	ErrDaysOutOfRange = errors.New("number of days out of range")
)

func ParseDays(str string) (int, error) {
	days, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		return 0, ErrInvalidDays
	}

	if days < MinDays || days > MaxDays {
		return 0, ErrDaysOutOfRange
	}

	return days, nil
}

// RequestDates returns now followed by the preceding days-1 calendar days.
func RequestDates(now time.Time, days int) []time.Time {
	dates := make([]time.Time, 0, days)

	for i := 0; i < days; i++ {
		dates = append(dates, now.AddDate(0, 0, -i))
	}

	return dates
}

func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}
