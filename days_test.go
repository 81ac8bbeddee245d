package exchangerates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	exchangerates "github.com/malusev998/exchange-rates"
)

func TestParseDays(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	values := []struct {
		value    string
		expected int
		err      error
	}{
		{"1", 1, nil},
		{"10", 10, nil},
		{" 5 ", 5, nil},
		{"0", 0, exchangerates.ErrDaysOutOfRange},
		{"11", 0, exchangerates.ErrDaysOutOfRange},
		{"-3", 0, exchangerates.ErrDaysOutOfRange},
		{"abc", 0, exchangerates.ErrInvalidDays},
		{"2.5", 0, exchangerates.ErrInvalidDays},
		{"", 0, exchangerates.ErrInvalidDays},
	}

	for _, value := range values {
		days, err := exchangerates.ParseDays(value.value)
		assert.Equal(value.expected, days, value.value)
		assert.ErrorIs(err, value.err)
	}
}

func TestRequestDates(t *testing.T) {
	t.Parallel()
	assert := require.New(t)
	now := time.Date(2024, time.March, 2, 15, 30, 0, 0, time.UTC)

	dates := exchangerates.RequestDates(now, 3)

	assert.Len(dates, 3)
	assert.Equal("02.03.2024", exchangerates.FormatDate(dates[0]))
	assert.Equal("01.03.2024", exchangerates.FormatDate(dates[1]))
	assert.Equal("29.02.2024", exchangerates.FormatDate(dates[2]))
}

func TestRequestDates_Distinct(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	for days := exchangerates.MinDays; days <= exchangerates.MaxDays; days++ {
		seen := make(map[string]struct{}, days)

		for _, date := range exchangerates.RequestDates(time.Now(), days) {
			seen[exchangerates.FormatDate(date)] = struct{}{}
		}

		assert.Len(seen, days)
	}
}
